package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookstore/internal/outcome"
)

type Service struct {
	repo    Repository
	authors AuthorDirectory
}

func NewService(repo Repository, authors AuthorDirectory) *Service {
	return &Service{repo: repo, authors: authors}
}

func (s *Service) GetByID(ctx context.Context, id string) (outcome.Result[Book], error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return outcome.FailureData[Book](outcome.KindNotFound, fmt.Sprintf("No book found with ID: %s", id)), nil
		}
		return outcome.Result[Book]{}, err
	}
	return outcome.SuccessData("Successfully fetched the book details.", b), nil
}

func (s *Service) GetAll(ctx context.Context, page, pageSize int) (outcome.Result[[]Book], error) {
	offset := (page - 1) * pageSize
	books, err := s.repo.List(ctx, pageSize, offset)
	if err != nil {
		return outcome.Result[[]Book]{}, err
	}
	if len(books) == 0 {
		return outcome.FailureData[[]Book](outcome.KindNotFound, "No books found for the requested page."), nil
	}
	return outcome.SuccessData("Successfully fetched the requested books.", books), nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (outcome.Status, error) {
	known, err := s.authors.Exists(ctx, req.AuthorID)
	if err != nil {
		return outcome.Status{}, err
	}
	if !known {
		return outcome.InvalidInput("Invalid input for book registration.",
			[]string{fmt.Sprintf("no author registered with ID: %s", req.AuthorID)}), nil
	}

	if req.ISBN != "" {
		if _, err := s.repo.GetByISBN(ctx, req.ISBN); err == nil {
			return outcome.Failure(outcome.KindConflict, "Book with the same ISBN already registered."), nil
		} else if !errors.Is(err, ErrNotFound) {
			return outcome.Status{}, err
		}
	}

	b := Book{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Genre:       Genre(req.Genre),
		Price:       req.Price,
		Publisher:   req.Publisher,
		PageCount:   req.PageCount,
		Language:    Language(req.Language),
		AuthorID:    req.AuthorID,
		ISBN:        req.ISBN,
		Description: req.Description,
		Stock:       req.Stock,
	}

	inserted, err := s.repo.Insert(ctx, &b)
	if err != nil {
		// The unique index closes the check-then-act window between the
		// ISBN query and the insert.
		if errors.Is(err, ErrDuplicate) {
			return outcome.Failure(outcome.KindConflict, "Book with the same ISBN already registered."), nil
		}
		return outcome.Status{}, err
	}
	if !inserted {
		return outcome.Failure(outcome.KindFailed, "Failed to register the book."), nil
	}
	return outcome.Success("Book registered successfully."), nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (outcome.Status, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return outcome.Failure(outcome.KindNotFound, fmt.Sprintf("No book found with ID: %s", id)), nil
		}
		return outcome.Status{}, err
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Genre != nil {
		b.Genre = Genre(*req.Genre)
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.Publisher != nil {
		b.Publisher = *req.Publisher
	}
	if req.PageCount != nil {
		b.PageCount = *req.PageCount
	}
	if req.Language != nil {
		b.Language = Language(*req.Language)
	}
	if req.ISBN != nil && *req.ISBN != b.ISBN {
		if *req.ISBN != "" {
			if _, err := s.repo.GetByISBN(ctx, *req.ISBN); err == nil {
				return outcome.Failure(outcome.KindConflict, "Book with the same ISBN already registered."), nil
			} else if !errors.Is(err, ErrNotFound) {
				return outcome.Status{}, err
			}
		}
		b.ISBN = *req.ISBN
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Stock != nil {
		b.Stock = req.Stock
	}

	updated, err := s.repo.Update(ctx, &b)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return outcome.Failure(outcome.KindConflict, "Book with the same ISBN already registered."), nil
		}
		return outcome.Status{}, err
	}
	if !updated {
		return outcome.Failure(outcome.KindFailed, "Failed to update the book details."), nil
	}
	return outcome.Success("Book details updated successfully."), nil
}

func (s *Service) Delete(ctx context.Context, id string) (outcome.Status, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return outcome.Failure(outcome.KindNotFound, fmt.Sprintf("No book found with ID: %s", id)), nil
		}
		return outcome.Status{}, err
	}

	deleted, err := s.repo.Delete(ctx, &b)
	if err != nil {
		return outcome.Status{}, err
	}
	if !deleted {
		return outcome.Failure(outcome.KindFailed, "Failed to remove the book record."), nil
	}
	return outcome.Success("Book removed successfully."), nil
}
