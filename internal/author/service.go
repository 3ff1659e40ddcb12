package author

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookstore/internal/outcome"
)

// Service provides author business logic. Business failures travel as
// outcome values; only infrastructure faults use the error channel.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (outcome.Result[Author], error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return outcome.FailureData[Author](outcome.KindNotFound, fmt.Sprintf("No author found with ID: %s", id)), nil
		}
		return outcome.Result[Author]{}, err
	}
	return outcome.SuccessData("Successfully fetched the details of the author.", a), nil
}

func (s *Service) GetAll(ctx context.Context, page, pageSize int) (outcome.Result[[]Author], error) {
	offset := (page - 1) * pageSize
	authors, err := s.repo.List(ctx, pageSize, offset)
	if err != nil {
		return outcome.Result[[]Author]{}, err
	}
	if len(authors) == 0 {
		return outcome.FailureData[[]Author](outcome.KindNotFound, "No authors found for the requested page."), nil
	}
	return outcome.SuccessData("Successfully fetched the requested authors.", authors), nil
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (outcome.Status, error) {
	fullName := NormalizeFullName(req.FullName)

	existing, err := s.repo.GetByFullName(ctx, fullName)
	if err != nil {
		return outcome.Status{}, err
	}
	if len(existing) > 0 {
		return outcome.Failure(outcome.KindConflict, fmt.Sprintf("Author with name %s is already registered.", fullName)), nil
	}

	a := Author{
		ID:          uuid.New().String(),
		FullName:    fullName,
		Biography:   req.Biography,
		Nationality: req.Nationality,
	}

	inserted, err := s.repo.Insert(ctx, &a)
	if err != nil {
		// The unique index closes the check-then-act window between the
		// duplicate query and the insert.
		if errors.Is(err, ErrDuplicate) {
			return outcome.Failure(outcome.KindConflict, fmt.Sprintf("Author with name %s is already registered.", fullName)), nil
		}
		return outcome.Status{}, err
	}
	if !inserted {
		return outcome.Failure(outcome.KindFailed, "Failed to register the author."), nil
	}
	return outcome.Success("Author registered successfully."), nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (outcome.Status, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return outcome.Failure(outcome.KindNotFound, fmt.Sprintf("No author found with ID: %s", id)), nil
		}
		return outcome.Status{}, err
	}

	if req.FullName != nil {
		a.FullName = NormalizeFullName(*req.FullName)
	}
	if req.Biography != nil {
		a.Biography = *req.Biography
	}
	if req.Nationality != nil {
		a.Nationality = *req.Nationality
	}

	updated, err := s.repo.Update(ctx, &a)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return outcome.Failure(outcome.KindConflict, fmt.Sprintf("Author with name %s is already registered.", a.FullName)), nil
		}
		return outcome.Status{}, err
	}
	if !updated {
		return outcome.Failure(outcome.KindFailed, "Failed to update the author details."), nil
	}
	return outcome.Success("Author details updated successfully."), nil
}

func (s *Service) Delete(ctx context.Context, id string) (outcome.Status, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return outcome.Failure(outcome.KindNotFound, fmt.Sprintf("No author found with ID: %s", id)), nil
		}
		return outcome.Status{}, err
	}

	deleted, err := s.repo.Delete(ctx, &a)
	if err != nil {
		return outcome.Status{}, err
	}
	if !deleted {
		return outcome.Failure(outcome.KindFailed, "Failed to remove the author record."), nil
	}
	return outcome.Success("Author removed successfully."), nil
}
