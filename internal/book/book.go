package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicate is returned when an insert or update hits the unique ISBN
// index.
var ErrDuplicate = errors.New("book ISBN already registered")

// Genre enumerates the supported book genres.
type Genre string

const (
	GenreLiterary   Genre = "Literary"
	GenreFantasy    Genre = "Fantasy"
	GenreHorror     Genre = "Horror"
	GenreDrama      Genre = "Drama"
	GenreSciFi      Genre = "SciFi"
	GenreRomance    Genre = "Romance"
	GenreMystery    Genre = "Mystery"
	GenreAdventure  Genre = "Adventure"
	GenreDystopian  Genre = "Dystopian"
	GenreBiography  Genre = "Biography"
	GenrePhilosophy Genre = "Philosophy"
	GenrePoetry     Genre = "Poetry"
	GenreHistory    Genre = "History"
	GenreMemoir     Genre = "Memoir"
	GenrePolitics   Genre = "Politics"
	GenreHealth     Genre = "Health"
)

// Language enumerates the supported book languages.
type Language string

const (
	LanguageEnglish    Language = "English"
	LanguageSpanish    Language = "Spanish"
	LanguageFrench     Language = "French"
	LanguageGerman     Language = "German"
	LanguageChinese    Language = "Chinese"
	LanguageJapanese   Language = "Japanese"
	LanguageRussian    Language = "Russian"
	LanguageItalian    Language = "Italian"
	LanguagePortuguese Language = "Portuguese"
	LanguageArabic     Language = "Arabic"
	LanguageTurkish    Language = "Turkish"
)

// Book represents a book entity. The ID is server-generated at registration;
// AuthorID references an existing author.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       Genre     `json:"genre"`
	Price       int       `json:"price"`
	Publisher   string    `json:"publisher"`
	PageCount   int       `json:"pageCount"`
	Language    Language  `json:"language"`
	AuthorID    string    `json:"authorId"`
	ISBN        string    `json:"isbn,omitempty"`
	Description string    `json:"description,omitempty"`
	Stock       *int      `json:"stock,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RegisterRequest is the payload for registering a book.
type RegisterRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Genre       string `json:"genre" validate:"required,oneof=Literary Fantasy Horror Drama SciFi Romance Mystery Adventure Dystopian Biography Philosophy Poetry History Memoir Politics Health"`
	Price       int    `json:"price" validate:"gte=0"`
	Publisher   string `json:"publisher" validate:"required"`
	PageCount   int    `json:"pageCount" validate:"gt=0"`
	Language    string `json:"language" validate:"required,oneof=English Spanish French German Chinese Japanese Russian Italian Portuguese Arabic Turkish"`
	AuthorID    string `json:"authorId" validate:"required"`
	ISBN        string `json:"isbn" validate:"omitempty,isbn"`
	Description string `json:"description"`
	Stock       *int   `json:"stock" validate:"omitempty,gte=0"`
}

// UpdateRequest is the payload for updating a book. Nil fields are left
// unchanged; the ID and the author relationship are never touched.
type UpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Genre       *string `json:"genre" validate:"omitempty,oneof=Literary Fantasy Horror Drama SciFi Romance Mystery Adventure Dystopian Biography Philosophy Poetry History Memoir Politics Health"`
	Price       *int    `json:"price" validate:"omitempty,gte=0"`
	Publisher   *string `json:"publisher" validate:"omitempty,min=1"`
	PageCount   *int    `json:"pageCount" validate:"omitempty,gt=0"`
	Language    *string `json:"language" validate:"omitempty,oneof=English Spanish French German Chinese Japanese Russian Italian Portuguese Arabic Turkish"`
	ISBN        *string `json:"isbn" validate:"omitempty,isbn"`
	Description *string `json:"description"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
}
