package book

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/testutil"
)

func newTestHandler(seed ...Book) *HTTPHandler {
	return NewHTTPHandler(NewService(newFakeRepo(seed...), knownAuthors("JLondon")))
}

func TestHTTPHandler_GetByID(t *testing.T) {
	handler := newTestHandler(martinEden)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"found", "/api/book/book-details/MEden", http.StatusOK},
		{"not found", "/api/book/book-details/ghost", http.StatusNotFound},
		{"blank id", "/api/book/book-details/", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.GetByID(w, testutil.NewRequest(http.MethodGet, tt.path, nil))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedStatus == http.StatusOK {
				data := resp.Body["data"].(map[string]interface{})
				assert.Equal(t, "MEden", data["id"])
				assert.Equal(t, "Martin Eden", data["title"])
			}
		})
	}
}

func TestHTTPHandler_List(t *testing.T) {
	handler := newTestHandler(martinEden)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
	}{
		{"defaults", "", http.StatusOK},
		{"page out of range", "?page=-1", http.StatusBadRequest},
		{"pageSize too large", "?pageSize=500", http.StatusBadRequest},
		{"empty page", "?page=9", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.List(w, testutil.NewRequest(http.MethodGet, "/api/book/all-books"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Title:     "The Sea-Wolf",
		Genre:     "Adventure",
		Price:     17,
		Publisher: "Macmillan Publishers",
		PageCount: 366,
		Language:  "English",
		AuthorID:  "JLondon",
		ISBN:      "9780553212259",
	}
}

func TestHTTPHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*RegisterRequest)
		expectedStatus int
	}{
		{"valid", func(r *RegisterRequest) {}, http.StatusOK},
		{"missing title", func(r *RegisterRequest) { r.Title = "" }, http.StatusBadRequest},
		{"unknown genre", func(r *RegisterRequest) { r.Genre = "Cookbook" }, http.StatusBadRequest},
		{"unknown language", func(r *RegisterRequest) { r.Language = "Klingon" }, http.StatusBadRequest},
		{"negative price", func(r *RegisterRequest) { r.Price = -1 }, http.StatusBadRequest},
		{"zero page count", func(r *RegisterRequest) { r.PageCount = 0 }, http.StatusBadRequest},
		{"bad isbn", func(r *RegisterRequest) { r.ISBN = "not-an-isbn" }, http.StatusBadRequest},
		{"duplicate isbn", func(r *RegisterRequest) { r.ISBN = "9780140187734" }, http.StatusBadRequest},
		{"unknown author", func(r *RegisterRequest) { r.AuthorID = "ghost" }, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(martinEden)

			req := validRegisterRequest()
			tt.mutate(&req)

			w := httptest.NewRecorder()
			handler.Register(w, testutil.NewRequest(http.MethodPost, "/api/book/register-book", req))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHTTPHandler_Register_DuplicateISBNMessage(t *testing.T) {
	handler := newTestHandler(martinEden)

	req := validRegisterRequest()
	req.ISBN = "9780140187734"

	w := httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/api/book/register-book", req))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, false, resp.Body["isSuccess"])
	assert.Equal(t, "Book with the same ISBN already registered.", resp.Body["message"])
}

func TestHTTPHandler_Update(t *testing.T) {
	price := 25

	tests := []struct {
		name           string
		path           string
		body           interface{}
		expectedStatus int
	}{
		{"valid", "/api/book/update-book/MEden", UpdateRequest{Price: &price}, http.StatusOK},
		{"not found", "/api/book/update-book/ghost", UpdateRequest{Price: &price}, http.StatusNotFound},
		{"blank id", "/api/book/update-book/", UpdateRequest{Price: &price}, http.StatusBadRequest},
		{"not json", "/api/book/update-book/MEden", "not-json", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(martinEden)

			w := httptest.NewRecorder()
			handler.Update(w, testutil.NewRequest(http.MethodPut, tt.path, tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHTTPHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"valid", "/api/book/delete-book/MEden", http.StatusOK},
		{"not found", "/api/book/delete-book/ghost", http.StatusNotFound},
		{"blank id", "/api/book/delete-book/", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(martinEden)

			w := httptest.NewRecorder()
			handler.Delete(w, testutil.NewRequest(http.MethodDelete, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
