package book

import (
	"encoding/json"
	"log"
	"net/http"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// GetByID handles GET /api/book/book-details/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := httpx.PathParam(r, "/api/book/book-details/")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid book ID.", nil)
		return
	}

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("book get by id: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteResult(w, res)
}

// List handles GET /api/book/all-books?page&pageSize
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	page, pageSize, errs := httpx.ParsePagination(r)
	if len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid pagination parameters.", errs)
		return
	}

	res, err := h.service.GetAll(r.Context(), page, pageSize)
	if err != nil {
		log.Printf("book list: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteResult(w, res)
}

// Register handles POST /api/book/register-book
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for book registration.", nil)
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for book registration.", errs)
		return
	}

	st, err := h.service.Register(r.Context(), req)
	if err != nil {
		log.Printf("book register: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteStatus(w, st)
}

// Update handles PUT /api/book/update-book/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := httpx.PathParam(r, "/api/book/update-book/")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid book ID.", nil)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for book update.", nil)
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for book update.", errs)
		return
	}

	st, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Printf("book update: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteStatus(w, st)
}

// Delete handles DELETE /api/book/delete-book/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := httpx.PathParam(r, "/api/book/delete-book/")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid book ID.", nil)
		return
	}

	st, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Printf("book delete: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteStatus(w, st)
}
