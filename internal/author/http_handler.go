package author

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

// GetByID handles GET /author/author-details/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := httpx.PathParam(r, "/author/author-details/")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid author ID.", nil)
		return
	}

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("author get by id: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteResult(w, res)
}

// List handles GET /author/all-authors?page&pageSize
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
		log.Printf("author list: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteResult(w, res)
}

// Register handles POST /author/register-author
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for author registration.", nil)
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for author registration.", errs)
		return
	}

	st, err := h.service.Register(r.Context(), req)
	if err != nil {
		log.Printf("author register: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteStatus(w, st)
}

// Update handles PUT /author/update-author/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := httpx.PathParam(r, "/author/update-author/")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid author ID.", nil)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for author update.", nil)
		return
	}
	if errs := httpx.ValidateStruct(req); len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input for author update.", errs)
		return
	}

	st, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Printf("author update: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteStatus(w, st)
}

// Delete handles DELETE /author/delete-author/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := httpx.PathParam(r, "/author/delete-author/")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid author ID.", nil)
		return
	}

	st, err := h.service.Delete(r.Context(), id)
	if err != nil {
		log.Printf("author delete: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.JSONInternalError(w)
		return
	}
	httpx.WriteStatus(w, st)
}
