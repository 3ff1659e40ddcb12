package httpx

import (
	"encoding/json"
	"net/http"

	"bookstore/internal/outcome"
)

// SuccessEnvelope is the body of every 2xx response.
type SuccessEnvelope struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorEnvelope is the body of every non-2xx response. Errors carries the
// per-field messages of a validation failure.
type ErrorEnvelope struct {
	IsSuccess bool     `json:"isSuccess"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
}

func JSONSuccess(w http.ResponseWriter, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SuccessEnvelope{
		IsSuccess: true,
		Message:   message,
		Data:      data,
	})
}

func JSONError(w http.ResponseWriter, statusCode int, message string, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorEnvelope{
		IsSuccess: false,
		Message:   message,
		Errors:    errs,
	})
}

// WriteStatus renders a payload-free outcome with its mapped status code.
func WriteStatus(w http.ResponseWriter, st outcome.Status) {
	if st.IsSuccess() {
		JSONSuccess(w, st.Message, nil)
		return
	}
	JSONError(w, st.HTTPStatus(), st.Message, st.Errors)
}

// WriteResult renders a data-carrying outcome with its mapped status code.
func WriteResult[T any](w http.ResponseWriter, res outcome.Result[T]) {
	if res.IsSuccess() {
		JSONSuccess(w, res.Message, res.Data)
		return
	}
	JSONError(w, res.HTTPStatus(), res.Message, res.Errors)
}

// JSONInternalError is the generic 500 body; internal detail never leaks.
func JSONInternalError(w http.ResponseWriter) {
	JSONError(w, http.StatusInternalServerError, "An unexpected error occurred.", nil)
}
