package utils

import (
	"encoding/json"
	"net/http"

	"github.com/finmock/finmock/pkg/validator"
)

// PagedResponse is the wire shape of every listing endpoint.
type PagedResponse[T any] struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
	Data     []T `json:"data"`
}

func NewPagedResponse[T any](page, pageSize, total int, data []T) PagedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PagedResponse[T]{Page: page, PageSize: pageSize, Total: total, Data: data}
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	json.NewEncoder(w).Encode(payload)
}

// WriteMessage writes a bare {"message": ...} body, used for not-found and
// other single-line failures.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteValidationError reports every collected violation in one response.
func WriteValidationError(w http.ResponseWriter, errs []validator.FieldError) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{
		"message": "Validation error",
		"errors":  errs,
	})
}
