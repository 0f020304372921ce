// Package rest holds the JSON envelope and error mapping shared by the
// handlers and middleware.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/pagosclm/pagos-service/internal/domain"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else if apiErr, ok := data.(*APIError); ok {
		response.Error = apiErr
	}

	_ = json.NewEncoder(w).Encode(response)
}

// RespondError maps domain error codes onto HTTP statuses. Anything that is
// not a DomainError is an infrastructure failure and surfaces as 500.
func RespondError(w http.ResponseWriter, err error) {
	code := "INTERNAL_ERROR"
	message := err.Error()
	status := http.StatusInternalServerError

	if domainErr, ok := domain.IsDomainError(err); ok {
		code = domainErr.Code
		message = domainErr.Message

		switch domainErr.Code {
		case domain.ErrCodeNotFound:
			status = http.StatusNotFound
		case domain.ErrCodeInvalidAmount, domain.ErrCodeValidation:
			status = http.StatusBadRequest
		default:
			status = http.StatusBadRequest
		}
	}

	RespondJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}
