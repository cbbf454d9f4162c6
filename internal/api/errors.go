package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/garage"
)

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		Error: APIError{Code: code, Message: message},
	})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteGarageError maps the registry's closed failure set onto HTTP statuses:
// missing records are 404, bad input is 400, failed preconditions are 409.
func WriteGarageError(w http.ResponseWriter, err error) {
	var ge *garage.Error
	if !errors.As(err, &ge) {
		WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	status := http.StatusConflict
	switch {
	case errors.Is(err, garage.ErrCustomerNotFound),
		errors.Is(err, garage.ErrWorkOrderNotFound),
		errors.Is(err, garage.ErrInvoiceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, garage.ErrInvalidHours):
		status = http.StatusBadRequest
	}
	WriteError(w, status, ge.Code, ge.Message)
}
