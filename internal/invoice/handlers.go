package invoice

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/api"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/garage"
)

type Handlers struct {
	Registry *garage.Registry
}

type PayRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h Handlers) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid invoice id")
		return
	}

	var req PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	if err := h.Registry.PayInvoice(id, req.Amount); err != nil {
		api.WriteGarageError(w, err)
		return
	}

	inv, err := h.Registry.GetInvoice(id)
	if err != nil {
		api.WriteGarageError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, inv)
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid invoice id")
		return
	}

	inv, err := h.Registry.GetInvoice(id)
	if err != nil {
		api.WriteGarageError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, inv)
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": h.Registry.ListInvoices()})
}
