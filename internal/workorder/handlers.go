package workorder

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

type BookRequest struct {
	CustomerID int `json:"customerId"`
	VehicleID  int `json:"vehicleId"`
}

func (h Handlers) Book(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	id, err := h.Registry.BookWorkOrder(req.CustomerID, req.VehicleID)
	if err != nil {
		api.WriteGarageError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{"id": id, "status": garage.StatusInProgress})
}

type AddHoursRequest struct {
	Hours decimal.Decimal `json:"hours"`
}

func (h Handlers) AddHours(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	var req AddHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	if err := h.Registry.AddLabourHours(id, req.Hours); err != nil {
		api.WriteGarageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handlers) MarkDone(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	if err := h.Registry.MarkDone(id); err != nil {
		api.WriteGarageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handlers) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	invID, err := h.Registry.Approve(id)
	if err != nil {
		api.WriteGarageError(w, err)
		return
	}

	inv, err := h.Registry.GetInvoice(invID)
	if err != nil {
		api.WriteGarageError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"invoiceId": inv.ID,
		"total":     inv.Total,
		"status":    inv.Status,
	})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	wo, err := h.Registry.GetWorkOrder(id)
	if err != nil {
		api.WriteGarageError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, wo)
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items := h.Registry.ListWorkOrders()

	if raw := r.URL.Query().Get("status"); raw != "" {
		st, err := garage.ParseStatus(raw)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
			return
		}
		filtered := make([]garage.WorkOrder, 0, len(items))
		for _, wo := range items {
			if wo.Status == st {
				filtered = append(filtered, wo)
			}
		}
		items = filtered
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid work order id")
		return 0, false
	}
	return id, true
}
