package customer

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/api"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/garage"
)

type Handlers struct {
	Registry *garage.Registry
}

type CreateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "name is required")
		return
	}

	id := h.Registry.CreateCustomer(req.Name, req.Phone)
	api.WriteJSON(w, http.StatusCreated, map[string]any{"id": id})
}

type AttachVehicleRequest struct {
	VehicleID int `json:"vehicleId"`
}

func (h Handlers) AttachVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid customer id")
		return
	}

	var req AttachVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	if err := h.Registry.AttachVehicle(id, req.VehicleID); err != nil {
		api.WriteGarageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid customer id")
		return
	}

	c, err := h.Registry.GetCustomer(id)
	if err != nil {
		api.WriteGarageError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, c)
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": h.Registry.ListCustomers()})
}
