package vehicle

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/api"
)

type Handlers struct {
	Catalog *Catalog
}

type RegisterRequest struct {
	OwnerID    int    `json:"ownerId"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	Powertrain string `json:"powertrain"`
	Body       string `json:"body"`
}

func (h Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.Make == "" || req.Model == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "make and model are required")
		return
	}

	v := h.Catalog.Register(req.OwnerID, req.Make, req.Model, req.Year, req.Powertrain, req.Body)
	api.WriteJSON(w, http.StatusCreated, v)
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid vehicle id")
		return
	}

	v, err := h.Catalog.Get(id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "VEHICLE_NOT_FOUND", "no such vehicle")
		return
	}
	api.WriteJSON(w, http.StatusOK, v)
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]any{"items": h.Catalog.List()})
}
