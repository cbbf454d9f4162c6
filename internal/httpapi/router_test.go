package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/garage"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/httpapi"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/vehicle"
	"github.com/realkevonlooney/Car-Mechanic-Garage/pkg/config"
)

func setupRouter() http.Handler {
	return httpapi.NewRouter(httpapi.Dependencies{
		Cfg:      config.Config{AppEnv: "test", HTTPAddr: ":0"},
		Log:      zap.NewNop(),
		Registry: garage.New(),
		Catalog:  vehicle.NewCatalog(),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	h := setupRouter()
	w := doJSON(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestLifecycleOverHTTP(t *testing.T) {
	h := setupRouter()

	w := doJSON(t, h, http.MethodPost, "/v1/customers", map[string]any{"name": "Alice", "phone": "555-0100"})
	assert.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID int `json:"id"`
	}
	decode(t, w, &created)
	assert.Equal(t, 1, created.ID)

	w = doJSON(t, h, http.MethodPost, "/v1/vehicles", map[string]any{
		"ownerId": created.ID, "make": "Toyota", "model": "Corolla", "year": 2019,
		"powertrain": "petrol", "body": "sedan",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var veh struct {
		ID int `json:"id"`
	}
	decode(t, w, &veh)

	w = doJSON(t, h, http.MethodPost, "/v1/customers/1/vehicles", map[string]any{"vehicleId": veh.ID})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, h, http.MethodPost, "/v1/work-orders", map[string]any{"customerId": 1, "vehicleId": veh.ID})
	assert.Equal(t, http.StatusCreated, w.Code)
	var booked struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	decode(t, w, &booked)
	assert.Equal(t, 1, booked.ID)
	assert.Equal(t, "IN_PROGRESS", booked.Status)

	w = doJSON(t, h, http.MethodPost, "/v1/work-orders/1/hours", map[string]any{"hours": "3.0"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Approval before DONE must fail and must not mint an invoice.
	w = doJSON(t, h, http.MethodPost, "/v1/work-orders/1/approve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, h, http.MethodPost, "/v1/work-orders/1/done", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, h, http.MethodPost, "/v1/work-orders/1/approve", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	var approved struct {
		InvoiceID int    `json:"invoiceId"`
		Total     string `json:"total"`
		Status    string `json:"status"`
	}
	decode(t, w, &approved)
	assert.Equal(t, 1, approved.InvoiceID)
	assert.Equal(t, "300", approved.Total)
	assert.Equal(t, "UNPAID", approved.Status)

	// Underpayment is rejected.
	w = doJSON(t, h, http.MethodPost, "/v1/invoices/1/pay", map[string]any{"amount": "299.99"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, h, http.MethodPost, "/v1/invoices/1/pay", map[string]any{"amount": "300.00"})
	assert.Equal(t, http.StatusOK, w.Code)
	var paid struct {
		Status string `json:"status"`
	}
	decode(t, w, &paid)
	assert.Equal(t, "PAID", paid.Status)
}

func TestBookingErrorsAreDistinguishable(t *testing.T) {
	h := setupRouter()

	w := doJSON(t, h, http.MethodPost, "/v1/work-orders", map[string]any{"customerId": 99, "vehicleId": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, w, &env)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", env.Error.Code)

	doJSON(t, h, http.MethodPost, "/v1/customers", map[string]any{"name": "Bob", "phone": "555-0101"})
	w = doJSON(t, h, http.MethodPost, "/v1/work-orders", map[string]any{"customerId": 1, "vehicleId": 7})
	assert.Equal(t, http.StatusConflict, w.Code)
	decode(t, w, &env)
	assert.Equal(t, "VEHICLE_NOT_LINKED", env.Error.Code)
}

func TestListWorkOrders_StatusFilter(t *testing.T) {
	h := setupRouter()

	doJSON(t, h, http.MethodPost, "/v1/customers", map[string]any{"name": "Bob", "phone": "555-0101"})
	doJSON(t, h, http.MethodPost, "/v1/customers/1/vehicles", map[string]any{"vehicleId": 7})
	doJSON(t, h, http.MethodPost, "/v1/work-orders", map[string]any{"customerId": 1, "vehicleId": 7})
	doJSON(t, h, http.MethodPost, "/v1/work-orders", map[string]any{"customerId": 1, "vehicleId": 7})
	doJSON(t, h, http.MethodPost, "/v1/work-orders/1/done", nil)

	var list struct {
		Items []struct {
			ID     int    `json:"id"`
			Status string `json:"status"`
		} `json:"items"`
	}

	w := doJSON(t, h, http.MethodGet, "/v1/work-orders?status=DONE", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Items[0].ID)

	w = doJSON(t, h, http.MethodGet, "/v1/work-orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list.Items, 2)

	w = doJSON(t, h, http.MethodGet, "/v1/work-orders?status=SCRAPPED", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNegativeHoursRejected(t *testing.T) {
	h := setupRouter()

	doJSON(t, h, http.MethodPost, "/v1/customers", map[string]any{"name": "Bob", "phone": "555-0101"})
	doJSON(t, h, http.MethodPost, "/v1/customers/1/vehicles", map[string]any{"vehicleId": 7})
	doJSON(t, h, http.MethodPost, "/v1/work-orders", map[string]any{"customerId": 1, "vehicleId": 7})

	w := doJSON(t, h, http.MethodPost, "/v1/work-orders/1/hours", map[string]any{"hours": "-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, h, http.MethodGet, "/v1/work-orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var wo struct {
		LabourHours string `json:"labourHours"`
	}
	decode(t, w, &wo)
	assert.Equal(t, "0", wo.LabourHours)
}
