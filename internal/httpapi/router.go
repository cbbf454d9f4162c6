package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/api"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/customer"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/garage"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/invoice"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/vehicle"
	"github.com/realkevonlooney/Car-Mechanic-Garage/internal/workorder"
	"github.com/realkevonlooney/Car-Mechanic-Garage/pkg/config"
)

type Dependencies struct {
	Cfg      config.Config
	Log      *zap.Logger
	Registry *garage.Registry
	Catalog  *vehicle.Catalog
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	if deps.Log != nil {
		r.Use(api.RequestLogger(deps.Log))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	customerHandlers := customer.Handlers{Registry: deps.Registry}
	workOrderHandlers := workorder.Handlers{Registry: deps.Registry}
	invoiceHandlers := invoice.Handlers{Registry: deps.Registry}
	vehicleHandlers := vehicle.Handlers{Catalog: deps.Catalog}

	// v1
	r.Route("/v1", func(r chi.Router) {
		// Browser front-ends are served from separate origins.
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAgeSeconds:  600,
		}))

		r.Post("/customers", customerHandlers.Create)
		r.Get("/customers", customerHandlers.List)
		r.Get("/customers/{id}", customerHandlers.Get)
		r.Post("/customers/{id}/vehicles", customerHandlers.AttachVehicle)

		r.Post("/vehicles", vehicleHandlers.Register)
		r.Get("/vehicles", vehicleHandlers.List)
		r.Get("/vehicles/{id}", vehicleHandlers.Get)

		r.Post("/work-orders", workOrderHandlers.Book)
		r.Get("/work-orders", workOrderHandlers.List)
		r.Get("/work-orders/{id}", workOrderHandlers.Get)
		r.Post("/work-orders/{id}/hours", workOrderHandlers.AddHours)
		r.Post("/work-orders/{id}/done", workOrderHandlers.MarkDone)
		r.Post("/work-orders/{id}/approve", workOrderHandlers.Approve)

		r.Post("/invoices/{id}/pay", invoiceHandlers.Pay)
		r.Get("/invoices", invoiceHandlers.List)
		r.Get("/invoices/{id}", invoiceHandlers.Get)
	})

	return r
}
