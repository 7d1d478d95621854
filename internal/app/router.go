package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorpay/vendorpay/internal/invoices"
	"github.com/vendorpay/vendorpay/internal/payments"
	"github.com/vendorpay/vendorpay/internal/purchaseorders"
	"github.com/vendorpay/vendorpay/internal/vendors"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger               *slog.Logger
	Config               *Config
	VendorHandler        *vendors.Handler
	PurchaseOrderHandler *purchaseorders.Handler
	InvoiceHandler       *invoices.Handler
	PaymentHandler       *payments.Handler
}

// NewRouter constructs the chi.Router with service defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"vendor-payment-management"}`))
	})

	r.Route("/api/vendors", params.VendorHandler.MountRoutes)
	r.Route("/api/purchase-orders", params.PurchaseOrderHandler.MountRoutes)
	r.Route("/api/invoices", params.InvoiceHandler.MountRoutes)
	r.Route("/api/vendor-payments", params.PaymentHandler.MountRoutes)

	return r
}
