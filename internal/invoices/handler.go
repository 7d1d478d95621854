package invoices

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

const notFoundMessage = "Invoice not found"

// Handler wires the invoice HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers invoice routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/vendor/{vendorId}", h.ListByVendor)
	r.Get("/purchase-order/{purchaseOrderId}", h.ListByPurchaseOrder)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list invoices", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, invoices, len(invoices))
}

func (h *Handler) ListByVendor(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.ListByVendor(r.Context(), chi.URLParam(r, "vendorId"))
	if err != nil {
		h.logger.Error("list invoices by vendor", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, invoices, len(invoices))
}

func (h *Handler) ListByPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.ListByPurchaseOrder(r.Context(), chi.URLParam(r, "purchaseOrderId"))
	if err != nil {
		h.logger.Error("list invoices by purchase order", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, invoices, len(invoices))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, invoice)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateInvoiceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	invoice, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create invoice", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusCreated, invoice)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input UpdateInvoiceInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}

	invoice, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.logger.Error("update invoice", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, invoice)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input StatusUpdateInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Status is required")
		return
	}

	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}

	invoice, err := h.service.UpdateStatus(r.Context(), id, input)
	if err != nil {
		h.logger.Error("update invoice status", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, invoice)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete invoice", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, struct{}{})
}
