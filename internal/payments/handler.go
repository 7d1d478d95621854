package payments

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

const notFoundMessage = "Vendor payment not found"

// Handler wires the vendor payment HTTP endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers vendor payment routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/invoice/{invoiceId}", h.ListByInvoice)
	r.Get("/vendor/{vendorId}", h.ListByVendor)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list payments", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, payments, len(payments))
}

func (h *Handler) ListByInvoice(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListByInvoice(r.Context(), chi.URLParam(r, "invoiceId"))
	if err != nil {
		h.logger.Error("list payments by invoice", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, payments, len(payments))
}

func (h *Handler) ListByVendor(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListByVendor(r.Context(), chi.URLParam(r, "vendorId"))
	if err != nil {
		h.logger.Error("list payments by vendor", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, payments, len(payments))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	payment, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, payment)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreatePaymentInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create payment", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusCreated, payment)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input UpdatePaymentInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}

	payment, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.logger.Error("update payment", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, payment)
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

	payment, err := h.service.UpdateStatus(r.Context(), id, input)
	if err != nil {
		h.logger.Error("update payment status", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, payment)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete payment", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, struct{}{})
}
