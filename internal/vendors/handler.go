package vendors

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

const notFoundMessage = "Vendor not found"

// Handler wires the vendor HTTP endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers vendor routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/active", h.ListActive)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list vendors", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, vendors, len(vendors))
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("list active vendors", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.List(w, vendors, len(vendors))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, vendor)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateVendorInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vendor, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create vendor", slog.Any("error", err))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusCreated, vendor)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input UpdateVendorInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Existence probe before the mutation; see the delete handler.
	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}

	vendor, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.logger.Error("update vendor", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, vendor)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Existence probe first so a missing row yields 404 rather than a
	// silent no-op delete. Not atomic with the delete itself.
	if _, err := h.service.Get(r.Context(), id); err != nil {
		httpx.RespondError(w, err, notFoundMessage)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete vendor", slog.Any("error", err), slog.String("id", id))
		httpx.RespondError(w, err, notFoundMessage)
		return
	}
	httpx.Data(w, http.StatusOK, struct{}{})
}
