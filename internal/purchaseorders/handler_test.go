package purchaseorders

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(newMemoryOrderRepo()))

	r := chi.NewRouter()
	r.Route("/api/purchase-orders", handler.MountRoutes)
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestOrderCreateAndApprove(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/purchase-orders", map[string]any{
		"po_number":     "PO-2025-001",
		"vendor_id":     uuid.NewString(),
		"department_id": uuid.NewString(),
		"total_amount":  1500.0,
		"grand_total":   1500.0,
		"items": []map[string]any{
			{"item_description": "Laptops", "quantity": 1, "unit_price": 1500, "total_price": 1500},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Success bool                   `json:"success"`
		Data    PurchaseOrderWithItems `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.Equal(t, "pending", created.Data.Status)
	require.Len(t, created.Data.Items, 1)

	rec = doJSON(t, router, http.MethodPatch, "/api/purchase-orders/"+created.Data.ID+"/status", map[string]any{
		"status":      "approved",
		"approved_by": "mgr1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var approved struct {
		Success bool          `json:"success"`
		Data    PurchaseOrder `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approved))
	require.Equal(t, "approved", approved.Data.Status)
	require.NotNil(t, approved.Data.ApprovedBy)
	require.Equal(t, "mgr1", *approved.Data.ApprovedBy)
	require.NotNil(t, approved.Data.ApprovedAt)
}

func TestOrderGetIncludesItemsKey(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/purchase-orders", map[string]any{
		"po_number":     "PO-2025-002",
		"vendor_id":     uuid.NewString(),
		"department_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data PurchaseOrderWithItems `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodGet, "/api/purchase-orders/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The detail payload always carries the items key, even when empty.
	var raw struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw.Data, "items")
	require.Equal(t, "[]", string(raw.Data["items"]))
}

func TestOrderStatusRequiresStatusField(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/purchase-orders", map[string]any{
		"po_number":     "PO-2025-003",
		"vendor_id":     uuid.NewString(),
		"department_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data PurchaseOrderWithItems `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPatch, "/api/purchase-orders/"+created.Data.ID+"/status", map[string]any{
		"approved_by": "mgr1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var failed struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failed))
	require.False(t, failed.Success)
	require.Equal(t, "Status is required", failed.Message)
}

func TestOrderDeleteThenGetReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/purchase-orders", map[string]any{
		"po_number":     "PO-2025-004",
		"vendor_id":     uuid.NewString(),
		"department_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data PurchaseOrderWithItems `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodDelete, "/api/purchase-orders/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/purchase-orders/"+created.Data.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var failed struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failed))
	require.Equal(t, "Purchase order not found", failed.Message)
}
