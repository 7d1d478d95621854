package purchaseorders

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

type memoryOrderRepo struct {
	orders map[string]PurchaseOrder
	items  map[string][]PurchaseOrderItem
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{
		orders: make(map[string]PurchaseOrder),
		items:  make(map[string][]PurchaseOrderItem),
	}
}

func (r *memoryOrderRepo) List(ctx context.Context) ([]PurchaseOrder, error) {
	out := []PurchaseOrder{}
	for _, po := range r.orders {
		out = append(out, po)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

func (r *memoryOrderRepo) ListByVendor(ctx context.Context, vendorID string) ([]PurchaseOrder, error) {
	all, _ := r.List(ctx)
	out := []PurchaseOrder{}
	for _, po := range all {
		if po.VendorID == vendorID {
			out = append(out, po)
		}
	}
	return out, nil
}

func (r *memoryOrderRepo) ListByDepartment(ctx context.Context, departmentID string) ([]PurchaseOrder, error) {
	all, _ := r.List(ctx)
	out := []PurchaseOrder{}
	for _, po := range all {
		if po.DepartmentID == departmentID {
			out = append(out, po)
		}
	}
	return out, nil
}

func (r *memoryOrderRepo) Get(ctx context.Context, id string) (PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return PurchaseOrder{}, httpx.ErrNotFound
	}
	return po, nil
}

func (r *memoryOrderRepo) ListItems(ctx context.Context, orderID string) ([]PurchaseOrderItem, error) {
	items := []PurchaseOrderItem{}
	items = append(items, r.items[orderID]...)
	return items, nil
}

func (r *memoryOrderRepo) Create(ctx context.Context, input CreateOrderInput) (PurchaseOrderWithItems, error) {
	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}
	status := input.Status
	if status == "" {
		status = "pending"
	}
	now := time.Now()

	po := PurchaseOrder{
		ID:             uuid.NewString(),
		PONumber:       input.PONumber,
		VendorID:       input.VendorID,
		DepartmentID:   input.DepartmentID,
		OrderDate:      orderDate,
		DeliveryDate:   input.DeliveryDate,
		TotalAmount:    input.TotalAmount,
		TaxAmount:      input.TaxAmount,
		ShippingAmount: input.ShippingAmount,
		GrandTotal:     input.GrandTotal,
		Status:         status,
		ApprovedBy:     input.ApprovedBy,
		ApprovedAt:     input.ApprovedAt,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	items := []PurchaseOrderItem{}
	for _, it := range input.Items {
		items = append(items, PurchaseOrderItem{
			ID:              uuid.NewString(),
			PurchaseOrderID: po.ID,
			ItemDescription: it.ItemDescription,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			TotalPrice:      it.TotalPrice,
			CreatedAt:       now,
		})
	}

	r.orders[po.ID] = po
	r.items[po.ID] = items
	return PurchaseOrderWithItems{PurchaseOrder: po, Items: items}, nil
}

func (r *memoryOrderRepo) Update(ctx context.Context, id string, input UpdateOrderInput) (PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return PurchaseOrder{}, httpx.ErrNotFound
	}
	po.DeliveryDate = input.DeliveryDate
	po.TotalAmount = input.TotalAmount
	po.TaxAmount = input.TaxAmount
	po.ShippingAmount = input.ShippingAmount
	po.GrandTotal = input.GrandTotal
	po.Status = input.Status
	po.ApprovedBy = input.ApprovedBy
	po.ApprovedAt = input.ApprovedAt
	po.Notes = input.Notes
	po.UpdatedAt = time.Now()
	r.orders[id] = po
	return po, nil
}

func (r *memoryOrderRepo) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return PurchaseOrder{}, httpx.ErrNotFound
	}
	now := time.Now()
	po.Status = input.Status
	po.ApprovedBy = input.ApprovedBy
	po.ApprovedAt = &now
	if input.Notes != nil {
		po.Notes = input.Notes
	}
	po.UpdatedAt = now
	r.orders[id] = po
	return po, nil
}

func (r *memoryOrderRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	delete(r.orders, id)
	return nil
}

func TestCreateOrderPersistsAllItems(t *testing.T) {
	svc := NewService(newMemoryOrderRepo())

	created, err := svc.Create(context.Background(), CreateOrderInput{
		PONumber:     "PO-2025-001",
		VendorID:     uuid.NewString(),
		DepartmentID: uuid.NewString(),
		TotalAmount:  300,
		GrandTotal:   300,
		Items: []CreateOrderItemInput{
			{ItemDescription: "Laptops", Quantity: 2, UnitPrice: 100, TotalPrice: 200},
			{ItemDescription: "Monitors", Quantity: 1, UnitPrice: 100, TotalPrice: 100},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "pending", created.Status)
	require.Len(t, created.Items, 2)

	seen := map[string]bool{}
	for _, item := range created.Items {
		require.NotEmpty(t, item.ID)
		require.False(t, seen[item.ID], "item ids must be distinct")
		seen[item.ID] = true
		require.Equal(t, created.ID, item.PurchaseOrderID)
	}
}

func TestCreateOrderDefaultsOrderDate(t *testing.T) {
	svc := NewService(newMemoryOrderRepo())

	before := time.Now()
	created, err := svc.Create(context.Background(), CreateOrderInput{
		PONumber:     "PO-2025-002",
		VendorID:     uuid.NewString(),
		DepartmentID: uuid.NewString(),
	})
	require.NoError(t, err)
	require.False(t, created.OrderDate.Before(before))
}

func TestGetWithItemsReturnsDetail(t *testing.T) {
	repo := newMemoryOrderRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateOrderInput{
		PONumber:     "PO-2025-003",
		VendorID:     uuid.NewString(),
		DepartmentID: uuid.NewString(),
		Items: []CreateOrderItemInput{
			{ItemDescription: "Office chairs", Quantity: 4, UnitPrice: 50, TotalPrice: 200},
		},
	})
	require.NoError(t, err)

	detail, err := svc.GetWithItems(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, detail.ID)
	require.Len(t, detail.Items, 1)
	require.Equal(t, "Office chairs", detail.Items[0].ItemDescription)
}

func TestGetWithItemsMissingOrder(t *testing.T) {
	svc := NewService(newMemoryOrderRepo())

	_, err := svc.GetWithItems(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestUpdateStatusStampsApprovalAndKeepsNotes(t *testing.T) {
	repo := newMemoryOrderRepo()
	svc := NewService(repo)
	ctx := context.Background()

	notes := "urgent restock"
	created, err := svc.Create(ctx, CreateOrderInput{
		PONumber:     "PO-2025-004",
		VendorID:     uuid.NewString(),
		DepartmentID: uuid.NewString(),
		Notes:        &notes,
	})
	require.NoError(t, err)

	approver := "mgr1"
	updated, err := svc.UpdateStatus(ctx, created.ID, StatusUpdateInput{
		Status:     "approved",
		ApprovedBy: &approver,
	})
	require.NoError(t, err)
	require.Equal(t, "approved", updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	require.Equal(t, "mgr1", *updated.ApprovedBy)
	require.NotNil(t, updated.ApprovedAt)
	require.NotNil(t, updated.Notes)
	require.Equal(t, "urgent restock", *updated.Notes, "nil notes must leave stored notes untouched")

	replacement := "approved after review"
	updated, err = svc.UpdateStatus(ctx, created.ID, StatusUpdateInput{
		Status: "approved",
		Notes:  &replacement,
	})
	require.NoError(t, err)
	require.Equal(t, "approved after review", *updated.Notes)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	repo := newMemoryOrderRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateOrderInput{
		PONumber:     "PO-2025-005",
		VendorID:     uuid.NewString(),
		DepartmentID: uuid.NewString(),
		Items: []CreateOrderItemInput{
			{ItemDescription: "Cables", Quantity: 10, UnitPrice: 5, TotalPrice: 50},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, httpx.ErrNotFound)

	items, err := repo.ListItems(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}
