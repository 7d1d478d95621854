package purchaseorders

import "context"

// Service exposes purchase order operations to the HTTP layer.
type Service struct {
	repo Repository
}

// NewService constructs a purchase order service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]PurchaseOrder, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]PurchaseOrder, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *Service) ListByDepartment(ctx context.Context, departmentID string) ([]PurchaseOrder, error) {
	return s.repo.ListByDepartment(ctx, departmentID)
}

func (s *Service) Get(ctx context.Context, id string) (PurchaseOrder, error) {
	return s.repo.Get(ctx, id)
}

// GetWithItems loads the order and its line items for the detail view.
func (s *Service) GetWithItems(ctx context.Context, id string) (PurchaseOrderWithItems, error) {
	po, err := s.repo.Get(ctx, id)
	if err != nil {
		return PurchaseOrderWithItems{}, err
	}
	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return PurchaseOrderWithItems{}, err
	}
	return PurchaseOrderWithItems{PurchaseOrder: po, Items: items}, nil
}

func (s *Service) Create(ctx context.Context, input CreateOrderInput) (PurchaseOrderWithItems, error) {
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id string, input UpdateOrderInput) (PurchaseOrder, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (PurchaseOrder, error) {
	return s.repo.UpdateStatus(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
