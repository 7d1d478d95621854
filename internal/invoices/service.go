package invoices

import "context"

// Service exposes invoice operations to the HTTP layer.
type Service struct {
	repo Repository
}

// NewService constructs an invoice service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]Invoice, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *Service) ListByPurchaseOrder(ctx context.Context, purchaseOrderID string) ([]Invoice, error) {
	return s.repo.ListByPurchaseOrder(ctx, purchaseOrderID)
}

func (s *Service) Get(ctx context.Context, id string) (Invoice, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id string, input UpdateInvoiceInput) (Invoice, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (Invoice, error) {
	return s.repo.UpdateStatus(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
