package payments

import "context"

// Service exposes vendor payment operations to the HTTP layer.
type Service struct {
	repo Repository
}

// NewService constructs a vendor payment service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]VendorPayment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByInvoice(ctx context.Context, invoiceID string) ([]VendorPayment, error) {
	return s.repo.ListByInvoice(ctx, invoiceID)
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]VendorPayment, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *Service) Get(ctx context.Context, id string) (VendorPayment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreatePaymentInput) (VendorPayment, error) {
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id string, input UpdatePaymentInput) (VendorPayment, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (VendorPayment, error) {
	return s.repo.UpdateStatus(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
