package vendors

import "context"

// Service exposes vendor operations to the HTTP layer.
type Service struct {
	repo Repository
}

// NewService constructs a vendor service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Vendor, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]Vendor, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Vendor, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateVendorInput) (Vendor, error) {
	return s.repo.Create(ctx, input)
}

func (s *Service) Update(ctx context.Context, id string, input UpdateVendorInput) (Vendor, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
