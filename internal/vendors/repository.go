package vendors

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vendorpay/vendorpay/internal/platform/db"
	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

// Repository defines vendor data access.
type Repository interface {
	List(ctx context.Context) ([]Vendor, error)
	ListActive(ctx context.Context) ([]Vendor, error)
	Get(ctx context.Context, id string) (Vendor, error)
	Create(ctx context.Context, input CreateVendorInput) (Vendor, error)
	Update(ctx context.Context, id string, input UpdateVendorInput) (Vendor, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool db.Querier
}

// NewRepository constructs a PostgreSQL backed vendor repository.
func NewRepository(pool db.Querier) Repository {
	return &repository{pool: pool}
}

const vendorColumns = `id, user_id, vendor_code, company_name, contact_person,
	email, phone, address, tax_id, bank_account_name,
	bank_account_number, bank_name, bank_branch, payment_terms, is_active,
	created_at, updated_at`

func scanVendor(row pgx.Row) (Vendor, error) {
	var v Vendor
	err := row.Scan(&v.ID, &v.UserID, &v.VendorCode, &v.CompanyName, &v.ContactPerson,
		&v.Email, &v.Phone, &v.Address, &v.TaxID, &v.BankAccountName,
		&v.BankAccountNumber, &v.BankName, &v.BankBranch, &v.PaymentTerms, &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *repository) List(ctx context.Context) ([]Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY company_name`
	return r.queryVendors(ctx, query)
}

func (r *repository) ListActive(ctx context.Context) ([]Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE is_active = true ORDER BY company_name`
	return r.queryVendors(ctx, query)
}

func (r *repository) queryVendors(ctx context.Context, query string, args ...any) ([]Vendor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	v, err := scanVendor(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Vendor{}, httpx.ErrNotFound
	}
	return v, err
}

func (r *repository) Create(ctx context.Context, input CreateVendorInput) (Vendor, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	now := time.Now()

	query := `INSERT INTO vendors (
			id, user_id, vendor_code, company_name, contact_person,
			email, phone, address, tax_id, bank_account_name,
			bank_account_number, bank_name, bank_branch, payment_terms, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + vendorColumns

	return scanVendor(r.pool.QueryRow(ctx, query,
		uuid.NewString(), input.UserID, input.VendorCode, input.CompanyName, input.ContactPerson,
		input.Email, input.Phone, input.Address, input.TaxID, input.BankAccountName,
		input.BankAccountNumber, input.BankName, input.BankBranch, input.PaymentTerms, isActive,
		now, now))
}

func (r *repository) Update(ctx context.Context, id string, input UpdateVendorInput) (Vendor, error) {
	query := `UPDATE vendors SET
			company_name = $1,
			contact_person = $2,
			email = $3,
			phone = $4,
			address = $5,
			tax_id = $6,
			bank_account_name = $7,
			bank_account_number = $8,
			bank_name = $9,
			bank_branch = $10,
			payment_terms = $11,
			is_active = COALESCE($12, is_active),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $13
		RETURNING ` + vendorColumns

	v, err := scanVendor(r.pool.QueryRow(ctx, query,
		input.CompanyName, input.ContactPerson, input.Email, input.Phone, input.Address,
		input.TaxID, input.BankAccountName, input.BankAccountNumber, input.BankName,
		input.BankBranch, input.PaymentTerms, input.IsActive, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Vendor{}, httpx.ErrNotFound
	}
	return v, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	return err
}
