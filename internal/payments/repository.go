package payments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vendorpay/vendorpay/internal/platform/db"
	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

// Repository defines vendor payment data access.
type Repository interface {
	List(ctx context.Context) ([]VendorPayment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]VendorPayment, error)
	ListByVendor(ctx context.Context, vendorID string) ([]VendorPayment, error)
	Get(ctx context.Context, id string) (VendorPayment, error)
	Create(ctx context.Context, input CreatePaymentInput) (VendorPayment, error)
	Update(ctx context.Context, id string, input UpdatePaymentInput) (VendorPayment, error)
	UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (VendorPayment, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool db.Querier
}

// NewRepository constructs a PostgreSQL backed vendor payment repository.
func NewRepository(pool db.Querier) Repository {
	return &repository{pool: pool}
}

const paymentColumns = `vp.id, vp.invoice_id, vp.payment_date, vp.payment_amount, vp.payment_method,
	vp.transaction_reference, vp.status, vp.processed_by, vp.processed_at, vp.notes,
	vp.created_at, vp.updated_at`

func scanPayment(row pgx.Row) (VendorPayment, error) {
	var p VendorPayment
	err := row.Scan(&p.ID, &p.InvoiceID, &p.PaymentDate, &p.PaymentAmount, &p.PaymentMethod,
		&p.TransactionReference, &p.Status, &p.ProcessedBy, &p.ProcessedAt, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanPaymentWithNames(row pgx.Row) (VendorPayment, error) {
	var p VendorPayment
	err := row.Scan(&p.ID, &p.InvoiceID, &p.PaymentDate, &p.PaymentAmount, &p.PaymentMethod,
		&p.TransactionReference, &p.Status, &p.ProcessedBy, &p.ProcessedAt, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt, &p.InvoiceNumber, &p.VendorID, &p.VendorName)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]VendorPayment, error) {
	query := `SELECT ` + paymentColumns + `, i.invoice_number, i.vendor_id, v.company_name AS vendor_name
		FROM vendor_payments vp
		JOIN invoices i ON vp.invoice_id = i.id
		JOIN vendors v ON i.vendor_id = v.id
		ORDER BY vp.payment_date DESC`
	return r.queryPayments(ctx, query)
}

func (r *repository) ListByInvoice(ctx context.Context, invoiceID string) ([]VendorPayment, error) {
	query := `SELECT ` + paymentColumns + `, '' AS invoice_number, '' AS vendor_id, '' AS vendor_name
		FROM vendor_payments vp
		WHERE vp.invoice_id = $1
		ORDER BY vp.payment_date DESC`
	return r.queryPayments(ctx, query, invoiceID)
}

func (r *repository) ListByVendor(ctx context.Context, vendorID string) ([]VendorPayment, error) {
	query := `SELECT ` + paymentColumns + `, i.invoice_number, '' AS vendor_id, '' AS vendor_name
		FROM vendor_payments vp
		JOIN invoices i ON vp.invoice_id = i.id
		WHERE i.vendor_id = $1
		ORDER BY vp.payment_date DESC`
	return r.queryPayments(ctx, query, vendorID)
}

func (r *repository) queryPayments(ctx context.Context, query string, args ...any) ([]VendorPayment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []VendorPayment{}
	for rows.Next() {
		p, err := scanPaymentWithNames(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (VendorPayment, error) {
	query := `SELECT ` + paymentColumns + `, i.invoice_number, i.vendor_id, v.company_name AS vendor_name
		FROM vendor_payments vp
		JOIN invoices i ON vp.invoice_id = i.id
		JOIN vendors v ON i.vendor_id = v.id
		WHERE vp.id = $1`
	p, err := scanPaymentWithNames(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return VendorPayment{}, httpx.ErrNotFound
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, input CreatePaymentInput) (VendorPayment, error) {
	paymentDate := time.Now()
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}
	status := input.Status
	if status == "" {
		status = "pending"
	}
	now := time.Now()

	query := `INSERT INTO vendor_payments (
			id, invoice_id, payment_date, payment_amount, payment_method,
			transaction_reference, status, processed_by, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + createdPaymentColumns

	return scanPayment(r.pool.QueryRow(ctx, query,
		uuid.NewString(), input.InvoiceID, paymentDate, input.PaymentAmount, input.PaymentMethod,
		input.TransactionReference, status, input.ProcessedBy, input.Notes, now, now))
}

const createdPaymentColumns = `id, invoice_id, payment_date, payment_amount, payment_method,
	transaction_reference, status, processed_by, processed_at, notes, created_at, updated_at`

// Update rewrites every mutable column. An omitted payment date keeps the
// stored one rather than shifting it to the update time.
func (r *repository) Update(ctx context.Context, id string, input UpdatePaymentInput) (VendorPayment, error) {
	query := `UPDATE vendor_payments SET
			payment_date = COALESCE($1, payment_date),
			payment_amount = $2,
			payment_method = $3,
			transaction_reference = $4,
			status = $5,
			processed_by = $6,
			notes = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING ` + createdPaymentColumns

	p, err := scanPayment(r.pool.QueryRow(ctx, query,
		input.PaymentDate, input.PaymentAmount, input.PaymentMethod,
		input.TransactionReference, input.Status, input.ProcessedBy, input.Notes, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return VendorPayment{}, httpx.ErrNotFound
	}
	return p, err
}

// UpdateStatus stamps the processor and transition timestamp on every call
// but only replaces the stored notes when a new value is supplied.
func (r *repository) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (VendorPayment, error) {
	query := `UPDATE vendor_payments SET
			status = $1,
			processed_by = $2,
			processed_at = CURRENT_TIMESTAMP,
			notes = CASE WHEN $3::text IS NOT NULL THEN $3 ELSE notes END,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING ` + createdPaymentColumns

	p, err := scanPayment(r.pool.QueryRow(ctx, query, input.Status, input.ProcessedBy, input.Notes, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return VendorPayment{}, httpx.ErrNotFound
	}
	return p, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM vendor_payments WHERE id = $1`, id)
	return err
}
