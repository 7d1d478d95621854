package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vendorpay/vendorpay/internal/platform/db"
	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

// Repository defines invoice data access.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	ListByVendor(ctx context.Context, vendorID string) ([]Invoice, error)
	ListByPurchaseOrder(ctx context.Context, purchaseOrderID string) ([]Invoice, error)
	Get(ctx context.Context, id string) (Invoice, error)
	Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error)
	Update(ctx context.Context, id string, input UpdateInvoiceInput) (Invoice, error)
	UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (Invoice, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool db.Querier
}

// NewRepository constructs a PostgreSQL backed invoice repository.
func NewRepository(pool db.Querier) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `i.id, i.invoice_number, i.vendor_id, i.purchase_order_id, i.invoice_date,
	i.due_date, i.total_amount, i.tax_amount, i.shipping_amount, i.grand_total,
	i.status, i.approved_by, i.approved_at, i.notes, i.created_at, i.updated_at`

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.VendorID, &inv.PurchaseOrderID, &inv.InvoiceDate,
		&inv.DueDate, &inv.TotalAmount, &inv.TaxAmount, &inv.ShippingAmount, &inv.GrandTotal,
		&inv.Status, &inv.ApprovedBy, &inv.ApprovedAt, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt)
	return inv, err
}

func scanInvoiceWithNames(row pgx.Row) (Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.VendorID, &inv.PurchaseOrderID, &inv.InvoiceDate,
		&inv.DueDate, &inv.TotalAmount, &inv.TaxAmount, &inv.ShippingAmount, &inv.GrandTotal,
		&inv.Status, &inv.ApprovedBy, &inv.ApprovedAt, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.VendorName, &inv.PONumber)
	return inv, err
}

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	query := `SELECT ` + invoiceColumns + `, v.company_name AS vendor_name, po.po_number
		FROM invoices i
		JOIN vendors v ON i.vendor_id = v.id
		LEFT JOIN purchase_orders po ON i.purchase_order_id = po.id
		ORDER BY i.invoice_date DESC`
	return r.queryInvoices(ctx, query)
}

func (r *repository) ListByVendor(ctx context.Context, vendorID string) ([]Invoice, error) {
	query := `SELECT ` + invoiceColumns + `, '' AS vendor_name, po.po_number
		FROM invoices i
		LEFT JOIN purchase_orders po ON i.purchase_order_id = po.id
		WHERE i.vendor_id = $1
		ORDER BY i.invoice_date DESC`
	return r.queryInvoices(ctx, query, vendorID)
}

func (r *repository) ListByPurchaseOrder(ctx context.Context, purchaseOrderID string) ([]Invoice, error) {
	query := `SELECT ` + invoiceColumns + `, v.company_name AS vendor_name, NULL AS po_number
		FROM invoices i
		JOIN vendors v ON i.vendor_id = v.id
		WHERE i.purchase_order_id = $1
		ORDER BY i.invoice_date DESC`
	return r.queryInvoices(ctx, query, purchaseOrderID)
}

func (r *repository) queryInvoices(ctx context.Context, query string, args ...any) ([]Invoice, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []Invoice{}
	for rows.Next() {
		inv, err := scanInvoiceWithNames(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Invoice, error) {
	query := `SELECT ` + invoiceColumns + `, v.company_name AS vendor_name, po.po_number
		FROM invoices i
		JOIN vendors v ON i.vendor_id = v.id
		LEFT JOIN purchase_orders po ON i.purchase_order_id = po.id
		WHERE i.id = $1`
	inv, err := scanInvoiceWithNames(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, httpx.ErrNotFound
	}
	return inv, err
}

func (r *repository) Create(ctx context.Context, input CreateInvoiceInput) (Invoice, error) {
	invoiceDate := time.Now()
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}
	status := input.Status
	if status == "" {
		status = "pending"
	}
	now := time.Now()

	query := `INSERT INTO invoices (
			id, invoice_number, vendor_id, purchase_order_id, invoice_date, due_date,
			total_amount, tax_amount, shipping_amount, grand_total,
			status, approved_by, approved_at, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, invoice_number, vendor_id, purchase_order_id, invoice_date, due_date,
			total_amount, tax_amount, shipping_amount, grand_total,
			status, approved_by, approved_at, notes, created_at, updated_at`

	return scanInvoice(r.pool.QueryRow(ctx, query,
		uuid.NewString(), input.InvoiceNumber, input.VendorID, input.PurchaseOrderID, invoiceDate, input.DueDate,
		input.TotalAmount, input.TaxAmount, input.ShippingAmount, input.GrandTotal,
		status, input.ApprovedBy, input.ApprovedAt, input.Notes, now, now))
}

// Update rewrites every mutable column. An omitted invoice date keeps the
// stored one rather than shifting it to the update time.
func (r *repository) Update(ctx context.Context, id string, input UpdateInvoiceInput) (Invoice, error) {
	query := `UPDATE invoices SET
			invoice_date = COALESCE($1, invoice_date),
			due_date = $2,
			total_amount = $3,
			tax_amount = $4,
			shipping_amount = $5,
			grand_total = $6,
			status = $7,
			approved_by = $8,
			approved_at = $9,
			notes = $10,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING id, invoice_number, vendor_id, purchase_order_id, invoice_date, due_date,
			total_amount, tax_amount, shipping_amount, grand_total,
			status, approved_by, approved_at, notes, created_at, updated_at`

	inv, err := scanInvoice(r.pool.QueryRow(ctx, query,
		input.InvoiceDate, input.DueDate, input.TotalAmount, input.TaxAmount, input.ShippingAmount,
		input.GrandTotal, input.Status, input.ApprovedBy, input.ApprovedAt, input.Notes, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, httpx.ErrNotFound
	}
	return inv, err
}

// UpdateStatus stamps the approver and transition timestamp on every call
// but only replaces the stored notes when a new value is supplied.
func (r *repository) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (Invoice, error) {
	query := `UPDATE invoices SET
			status = $1,
			approved_by = $2,
			approved_at = CURRENT_TIMESTAMP,
			notes = CASE WHEN $3::text IS NOT NULL THEN $3 ELSE notes END,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING id, invoice_number, vendor_id, purchase_order_id, invoice_date, due_date,
			total_amount, tax_amount, shipping_amount, grand_total,
			status, approved_by, approved_at, notes, created_at, updated_at`

	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, input.Status, input.ApprovedBy, input.Notes, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, httpx.ErrNotFound
	}
	return inv, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}
