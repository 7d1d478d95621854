package purchaseorders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vendorpay/vendorpay/internal/platform/db"
	"github.com/vendorpay/vendorpay/internal/platform/httpx"
)

// Repository defines purchase order data access. Create and Delete are the
// only multi-statement operations in the system and run inside a single
// scoped transaction.
type Repository interface {
	List(ctx context.Context) ([]PurchaseOrder, error)
	ListByVendor(ctx context.Context, vendorID string) ([]PurchaseOrder, error)
	ListByDepartment(ctx context.Context, departmentID string) ([]PurchaseOrder, error)
	Get(ctx context.Context, id string) (PurchaseOrder, error)
	ListItems(ctx context.Context, orderID string) ([]PurchaseOrderItem, error)
	Create(ctx context.Context, input CreateOrderInput) (PurchaseOrderWithItems, error)
	Update(ctx context.Context, id string, input UpdateOrderInput) (PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool db.Querier
}

// NewRepository constructs a PostgreSQL backed purchase order repository.
func NewRepository(pool db.Querier) Repository {
	return &repository{pool: pool}
}

const orderColumns = `po.id, po.po_number, po.vendor_id, po.department_id, po.order_date,
	po.delivery_date, po.total_amount, po.tax_amount, po.shipping_amount, po.grand_total,
	po.status, po.approved_by, po.approved_at, po.notes, po.created_at, po.updated_at`

func scanOrder(row pgx.Row) (PurchaseOrder, error) {
	var po PurchaseOrder
	err := row.Scan(&po.ID, &po.PONumber, &po.VendorID, &po.DepartmentID, &po.OrderDate,
		&po.DeliveryDate, &po.TotalAmount, &po.TaxAmount, &po.ShippingAmount, &po.GrandTotal,
		&po.Status, &po.ApprovedBy, &po.ApprovedAt, &po.Notes, &po.CreatedAt, &po.UpdatedAt)
	return po, err
}

func scanOrderWithNames(row pgx.Row) (PurchaseOrder, error) {
	var po PurchaseOrder
	err := row.Scan(&po.ID, &po.PONumber, &po.VendorID, &po.DepartmentID, &po.OrderDate,
		&po.DeliveryDate, &po.TotalAmount, &po.TaxAmount, &po.ShippingAmount, &po.GrandTotal,
		&po.Status, &po.ApprovedBy, &po.ApprovedAt, &po.Notes, &po.CreatedAt, &po.UpdatedAt,
		&po.VendorName, &po.DepartmentName)
	return po, err
}

func (r *repository) List(ctx context.Context) ([]PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + `, v.company_name AS vendor_name, d.name AS department_name
		FROM purchase_orders po
		JOIN vendors v ON po.vendor_id = v.id
		JOIN departments d ON po.department_id = d.id
		ORDER BY po.order_date DESC`
	return r.queryOrders(ctx, query)
}

func (r *repository) ListByVendor(ctx context.Context, vendorID string) ([]PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + `, '' AS vendor_name, d.name AS department_name
		FROM purchase_orders po
		JOIN departments d ON po.department_id = d.id
		WHERE po.vendor_id = $1
		ORDER BY po.order_date DESC`
	return r.queryOrders(ctx, query, vendorID)
}

func (r *repository) ListByDepartment(ctx context.Context, departmentID string) ([]PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + `, v.company_name AS vendor_name, '' AS department_name
		FROM purchase_orders po
		JOIN vendors v ON po.vendor_id = v.id
		WHERE po.department_id = $1
		ORDER BY po.order_date DESC`
	return r.queryOrders(ctx, query, departmentID)
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]PurchaseOrder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []PurchaseOrder{}
	for rows.Next() {
		po, err := scanOrderWithNames(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + `, v.company_name AS vendor_name, d.name AS department_name
		FROM purchase_orders po
		JOIN vendors v ON po.vendor_id = v.id
		JOIN departments d ON po.department_id = d.id
		WHERE po.id = $1`
	po, err := scanOrderWithNames(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return PurchaseOrder{}, httpx.ErrNotFound
	}
	return po, err
}

func (r *repository) ListItems(ctx context.Context, orderID string) ([]PurchaseOrderItem, error) {
	query := `SELECT id, purchase_order_id, item_description, quantity, unit_price, total_price, created_at
		FROM purchase_order_items
		WHERE purchase_order_id = $1
		ORDER BY id`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []PurchaseOrderItem{}
	for rows.Next() {
		var item PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.PurchaseOrderID, &item.ItemDescription,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create inserts the parent row and every line item inside one transaction.
// Either the order and all of its items are persisted, or none of them are.
// The returned items echo the supplied sequence augmented with generated ids
// rather than being re-read from storage.
func (r *repository) Create(ctx context.Context, input CreateOrderInput) (PurchaseOrderWithItems, error) {
	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}
	status := input.Status
	if status == "" {
		status = "pending"
	}
	now := time.Now()

	var order PurchaseOrder
	items := []PurchaseOrderItem{}

	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		orderID := uuid.NewString()

		insertOrder := `INSERT INTO purchase_orders (
				id, po_number, vendor_id, department_id, order_date, delivery_date,
				total_amount, tax_amount, shipping_amount, grand_total,
				status, approved_by, approved_at, notes, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING id, po_number, vendor_id, department_id, order_date, delivery_date,
				total_amount, tax_amount, shipping_amount, grand_total,
				status, approved_by, approved_at, notes, created_at, updated_at`

		var err error
		order, err = scanOrder(tx.QueryRow(ctx, insertOrder,
			orderID, input.PONumber, input.VendorID, input.DepartmentID, orderDate, input.DeliveryDate,
			input.TotalAmount, input.TaxAmount, input.ShippingAmount, input.GrandTotal,
			status, input.ApprovedBy, input.ApprovedAt, input.Notes, now, now))
		if err != nil {
			return err
		}

		insertItem := `INSERT INTO purchase_order_items (
				id, purchase_order_id, item_description, quantity, unit_price, total_price, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`

		for _, it := range input.Items {
			itemID := uuid.NewString()
			if _, err := tx.Exec(ctx, insertItem,
				itemID, orderID, it.ItemDescription, it.Quantity, it.UnitPrice, it.TotalPrice, now); err != nil {
				return err
			}
			items = append(items, PurchaseOrderItem{
				ID:              itemID,
				PurchaseOrderID: orderID,
				ItemDescription: it.ItemDescription,
				Quantity:        it.Quantity,
				UnitPrice:       it.UnitPrice,
				TotalPrice:      it.TotalPrice,
				CreatedAt:       now,
			})
		}
		return nil
	})
	if err != nil {
		return PurchaseOrderWithItems{}, err
	}

	return PurchaseOrderWithItems{PurchaseOrder: order, Items: items}, nil
}

func (r *repository) Update(ctx context.Context, id string, input UpdateOrderInput) (PurchaseOrder, error) {
	query := `UPDATE purchase_orders SET
			delivery_date = $1,
			total_amount = $2,
			tax_amount = $3,
			shipping_amount = $4,
			grand_total = $5,
			status = $6,
			approved_by = $7,
			approved_at = $8,
			notes = $9,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING id, po_number, vendor_id, department_id, order_date, delivery_date,
			total_amount, tax_amount, shipping_amount, grand_total,
			status, approved_by, approved_at, notes, created_at, updated_at`

	po, err := scanOrder(r.pool.QueryRow(ctx, query,
		input.DeliveryDate, input.TotalAmount, input.TaxAmount, input.ShippingAmount,
		input.GrandTotal, input.Status, input.ApprovedBy, input.ApprovedAt, input.Notes, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return PurchaseOrder{}, httpx.ErrNotFound
	}
	return po, err
}

// UpdateStatus stamps the approver and transition timestamp on every call
// but only replaces the stored notes when a new value is supplied.
func (r *repository) UpdateStatus(ctx context.Context, id string, input StatusUpdateInput) (PurchaseOrder, error) {
	query := `UPDATE purchase_orders SET
			status = $1,
			approved_by = $2,
			approved_at = CURRENT_TIMESTAMP,
			notes = CASE WHEN $3::text IS NOT NULL THEN $3 ELSE notes END,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING id, po_number, vendor_id, department_id, order_date, delivery_date,
			total_amount, tax_amount, shipping_amount, grand_total,
			status, approved_by, approved_at, notes, created_at, updated_at`

	po, err := scanOrder(r.pool.QueryRow(ctx, query, input.Status, input.ApprovedBy, input.Notes, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return PurchaseOrder{}, httpx.ErrNotFound
	}
	return po, err
}

// Delete removes the line items and the parent row inside one transaction.
func (r *repository) Delete(ctx context.Context, id string) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM purchase_order_items WHERE purchase_order_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
		return err
	})
}
