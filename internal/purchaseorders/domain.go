package purchaseorders

import "time"

// PurchaseOrder is the parent row of an order placed with a vendor.
// VendorName and DepartmentName are join-only display fields.
type PurchaseOrder struct {
	ID             string     `json:"id"`
	PONumber       string     `json:"po_number"`
	VendorID       string     `json:"vendor_id"`
	DepartmentID   string     `json:"department_id"`
	OrderDate      time.Time  `json:"order_date"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	TotalAmount    float64    `json:"total_amount"`
	TaxAmount      float64    `json:"tax_amount"`
	ShippingAmount float64    `json:"shipping_amount"`
	GrandTotal     float64    `json:"grand_total"`
	Status         string     `json:"status"`
	ApprovedBy     *string    `json:"approved_by"`
	ApprovedAt     *time.Time `json:"approved_at"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	VendorName     string     `json:"vendor_name,omitempty"`
	DepartmentName string     `json:"department_name,omitempty"`
}

// PurchaseOrderItem is a line item owned by a purchase order. Line items are
// only ever written as part of the parent's create/delete transaction.
type PurchaseOrderItem struct {
	ID              string    `json:"id"`
	PurchaseOrderID string    `json:"purchase_order_id"`
	ItemDescription string    `json:"item_description"`
	Quantity        float64   `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	TotalPrice      float64   `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
}

// PurchaseOrderWithItems is the detail shape returned by get and create.
type PurchaseOrderWithItems struct {
	PurchaseOrder
	Items []PurchaseOrderItem `json:"items"`
}

// CreateOrderInput carries caller-supplied fields for a new purchase order
// and its line items. Ids are generated by the repository; monetary totals
// are taken as given and never recomputed from the items.
type CreateOrderInput struct {
	PONumber       string                 `json:"po_number"`
	VendorID       string                 `json:"vendor_id"`
	DepartmentID   string                 `json:"department_id"`
	OrderDate      *time.Time             `json:"order_date"`
	DeliveryDate   *time.Time             `json:"delivery_date"`
	TotalAmount    float64                `json:"total_amount"`
	TaxAmount      float64                `json:"tax_amount"`
	ShippingAmount float64                `json:"shipping_amount"`
	GrandTotal     float64                `json:"grand_total"`
	Status         string                 `json:"status"`
	ApprovedBy     *string                `json:"approved_by"`
	ApprovedAt     *time.Time             `json:"approved_at"`
	Notes          *string                `json:"notes"`
	Items          []CreateOrderItemInput `json:"items"`
}

// CreateOrderItemInput carries a single caller-supplied line item.
type CreateOrderItemInput struct {
	ItemDescription string  `json:"item_description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TotalPrice      float64 `json:"total_price"`
}

// UpdateOrderInput carries the full mutable field set for a purchase order.
// The po number, vendor, department, and order date are immutable, and the
// item set can only change through delete-and-recreate.
type UpdateOrderInput struct {
	DeliveryDate   *time.Time `json:"delivery_date"`
	TotalAmount    float64    `json:"total_amount"`
	TaxAmount      float64    `json:"tax_amount"`
	ShippingAmount float64    `json:"shipping_amount"`
	GrandTotal     float64    `json:"grand_total"`
	Status         string     `json:"status"`
	ApprovedBy     *string    `json:"approved_by"`
	ApprovedAt     *time.Time `json:"approved_at"`
	Notes          *string    `json:"notes"`
}

// StatusUpdateInput carries a status transition. Notes replace the stored
// notes only when supplied; a nil Notes leaves them untouched.
type StatusUpdateInput struct {
	Status     string  `json:"status" validate:"required"`
	ApprovedBy *string `json:"approved_by"`
	Notes      *string `json:"notes"`
}
