package invoices

import "time"

// Invoice is a bill received from a vendor, optionally tied to a purchase
// order. VendorName and PONumber are join-only display fields.
type Invoice struct {
	ID              string     `json:"id"`
	InvoiceNumber   string     `json:"invoice_number"`
	VendorID        string     `json:"vendor_id"`
	PurchaseOrderID *string    `json:"purchase_order_id"`
	InvoiceDate     time.Time  `json:"invoice_date"`
	DueDate         *time.Time `json:"due_date"`
	TotalAmount     float64    `json:"total_amount"`
	TaxAmount       float64    `json:"tax_amount"`
	ShippingAmount  float64    `json:"shipping_amount"`
	GrandTotal      float64    `json:"grand_total"`
	Status          string     `json:"status"`
	ApprovedBy      *string    `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	Notes           *string    `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	VendorName      string     `json:"vendor_name,omitempty"`
	PONumber        *string    `json:"po_number,omitempty"`
}

// CreateInvoiceInput carries caller-supplied fields for a new invoice.
type CreateInvoiceInput struct {
	InvoiceNumber   string     `json:"invoice_number"`
	VendorID        string     `json:"vendor_id"`
	PurchaseOrderID *string    `json:"purchase_order_id"`
	InvoiceDate     *time.Time `json:"invoice_date"`
	DueDate         *time.Time `json:"due_date"`
	TotalAmount     float64    `json:"total_amount"`
	TaxAmount       float64    `json:"tax_amount"`
	ShippingAmount  float64    `json:"shipping_amount"`
	GrandTotal      float64    `json:"grand_total"`
	Status          string     `json:"status"`
	ApprovedBy      *string    `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	Notes           *string    `json:"notes"`
}

// UpdateInvoiceInput carries the full mutable field set. The invoice
// number, vendor, and purchase order link are immutable after creation.
type UpdateInvoiceInput struct {
	InvoiceDate    *time.Time `json:"invoice_date"`
	DueDate        *time.Time `json:"due_date"`
	TotalAmount    float64    `json:"total_amount"`
	TaxAmount      float64    `json:"tax_amount"`
	ShippingAmount float64    `json:"shipping_amount"`
	GrandTotal     float64    `json:"grand_total"`
	Status         string     `json:"status"`
	ApprovedBy     *string    `json:"approved_by"`
	ApprovedAt     *time.Time `json:"approved_at"`
	Notes          *string    `json:"notes"`
}

// StatusUpdateInput carries a status transition for an invoice.
type StatusUpdateInput struct {
	Status     string  `json:"status" validate:"required"`
	ApprovedBy *string `json:"approved_by"`
	Notes      *string `json:"notes"`
}
