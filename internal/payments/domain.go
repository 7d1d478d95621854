package payments

import "time"

// VendorPayment records a payment made against an invoice. InvoiceNumber,
// VendorID, and VendorName are join-only display fields.
type VendorPayment struct {
	ID                   string     `json:"id"`
	InvoiceID            string     `json:"invoice_id"`
	PaymentDate          time.Time  `json:"payment_date"`
	PaymentAmount        float64    `json:"payment_amount"`
	PaymentMethod        *string    `json:"payment_method"`
	TransactionReference *string    `json:"transaction_reference"`
	Status               string     `json:"status"`
	ProcessedBy          *string    `json:"processed_by"`
	ProcessedAt          *time.Time `json:"processed_at"`
	Notes                *string    `json:"notes"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	InvoiceNumber        string     `json:"invoice_number,omitempty"`
	VendorID             string     `json:"vendor_id,omitempty"`
	VendorName           string     `json:"vendor_name,omitempty"`
}

// CreatePaymentInput carries caller-supplied fields for a new payment.
type CreatePaymentInput struct {
	InvoiceID            string     `json:"invoice_id"`
	PaymentDate          *time.Time `json:"payment_date"`
	PaymentAmount        float64    `json:"payment_amount"`
	PaymentMethod        *string    `json:"payment_method"`
	TransactionReference *string    `json:"transaction_reference"`
	Status               string     `json:"status"`
	ProcessedBy          *string    `json:"processed_by"`
	Notes                *string    `json:"notes"`
}

// UpdatePaymentInput carries the full mutable field set. The invoice link
// is immutable after creation.
type UpdatePaymentInput struct {
	PaymentDate          *time.Time `json:"payment_date"`
	PaymentAmount        float64    `json:"payment_amount"`
	PaymentMethod        *string    `json:"payment_method"`
	TransactionReference *string    `json:"transaction_reference"`
	Status               string     `json:"status"`
	ProcessedBy          *string    `json:"processed_by"`
	Notes                *string    `json:"notes"`
}

// StatusUpdateInput carries a status transition for a payment.
type StatusUpdateInput struct {
	Status      string  `json:"status" validate:"required"`
	ProcessedBy *string `json:"processed_by"`
	Notes       *string `json:"notes"`
}
