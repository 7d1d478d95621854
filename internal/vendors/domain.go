package vendors

import "time"

// Vendor is a supplier the organisation purchases from.
type Vendor struct {
	ID                string    `json:"id"`
	UserID            *string   `json:"user_id"`
	VendorCode        string    `json:"vendor_code"`
	CompanyName       string    `json:"company_name"`
	ContactPerson     *string   `json:"contact_person"`
	Email             *string   `json:"email"`
	Phone             *string   `json:"phone"`
	Address           *string   `json:"address"`
	TaxID             *string   `json:"tax_id"`
	BankAccountName   *string   `json:"bank_account_name"`
	BankAccountNumber *string   `json:"bank_account_number"`
	BankName          *string   `json:"bank_name"`
	BankBranch        *string   `json:"bank_branch"`
	PaymentTerms      *string   `json:"payment_terms"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CreateVendorInput carries the caller-supplied fields for a new vendor.
// The id is always generated by the repository.
type CreateVendorInput struct {
	UserID            *string `json:"user_id"`
	VendorCode        string  `json:"vendor_code"`
	CompanyName       string  `json:"company_name"`
	ContactPerson     *string `json:"contact_person"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	TaxID             *string `json:"tax_id"`
	BankAccountName   *string `json:"bank_account_name"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankName          *string `json:"bank_name"`
	BankBranch        *string `json:"bank_branch"`
	PaymentTerms      *string `json:"payment_terms"`
	IsActive          *bool   `json:"is_active"`
}

// UpdateVendorInput carries the full mutable field set. The vendor code and
// originating user are immutable after creation. A nil IsActive leaves the
// stored flag untouched.
type UpdateVendorInput struct {
	CompanyName       string  `json:"company_name"`
	ContactPerson     *string `json:"contact_person"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	TaxID             *string `json:"tax_id"`
	BankAccountName   *string `json:"bank_account_name"`
	BankAccountNumber *string `json:"bank_account_number"`
	BankName          *string `json:"bank_name"`
	BankBranch        *string `json:"bank_branch"`
	PaymentTerms      *string `json:"payment_terms"`
	IsActive          *bool   `json:"is_active"`
}
