package domain

import "strings"

// InvoiceType governs document labeling and which reference fields are shown.
// The values are the display strings used on the rendered document.
type InvoiceType string

const (
	TypeTaxInvoice      InvoiceType = "Tax Invoice"
	TypeBillOfSupply    InvoiceType = "Bill of Supply"
	TypeProformaInvoice InvoiceType = "Proforma Invoice"
	TypeCreditNote      InvoiceType = "Credit Note"
	TypeDebitNote       InvoiceType = "Debit Note"
)

// ValidInvoiceTypes enumerates the accepted document types.
var ValidInvoiceTypes = map[InvoiceType]bool{
	TypeTaxInvoice:      true,
	TypeBillOfSupply:    true,
	TypeProformaInvoice: true,
	TypeCreditNote:      true,
	TypeDebitNote:       true,
}

// IsNote reports whether the type is a credit or debit note, which reference
// an original document and are numbered "Note #" instead of "Invoice #".
func (t InvoiceType) IsNote() bool {
	return t == TypeCreditNote || t == TypeDebitNote
}

// ParseInvoiceType matches a free-text type name case-insensitively.
// Unrecognized input falls back to Tax Invoice.
func ParseInvoiceType(s string) InvoiceType {
	needle := strings.ToLower(strings.TrimSpace(s))
	for t := range ValidInvoiceTypes {
		if strings.ToLower(string(t)) == needle {
			return t
		}
	}
	return TypeTaxInvoice
}

// FieldKind identifies a format-validated party field.
type FieldKind string

const (
	FieldGSTIN FieldKind = "gstin"
	FieldPAN   FieldKind = "pan"
	FieldEmail FieldKind = "email"
	FieldPhone FieldKind = "phone"
)

// GSTRates are the rate percentages a line item may carry.
var GSTRates = []float64{0, 5, 12, 18, 28}

// ValidGSTRates indexes GSTRates for membership checks.
var ValidGSTRates = map[float64]bool{0: true, 5: true, 12: true, 18: true, 28: true}

// IndianStates is the fixed jurisdiction list offered for party state fields.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Jammu and Kashmir",
	"Ladakh", "Lakshadweep", "Puducherry",
}

// IsIndianState matches free text against IndianStates, ignoring case and
// surrounding whitespace.
func IsIndianState(s string) bool {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, state := range IndianStates {
		if strings.ToLower(state) == needle {
			return true
		}
	}
	return false
}
