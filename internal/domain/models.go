package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DraftIDNew is the sentinel ID for a draft that has never been persisted.
const DraftIDNew = "new"

// Party is one trading side of an invoice (seller or buyer). Compared by value;
// it has no identity beyond its fields.
type Party struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	State   string `json:"state"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	PAN     string `json:"pan,omitempty"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// LineItem is a single billed row. GSTRate is a percentage (e.g. 18).
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	HSN         string  `json:"hsn"`
	Qty         float64 `json:"qty"`
	Rate        float64 `json:"rate"`
	GSTRate     float64 `json:"gstRate"`
}

// TaxSummary is the derived tax breakdown for a draft. It is immutable once
// computed; callers must recompute rather than patch individual fields.
type TaxSummary struct {
	TaxableValue float64 `json:"taxableValue"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	TotalTax     float64 `json:"totalTax"`
	RoundOff     float64 `json:"roundOff"`
	GrandTotal   float64 `json:"grandTotal"`
}

// InvoiceDraft is the aggregate being authored. The JSON field names are the
// document's wire shape, shared by persistence and share links.
//
// Summary is a denormalized snapshot kept for list views; it is a cache, not a
// source of truth, and must be recomputed before any decision depends on it.
type InvoiceDraft struct {
	ID            string      `json:"id"`
	InvoiceNumber string      `json:"invoiceNumber"`
	InvoiceDate   string      `json:"invoiceDate"`
	DueDate       string      `json:"dueDate"`
	Type          InvoiceType `json:"type"`

	// Relevant only for credit/debit notes; optional and unvalidated.
	OriginalInvoiceNumber string `json:"originalInvoiceNumber,omitempty"`
	OriginalInvoiceDate   string `json:"originalInvoiceDate,omitempty"`

	GSTEnabled  bool `json:"gstEnabled"`
	LogoEnabled bool `json:"logoEnabled"`

	Seller Party `json:"seller"`
	Buyer  Party `json:"buyer"`

	Items []LineItem `json:"items"`
	Notes string     `json:"notes"`
	Terms string     `json:"terms"`

	Summary *TaxSummary `json:"summary,omitempty"`
}

// IsNew reports whether the draft has never been persisted.
func (d *InvoiceDraft) IsNew() bool {
	return d.ID == "" || d.ID == DraftIDNew
}

// NewDraft returns a draft pre-filled with the authoring defaults: both
// parties in Maharashtra, one consulting line item and a generated number.
func NewDraft() InvoiceDraft {
	return InvoiceDraft{
		ID:            DraftIDNew,
		InvoiceNumber: NewDraftNumber(),
		InvoiceDate:   time.Now().Format("2006-01-02"),
		Type:          TypeTaxInvoice,
		GSTEnabled:    true,
		LogoEnabled:   true,
		Seller: Party{
			Name:  "Your Business Name",
			State: "Maharashtra",
		},
		Buyer: Party{
			State: "Maharashtra",
		},
		Items: []LineItem{
			{
				ID:          "1",
				Description: "Consulting Services",
				HSN:         "9983",
				Qty:         1,
				Rate:        1000,
				GSTRate:     18,
			},
		},
		Notes: "Thank you for your business.",
		Terms: "Payment due within 15 days.",
	}
}

// NewDraftNumber generates a short time-derived invoice number ("INV-4821").
func NewDraftNumber() string {
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("INV-%04d", millis%10000)
}

// Invoice is a persisted snapshot of a draft, owned by a user. The full draft
// is stored as a JSON document; a few columns are denormalized for list views.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	UserID        uuid.UUID       `db:"user_id" json:"user_id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   string          `db:"invoice_date" json:"invoice_date"`
	DocType       InvoiceType     `db:"doc_type" json:"doc_type"`
	BuyerName     string          `db:"buyer_name" json:"buyer_name"`
	GrandTotal    float64         `db:"grand_total" json:"grand_total"`
	Document      json.RawMessage `db:"document" json:"document"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Draft unmarshals the stored document back into a draft.
func (i *Invoice) Draft() (InvoiceDraft, error) {
	var d InvoiceDraft
	if err := json.Unmarshal(i.Document, &d); err != nil {
		return InvoiceDraft{}, fmt.Errorf("unmarshaling invoice document: %w", err)
	}
	return d, nil
}

// DraftPatch is a partial draft update produced by the text extractor. Nil
// fields mean "leave as is"; Items, when present, replaces the whole list.
type DraftPatch struct {
	Type  *InvoiceType `json:"type,omitempty"`
	Buyer *Party       `json:"buyer,omitempty"`
	Items []LineItem   `json:"items,omitempty"`
	Notes *string      `json:"notes,omitempty"`
}

// User represents an authenticated user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
