package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstgenius/internal/domain"
	"gstgenius/internal/ruleset"
)

func validDraft() domain.InvoiceDraft {
	return domain.InvoiceDraft{
		Type:       domain.TypeTaxInvoice,
		GSTEnabled: true,
		Seller:     domain.Party{Name: "Acme Traders", GSTIN: "27ABCDE1234F1Z5", State: "Maharashtra"},
		Buyer:      domain.Party{Name: "Bharat Retail", State: "Maharashtra"},
		Items: []domain.LineItem{
			{ID: "1", Description: "Consulting Services", HSN: "9983", Qty: 1, Rate: 1000, GSTRate: 18},
		},
	}
}

func TestValidateDraft_Valid(t *testing.T) {
	assert.Empty(t, ruleset.ValidateDraft(validDraft()))
}

func TestValidateDraft_CollectsAllErrors(t *testing.T) {
	d := domain.InvoiceDraft{GSTEnabled: true}

	errs := ruleset.ValidateDraft(d)

	assert.Contains(t, errs, "Seller Name is required")
	assert.Contains(t, errs, "Seller GSTIN is required when GST is enabled")
	assert.Contains(t, errs, "Buyer Name is required")
	assert.Contains(t, errs, "At least one item is required")
}

func TestValidateDraft_SellerGSTIN(t *testing.T) {
	t.Run("optional when gst disabled", func(t *testing.T) {
		d := validDraft()
		d.GSTEnabled = false
		d.Seller.GSTIN = ""
		assert.Empty(t, ruleset.ValidateDraft(d))
	})

	t.Run("format checked when gst disabled but provided", func(t *testing.T) {
		d := validDraft()
		d.GSTEnabled = false
		d.Seller.GSTIN = "not-a-gstin"
		assert.Contains(t, ruleset.ValidateDraft(d), "Seller GSTIN is invalid")
	})

	t.Run("required message takes precedence over format", func(t *testing.T) {
		d := validDraft()
		d.Seller.GSTIN = ""
		errs := ruleset.ValidateDraft(d)
		assert.Contains(t, errs, "Seller GSTIN is required when GST is enabled")
		assert.NotContains(t, errs, "Seller GSTIN is invalid")
	})
}

func TestValidateDraft_BuyerGSTINOptional(t *testing.T) {
	d := validDraft()
	d.Buyer.GSTIN = ""
	assert.Empty(t, ruleset.ValidateDraft(d))

	d.Buyer.GSTIN = "bogus"
	assert.Contains(t, ruleset.ValidateDraft(d), "Buyer GSTIN is invalid")
}

func TestValidateDraft_OptionalPartyFields(t *testing.T) {
	d := validDraft()
	d.Seller.PAN = "nope"
	d.Seller.Email = "not-an-email"
	d.Seller.Phone = "12345"
	d.Buyer.PAN = "nope"
	d.Buyer.Email = "not-an-email"
	d.Buyer.Phone = "12345"

	errs := ruleset.ValidateDraft(d)

	assert.Contains(t, errs, "Seller PAN is invalid")
	assert.Contains(t, errs, "Seller Email is invalid")
	assert.Contains(t, errs, "Seller Phone is invalid")
	assert.Contains(t, errs, "Buyer PAN is invalid")
	assert.Contains(t, errs, "Buyer Email is invalid")
	assert.Contains(t, errs, "Buyer Phone is invalid")
}

func TestValidateDraft_ItemErrorsCarryIndex(t *testing.T) {
	d := validDraft()
	d.Items = []domain.LineItem{
		{ID: "1", Description: "OK", Qty: 1, Rate: 100},
		{ID: "2", Description: "", Qty: 0, Rate: -5},
	}

	errs := ruleset.ValidateDraft(d)

	assert.Contains(t, errs, "Item 2: Description is required")
	assert.Contains(t, errs, "Item 2: Quantity must be greater than 0")
	assert.Contains(t, errs, "Item 2: Rate cannot be negative")
	assert.NotContains(t, errs, "Item 1: Description is required")
}

func TestAdviseBillOfSupply(t *testing.T) {
	d := validDraft()
	d.Type = domain.TypeBillOfSupply

	assert.NotEmpty(t, ruleset.AdviseBillOfSupply(d), "gst on a bill of supply should draw an advisory")
	assert.Empty(t, ruleset.ValidateDraft(d), "advisory must not block validation")

	d.GSTEnabled = false
	d.Seller.GSTIN = ""
	assert.Empty(t, ruleset.AdviseBillOfSupply(d))
}
