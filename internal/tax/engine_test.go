package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstgenius/internal/domain"
	"gstgenius/internal/tax"
)

func draftWith(sellerState, buyerState string, gstEnabled bool, items ...domain.LineItem) domain.InvoiceDraft {
	return domain.InvoiceDraft{
		Type:       domain.TypeTaxInvoice,
		GSTEnabled: gstEnabled,
		Seller:     domain.Party{Name: "Seller", State: sellerState},
		Buyer:      domain.Party{Name: "Buyer", State: buyerState},
		Items:      items,
	}
}

func TestComputeSummary_IntraState(t *testing.T) {
	d := draftWith("Maharashtra", "Maharashtra", true,
		domain.LineItem{Description: "Consulting", Qty: 1, Rate: 1000, GSTRate: 18})

	s := tax.ComputeSummary(d)

	assert.Equal(t, 1000.0, s.TaxableValue)
	assert.Equal(t, 90.0, s.CGST)
	assert.Equal(t, 90.0, s.SGST)
	assert.Equal(t, 0.0, s.IGST)
	assert.Equal(t, 180.0, s.TotalTax)
	assert.Equal(t, 1180.0, s.GrandTotal)
	assert.Equal(t, 0.0, s.RoundOff)
}

func TestComputeSummary_InterState(t *testing.T) {
	d := draftWith("Maharashtra", "Karnataka", true,
		domain.LineItem{Description: "Consulting", Qty: 1, Rate: 1000, GSTRate: 18})

	s := tax.ComputeSummary(d)

	assert.Equal(t, 180.0, s.IGST)
	assert.Equal(t, 0.0, s.CGST)
	assert.Equal(t, 0.0, s.SGST)
	assert.Equal(t, 180.0, s.TotalTax)
	assert.Equal(t, 1180.0, s.GrandTotal)
}

func TestComputeSummary_GSTDisabled(t *testing.T) {
	d := draftWith("Maharashtra", "Karnataka", false,
		domain.LineItem{Description: "Consulting", Qty: 1, Rate: 1000, GSTRate: 18})

	s := tax.ComputeSummary(d)

	assert.Equal(t, 1000.0, s.TaxableValue)
	assert.Equal(t, 0.0, s.CGST)
	assert.Equal(t, 0.0, s.SGST)
	assert.Equal(t, 0.0, s.IGST)
	assert.Equal(t, 0.0, s.TotalTax)
	assert.Equal(t, 1000.0, s.GrandTotal)
	assert.Equal(t, 0.0, s.RoundOff)
}

func TestComputeSummary_RoundOff(t *testing.T) {
	d := draftWith("Maharashtra", "Maharashtra", true,
		domain.LineItem{Description: "Widgets", Qty: 3, Rate: 33.33, GSTRate: 5},
		domain.LineItem{Description: "Exempt", Qty: 1, Rate: 0.02, GSTRate: 0})

	s := tax.ComputeSummary(d)

	assert.InDelta(t, 100.01, s.TaxableValue, 1e-9)
	assert.InDelta(t, 4.9995, s.TotalTax, 1e-9)
	assert.Equal(t, 105.0, s.GrandTotal)
	assert.InDelta(t, -0.0095, s.RoundOff, 1e-9)
}

func TestComputeSummary_CaseAndWhitespaceInsensitiveStates(t *testing.T) {
	d := draftWith("  maharashtra ", "MAHARASHTRA", true,
		domain.LineItem{Description: "Consulting", Qty: 1, Rate: 100, GSTRate: 18})

	s := tax.ComputeSummary(d)

	assert.Equal(t, 9.0, s.CGST)
	assert.Equal(t, 9.0, s.SGST)
	assert.Equal(t, 0.0, s.IGST)
}

func TestComputeSummary_EmptyStatesCountAsIntraState(t *testing.T) {
	d := draftWith("", "", true,
		domain.LineItem{Description: "Consulting", Qty: 1, Rate: 100, GSTRate: 18})

	s := tax.ComputeSummary(d)

	assert.Equal(t, 9.0, s.CGST)
	assert.Equal(t, 9.0, s.SGST)
	assert.Equal(t, 0.0, s.IGST)
}

func TestComputeSummary_NoItems(t *testing.T) {
	d := draftWith("Maharashtra", "Maharashtra", true)

	s := tax.ComputeSummary(d)

	assert.Equal(t, 0.0, s.TaxableValue)
	assert.Equal(t, 0.0, s.TotalTax)
	assert.Equal(t, 0.0, s.GrandTotal)
	assert.Equal(t, 0.0, s.RoundOff)
}

func TestComputeSummary_Idempotent(t *testing.T) {
	d := draftWith("Maharashtra", "Karnataka", true,
		domain.LineItem{Description: "Widgets", Qty: 3, Rate: 33.33, GSTRate: 5},
		domain.LineItem{Description: "Consulting", Qty: 2, Rate: 499.5, GSTRate: 18})

	first := tax.ComputeSummary(d)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, tax.ComputeSummary(d))
	}
}

func TestComputeSummary_Invariants(t *testing.T) {
	drafts := map[string]domain.InvoiceDraft{
		"intra": draftWith("Delhi", "Delhi", true,
			domain.LineItem{Description: "A", Qty: 7, Rate: 123.45, GSTRate: 12},
			domain.LineItem{Description: "B", Qty: 1, Rate: 0.99, GSTRate: 28}),
		"inter": draftWith("Delhi", "Goa", true,
			domain.LineItem{Description: "A", Qty: 7, Rate: 123.45, GSTRate: 12},
			domain.LineItem{Description: "B", Qty: 1, Rate: 0.99, GSTRate: 28}),
		"disabled": draftWith("Delhi", "Goa", false,
			domain.LineItem{Description: "A", Qty: 7, Rate: 123.45, GSTRate: 12}),
	}

	for name, d := range drafts {
		t.Run(name, func(t *testing.T) {
			s := tax.ComputeSummary(d)

			assert.InDelta(t, s.GrandTotal, s.TaxableValue+s.TotalTax+s.RoundOff, 1e-9)
			assert.InDelta(t, s.TotalTax, s.CGST+s.SGST+s.IGST, 1e-9)
			if d.GSTEnabled && s.TotalTax > 0 {
				exclusive := (s.IGST == 0 && s.CGST > 0) || (s.IGST > 0 && s.CGST == 0 && s.SGST == 0)
				assert.True(t, exclusive, "cgst/sgst and igst must not both be set")
			}
			assert.LessOrEqual(t, s.RoundOff, 0.5)
			assert.GreaterOrEqual(t, s.RoundOff, -0.5)
		})
	}
}
