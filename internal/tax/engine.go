// Package tax computes the GST breakdown for an invoice draft.
//
// ComputeSummary is a total function: it never errors and is safe to call on
// every draft mutation. Empty item lists or zero quantities yield zero sums;
// deciding whether a draft is structurally valid belongs to the ruleset
// package, not here.
package tax

import (
	"strings"

	"github.com/shopspring/decimal"

	"gstgenius/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
	half    = decimal.New(5, -1)
)

// ComputeSummary derives the tax summary from a draft.
//
// Taxable value accumulates qty x rate over all items. When GST is enabled,
// each line contributes taxable x gstRate/100 to the total tax; the split
// depends on the jurisdiction relationship. Seller and buyer states are
// compared case-insensitively after trimming, and two empty states compare
// equal, so a draft with neither state filled in gets the intra-state split.
// That is a simplification carried over from the authoring defaults, not a
// legal determination.
//
// The grand total is the exact total rounded half-up to a whole rupee;
// roundOff is the signed delta applied to reach it.
func ComputeSummary(d domain.InvoiceDraft) domain.TaxSummary {
	taxable := decimal.Zero
	totalTax := decimal.Zero

	for _, item := range d.Items {
		lineTaxable := decimal.NewFromFloat(item.Qty).Mul(decimal.NewFromFloat(item.Rate))
		taxable = taxable.Add(lineTaxable)
		if d.GSTEnabled {
			lineTax := lineTaxable.Mul(decimal.NewFromFloat(item.GSTRate)).Div(hundred)
			totalTax = totalTax.Add(lineTax)
		}
	}

	var cgst, sgst, igst decimal.Decimal
	if d.GSTEnabled {
		if sameState(d.Seller.State, d.Buyer.State) {
			cgst = totalTax.Div(two)
			sgst = cgst
		} else {
			igst = totalTax
		}
	}

	exact := taxable.Add(totalTax)
	grand := exact.Add(half).Floor()
	roundOff := grand.Sub(exact)

	return domain.TaxSummary{
		TaxableValue: taxable.InexactFloat64(),
		CGST:         cgst.InexactFloat64(),
		SGST:         sgst.InexactFloat64(),
		IGST:         igst.InexactFloat64(),
		TotalTax:     totalTax.InexactFloat64(),
		RoundOff:     roundOff.InexactFloat64(),
		GrandTotal:   grand.InexactFloat64(),
	}
}

func sameState(seller, buyer string) bool {
	return strings.EqualFold(strings.TrimSpace(seller), strings.TrimSpace(buyer))
}
