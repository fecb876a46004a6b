package ruleset

import (
	"fmt"
	"strings"

	"gstgenius/internal/domain"
)

// ValidateDraft checks a draft for everything that blocks saving or
// exporting it. All applicable errors are collected and returned together;
// an empty slice means the draft is valid.
//
// Seller GSTIN is mandatory when GST is enabled, since charging tax without
// a registration is not legal. Buyer GSTIN stays optional even then (B2C
// buyers have none); it is format-checked only when provided.
func ValidateDraft(d domain.InvoiceDraft) []string {
	errs := []string{}

	if strings.TrimSpace(d.Seller.Name) == "" {
		errs = append(errs, "Seller Name is required")
	}

	if d.GSTEnabled && d.Seller.GSTIN == "" {
		errs = append(errs, "Seller GSTIN is required when GST is enabled")
	} else if d.Seller.GSTIN != "" && !gstinRe.MatchString(d.Seller.GSTIN) {
		errs = append(errs, "Seller GSTIN is invalid")
	}

	if d.Seller.PAN != "" && !panRe.MatchString(d.Seller.PAN) {
		errs = append(errs, "Seller PAN is invalid")
	}
	if d.Seller.Email != "" && !emailRe.MatchString(d.Seller.Email) {
		errs = append(errs, "Seller Email is invalid")
	}
	if d.Seller.Phone != "" && !phoneRe.MatchString(d.Seller.Phone) {
		errs = append(errs, "Seller Phone is invalid")
	}

	if strings.TrimSpace(d.Buyer.Name) == "" {
		errs = append(errs, "Buyer Name is required")
	}

	if strings.TrimSpace(d.Buyer.GSTIN) != "" && !gstinRe.MatchString(d.Buyer.GSTIN) {
		errs = append(errs, "Buyer GSTIN is invalid")
	}

	if d.Buyer.PAN != "" && !panRe.MatchString(d.Buyer.PAN) {
		errs = append(errs, "Buyer PAN is invalid")
	}
	if d.Buyer.Email != "" && !emailRe.MatchString(d.Buyer.Email) {
		errs = append(errs, "Buyer Email is invalid")
	}
	if d.Buyer.Phone != "" && !phoneRe.MatchString(d.Buyer.Phone) {
		errs = append(errs, "Buyer Phone is invalid")
	}

	if len(d.Items) == 0 {
		errs = append(errs, "At least one item is required")
	}
	for i, item := range d.Items {
		if strings.TrimSpace(item.Description) == "" {
			errs = append(errs, fmt.Sprintf("Item %d: Description is required", i+1))
		}
		if item.Qty <= 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Quantity must be greater than 0", i+1))
		}
		if item.Rate < 0 {
			errs = append(errs, fmt.Sprintf("Item %d: Rate cannot be negative", i+1))
		}
	}

	return errs
}

// AdviseBillOfSupply returns a non-blocking advisory when a Bill of Supply
// carries GST. A Bill of Supply is meant for exempt or composition-scheme
// sellers who may not charge tax, but this is guidance only and never fails
// validation.
func AdviseBillOfSupply(d domain.InvoiceDraft) string {
	if d.Type == domain.TypeBillOfSupply && d.GSTEnabled {
		return "A Bill of Supply is used by sellers who cannot charge GST; consider disabling GST for this document."
	}
	return ""
}
