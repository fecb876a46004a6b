// Package export renders a user's saved invoices as an XLSX register, one
// row per document with the recomputed tax breakdown.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gstgenius/internal/domain"
	"gstgenius/internal/tax"
)

var registerHeaders = []string{
	"Number", "Date", "Type", "Buyer", "Buyer GSTIN",
	"Taxable Value", "CGST", "SGST", "IGST", "Total Tax", "Grand Total",
}

// WriteRegister builds the register workbook and returns its bytes. Each
// row's figures come from a fresh ComputeSummary over the stored document,
// not from the persisted snapshot.
func WriteRegister(invoices []domain.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Invoices"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export.WriteRegister sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export.WriteRegister sheet: %w", err)
	}

	for col, h := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("export.WriteRegister header: %w", err)
		}
	}

	for row, inv := range invoices {
		draft, err := inv.Draft()
		if err != nil {
			return nil, fmt.Errorf("export.WriteRegister invoice %s: %w", inv.ID, err)
		}
		summary := tax.ComputeSummary(draft)

		values := []interface{}{
			draft.InvoiceNumber,
			draft.InvoiceDate,
			string(draft.Type),
			draft.Buyer.Name,
			draft.Buyer.GSTIN,
			summary.TaxableValue,
			summary.CGST,
			summary.SGST,
			summary.IGST,
			summary.TotalTax,
			summary.GrandTotal,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("export.WriteRegister row %d: %w", row+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export.WriteRegister write: %w", err)
	}
	return buf.Bytes(), nil
}
