// Package pdf renders an invoice draft and its computed summary as a PDF
// document.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"gstgenius/internal/domain"
)

// Render produces the PDF bytes for a draft. The summary must come from a
// fresh ComputeSummary call on the same draft; Render trusts it as given.
func Render(d domain.InvoiceDraft, summary domain.TaxSummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	docTitle := string(d.Type)
	if docTitle == "" {
		docTitle = "Invoice"
	}
	numberLabel := "Invoice #"
	if d.Type.IsNote() {
		numberLabel = "Note #"
	}

	m.AddRow(12,
		text.NewCol(12, docTitle, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)
	m.AddRow(12,
		col.New(6),
		col.New(6).Add(
			text.New(fmt.Sprintf("%s %s", numberLabel, d.InvoiceNumber), props.Text{Align: align.Right}),
			text.New("Date: "+d.InvoiceDate, props.Text{Top: 5, Align: align.Right}),
		),
	)
	if d.Type.IsNote() && d.OriginalInvoiceNumber != "" {
		m.AddRow(10,
			col.New(6),
			col.New(6).Add(
				text.New("Orig. Inv # "+d.OriginalInvoiceNumber, props.Text{Size: 9, Align: align.Right}),
				text.New("Orig. Date: "+d.OriginalInvoiceDate, props.Text{Size: 9, Top: 4, Align: align.Right}),
			),
		)
	}

	m.AddRow(35, partyCol(6, "DETAILS OF SUPPLIER", d.Seller, d.GSTEnabled), col.New(6))
	m.AddRow(35,
		partyCol(6, "DETAILS OF RECIPIENT (BILLED TO)", d.Buyer, d.GSTEnabled),
		placeOfSupplyCol(6, d.Buyer.State),
	)

	addItemTable(m, d)

	addTotals(m, d, summary)

	m.AddRow(10,
		col.New(2).Add(text.New("Amount in Words:", props.Text{Size: 9, Style: fontstyle.Bold})),
		text.NewCol(10, NumberToWords(summary.GrandTotal), props.Text{Size: 9, Style: fontstyle.Italic}),
	)

	if d.Notes != "" {
		m.AddRow(10,
			col.New(12).Add(
				text.New("Notes", props.Text{Size: 9, Style: fontstyle.Bold}),
				text.New(d.Notes, props.Text{Size: 9, Top: 4}),
			),
		)
	}
	if d.Terms != "" {
		m.AddRow(10,
			col.New(12).Add(
				text.New("Terms", props.Text{Size: 9, Style: fontstyle.Bold}),
				text.New(d.Terms, props.Text{Size: 9, Top: 4}),
			),
		)
	}

	if d.Type == domain.TypeBillOfSupply {
		m.AddRow(6,
			text.NewCol(12, "Bill of Supply: Composition taxable person, not eligible to collect tax on supplies.",
				props.Text{Size: 8}),
		)
	}
	m.AddRow(6,
		text.NewCol(6, "This is a computer generated invoice.", props.Text{Size: 8}),
		text.NewCol(6, "Powered by GSTGenius", props.Text{Size: 8, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("rendering invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func partyCol(size int, heading string, p domain.Party, gstEnabled bool) core.Col {
	c := col.New(size).Add(
		text.New(heading, props.Text{Size: 8}),
		text.New(p.Name, props.Text{Size: 13, Style: fontstyle.Bold, Top: 4}),
	)
	top := 11.0
	add := func(s string) {
		c.Add(text.New(s, props.Text{Size: 9, Top: top}))
		top += 4
	}
	if p.Address != "" {
		add(p.Address)
	}
	if gstEnabled && p.GSTIN != "" {
		add("GSTIN: " + p.GSTIN)
	}
	if p.PAN != "" {
		add("PAN: " + p.PAN)
	}
	if p.State != "" {
		add("State: " + p.State)
	}
	if p.Email != "" {
		add("Email: " + p.Email)
	}
	if p.Phone != "" {
		add("Phone: " + p.Phone)
	}
	return c
}

func placeOfSupplyCol(size int, buyerState string) core.Col {
	c := col.New(size)
	if buyerState != "" {
		c.Add(text.New("Place of Supply: "+buyerState, props.Text{Size: 9, Align: align.Right}))
	}
	return c
}

// addItemTable writes the line-item grid. The column set follows the tax
// treatment: plain totals without GST, a single IGST pair inter-state, and a
// split CGST/SGST pair intra-state.
func addItemTable(m core.Maroto, d domain.InvoiceDraft) {
	interState := !sameStateFold(d.Seller.State, d.Buyer.State)

	header := func(size int, s string, a align.Type) core.Col {
		return text.NewCol(size, s, props.Text{Size: 8, Style: fontstyle.Bold, Align: a})
	}
	cell := func(size int, s string, a align.Type) core.Col {
		return text.NewCol(size, s, props.Text{Size: 8, Align: a})
	}

	switch {
	case !d.GSTEnabled:
		m.AddRow(8,
			header(6, "Item", align.Left),
			header(2, "Qty", align.Center),
			header(2, "Rate", align.Right),
			header(2, "Total", align.Right),
		)
		for _, it := range d.Items {
			m.AddRow(7,
				cell(6, it.Description, align.Left),
				cell(2, trimFloat(it.Qty), align.Center),
				cell(2, FormatAmount(it.Rate), align.Right),
				cell(2, FormatAmount(it.Qty*it.Rate), align.Right),
			)
		}

	case interState:
		m.AddRow(8,
			header(3, "Item", align.Left),
			header(1, "HSN", align.Center),
			header(1, "Qty", align.Center),
			header(2, "Rate", align.Right),
			header(2, "Taxable", align.Right),
			header(1, "IGST %", align.Center),
			header(1, "IGST Amt", align.Right),
			header(1, "Total", align.Right),
		)
		for _, it := range d.Items {
			taxable := it.Qty * it.Rate
			taxAmt := taxable * it.GSTRate / 100
			m.AddRow(7,
				cell(3, it.Description, align.Left),
				cell(1, it.HSN, align.Center),
				cell(1, trimFloat(it.Qty), align.Center),
				cell(2, FormatAmount(it.Rate), align.Right),
				cell(2, FormatAmount(taxable), align.Right),
				cell(1, trimFloat(it.GSTRate)+"%", align.Center),
				cell(1, FormatAmount(taxAmt), align.Right),
				cell(1, FormatAmount(taxable+taxAmt), align.Right),
			)
		}

	default:
		m.AddRow(8,
			header(2, "Item", align.Left),
			header(1, "HSN", align.Center),
			header(1, "Qty", align.Center),
			header(1, "Rate", align.Right),
			header(2, "Taxable", align.Right),
			header(1, "CGST %", align.Center),
			header(1, "Amt", align.Right),
			header(1, "SGST %", align.Center),
			header(1, "Amt", align.Right),
			header(1, "Total", align.Right),
		)
		for _, it := range d.Items {
			taxable := it.Qty * it.Rate
			taxAmt := taxable * it.GSTRate / 100
			halfTax := taxAmt / 2
			halfRate := it.GSTRate / 2
			m.AddRow(7,
				cell(2, it.Description, align.Left),
				cell(1, it.HSN, align.Center),
				cell(1, trimFloat(it.Qty), align.Center),
				cell(1, FormatAmount(it.Rate), align.Right),
				cell(2, FormatAmount(taxable), align.Right),
				cell(1, trimFloat(halfRate)+"%", align.Center),
				cell(1, FormatAmount(halfTax), align.Right),
				cell(1, trimFloat(halfRate)+"%", align.Center),
				cell(1, FormatAmount(halfTax), align.Right),
				cell(1, FormatAmount(taxable+taxAmt), align.Right),
			)
		}
	}
}

func addTotals(m core.Maroto, d domain.InvoiceDraft, s domain.TaxSummary) {
	row := func(label, value string, bold bool) {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		m.AddRow(6,
			col.New(7),
			text.NewCol(3, label, props.Text{Size: size, Style: style}),
			text.NewCol(2, value, props.Text{Size: size, Style: style, Align: align.Right}),
		)
	}

	row("Taxable Amount:", FormatAmount(s.TaxableValue), false)
	if d.GSTEnabled {
		if s.IGST > 0 {
			row("IGST Total:", FormatAmount(s.IGST), false)
		} else {
			row("CGST Total:", FormatAmount(s.CGST), false)
			row("SGST Total:", FormatAmount(s.SGST), false)
		}
	}
	if s.RoundOff != 0 {
		row("Round Off:", FormatAmount(s.RoundOff), false)
	}
	m.AddRow(2, col.New(7), line.NewCol(5))
	row("Grand Total:", "Rs. "+FormatAmount(s.GrandTotal), true)
}
