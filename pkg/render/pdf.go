package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF layout constants (A4 portrait, millimetres).
const (
	pdfMarginLeft = 15.0
	pdfMarginTop  = 15.0
	pdfRowHeight  = 7.0
	pdfDescWidth  = 95.0
	pdfQtyWidth   = 20.0
	pdfPriceWidth = 32.0
	pdfTotalWidth = 33.0
)

// RenderPDF writes the full print view as a PDF: one A4 page per document
// page, in partition order. It honors the same visibility contract as the
// HTML variants.
func (p *Preview) RenderPDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginLeft)
	pdf.SetAutoPageBreak(false, 0)

	total := p.pager.TotalPages()
	if total == 0 {
		writePDFPage(pdf, p.PageDocument(1))
	} else {
		for n := 1; n <= total; n++ {
			writePDFPage(pdf, p.PageDocument(n))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFPage(pdf *gofpdf.Fpdf, doc PageDocument) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Company header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(120, 8, tr(doc.CompanyName), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "FATURA", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(120, 5, tr(doc.CompanyAddress), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Número: "+doc.Number), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 5, tr("Tel: "+doc.CompanyPhone), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Data: "+doc.IssueDate), "", 1, "R", false, 0, "")

	left := tr("Email: " + doc.CompanyEmail)
	if doc.CompanyEmail == "" {
		left = ""
	}
	right := ""
	if doc.DueDate != "" {
		right = tr("Vencimento: " + doc.DueDate)
	}
	pdf.CellFormat(120, 5, left, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, right, "", 1, "R", false, 0, "")
	if doc.CompanyTaxID != "" {
		pdf.CellFormat(120, 5, tr("NIF: "+doc.CompanyTaxID), "", 0, "L", false, 0, "")
	} else {
		pdf.CellFormat(120, 5, "", "", 0, "L", false, 0, "")
	}
	if doc.ShowPageNumber {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Página %d de %d", doc.CurrentPage, doc.TotalPages)), "", 1, "R", false, 0, "")
	} else {
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Client block (first page only; later pages carry the compact summary)
	if doc.ShowClientDetails {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "FATURAR A:", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, tr(doc.ClientName), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr(doc.ClientAddress), "", 1, "L", false, 0, "")
		contact := joinNonEmpty(" - ",
			prefixed("Tel: ", doc.ClientPhone),
			prefixed("Email: ", doc.ClientEmail),
			prefixed("NIF: ", doc.ClientTaxID),
		)
		if contact != "" {
			pdf.CellFormat(0, 5, tr(contact), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	} else if doc.ClientSummary != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 5, tr(doc.ClientSummary), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	// Items table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(51, 65, 85)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(pdfDescWidth, pdfRowHeight, tr("Descrição"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfQtyWidth, pdfRowHeight, "Qtd.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(pdfPriceWidth, pdfRowHeight, tr("Preço Unit."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfTotalWidth, pdfRowHeight, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range doc.Rows {
		if row.Empty {
			pdf.CellFormat(pdfDescWidth, pdfRowHeight, "", "1", 0, "L", false, 0, "")
			pdf.CellFormat(pdfQtyWidth, pdfRowHeight, "", "1", 0, "C", false, 0, "")
			pdf.CellFormat(pdfPriceWidth, pdfRowHeight, "", "1", 0, "R", false, 0, "")
			pdf.CellFormat(pdfTotalWidth, pdfRowHeight, "", "1", 1, "R", false, 0, "")
			continue
		}
		pdf.CellFormat(pdfDescWidth, pdfRowHeight, tr(row.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfQtyWidth, pdfRowHeight, tr(row.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfPriceWidth, pdfRowHeight, tr(row.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfTotalWidth, pdfRowHeight, tr(row.Total), "1", 1, "R", false, 0, "")
	}

	// Totals and payment blocks, last (or only) page
	if doc.ShowTotals {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, tr("TOTAL: "+doc.GrandTotal), "", 1, "R", false, 0, "")

		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr("Forma de Pagamento: "+doc.PaymentMethod), "", 1, "L", false, 0, "")
		if doc.BankDetails != "" {
			pdf.CellFormat(0, 5, tr("Dados Bancários: "+doc.BankDetails), "", 1, "L", false, 0, "")
		}
		if doc.Observations != "" {
			pdf.CellFormat(0, 5, tr("Observações: "+doc.Observations), "", 1, "L", false, 0, "")
		}
	}
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
