package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/havncube/billing-service/internal/domain/entities"
	"github.com/havncube/billing-service/internal/domain/pricing"
	"github.com/havncube/billing-service/internal/usecase/interfaces"
)

const (
	companyName    = "HAVN CUBE"
	companyTagline = "Interior Design & Execution"
	companyContact = "Contact: +91-XXXXXXXXXX | Email: info@havncube.com"

	footerThanks   = "Thank you for choosing Havn Cube!"
	footerValidity = "This estimate is valid for 30 days."

	// Core PDF fonts are cp1252; the rupee sign is not encodable there.
	currencyPrefix = "Rs. "
)

// Column widths in mm; the printable A4 width at 10mm margins is 190mm.
var colWidths = [6]float64{12, 76, 20, 16, 30, 36}

var colTitles = [6]string{"Sn", "Particulars", "Qty", "Unit", "Rate (Rs.)", "Amount (Rs.)"}

// EstimateRenderer lays out the fixed-format printable quote: title block,
// client block, itemized table, totals and footer. It renders into memory;
// nothing is written to disk and a failed render returns no partial output.
type EstimateRenderer struct{}

var _ interfaces.IEstimateRenderer = (*EstimateRenderer)(nil)

func NewEstimateRenderer() *EstimateRenderer {
	return &EstimateRenderer{}
}

func (r *EstimateRenderer) Render(e entities.Estimate) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 12, 10)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	writeTitleBlock(doc)
	writeClientBlock(doc, e)
	writeItemsTable(doc, e)
	writeTotals(doc, e)
	writeFooter(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTitleBlock(doc *gofpdf.Fpdf) {
	doc.SetTextColor(26, 54, 93)
	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 12, companyName, "", 1, "C", false, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 13)
	doc.CellFormat(0, 7, companyTagline, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 7, companyContact, "", 1, "C", false, 0, "")
	doc.Ln(6)
}

func writeClientBlock(doc *gofpdf.Fpdf, e entities.Estimate) {
	doc.SetFont("Helvetica", "", 10)

	half := 95.0
	doc.CellFormat(half, 6, "Estimate No: "+e.EstimateNumber, "", 0, "L", false, 0, "")
	doc.CellFormat(half, 6, "Date: "+e.Date, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Client: "+e.ClientName, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Address: "+e.ClientAddress, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Phone: "+e.ClientPhone, "", 1, "L", false, 0, "")
	doc.Ln(6)
}

func writeItemsTable(doc *gofpdf.Fpdf, e entities.Estimate) {
	doc.SetFillColor(26, 54, 93)
	doc.SetTextColor(255, 255, 255)
	doc.SetDrawColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 10)
	for i, title := range colTitles {
		doc.CellFormat(colWidths[i], 8, title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 9)
	for i, it := range e.LineItems {
		if i%2 == 0 {
			doc.SetFillColor(255, 255, 255)
		} else {
			doc.SetFillColor(247, 250, 252)
		}

		// Display quantity is re-derived from the measured dimensions,
		// independent of the persisted value.
		qty := pricing.ResolveQuantity(it)

		doc.CellFormat(colWidths[0], 7, strconv.Itoa(i+1), "1", 0, "C", true, 0, "")
		doc.CellFormat(colWidths[1], 7, it.Particulars, "1", 0, "L", true, 0, "")
		doc.CellFormat(colWidths[2], 7, fmt.Sprintf("%.2f", qty), "1", 0, "R", true, 0, "")
		doc.CellFormat(colWidths[3], 7, string(it.Unit), "1", 0, "C", true, 0, "")
		doc.CellFormat(colWidths[4], 7, formatCurrency(it.Rate), "1", 0, "R", true, 0, "")
		doc.CellFormat(colWidths[5], 7, formatCurrency(it.Amount), "1", 0, "R", true, 0, "")
		doc.Ln(-1)
	}
}

func writeTotals(doc *gofpdf.Fpdf, e entities.Estimate) {
	labelWidth := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3] + colWidths[4]

	doc.SetFont("Helvetica", "B", 10)

	doc.SetFillColor(255, 255, 255)
	doc.CellFormat(labelWidth, 7, "Subtotal:", "1", 0, "R", true, 0, "")
	doc.CellFormat(colWidths[5], 7, formatCurrency(e.Subtotal), "1", 1, "R", true, 0, "")

	taxLabel := fmt.Sprintf("Tax (%s%%):", strconv.FormatFloat(e.TaxRate, 'f', -1, 64))
	doc.CellFormat(labelWidth, 7, taxLabel, "1", 0, "R", true, 0, "")
	doc.CellFormat(colWidths[5], 7, formatCurrency(e.TaxAmount), "1", 1, "R", true, 0, "")

	doc.SetFillColor(237, 242, 247)
	doc.CellFormat(labelWidth, 7, "Total:", "1", 0, "R", true, 0, "")
	doc.CellFormat(colWidths[5], 7, formatCurrency(e.TotalAmount), "1", 1, "R", true, 0, "")
}

func writeFooter(doc *gofpdf.Fpdf) {
	doc.Ln(12)
	doc.SetTextColor(128, 128, 128)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, footerThanks, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 6, footerValidity, "", 1, "C", false, 0, "")
}

// formatCurrency renders a money value with the currency prefix, grouped
// thousands and two decimals, e.g. "Rs. 26,550.00".
func formatCurrency(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return currencyPrefix + sign + b.String() + "." + fracPart
}
