// Package pdf renders GST tax invoices as A4 documents: bordered page,
// company header, bill/ship blocks, a tax-mode dependent item table, amount
// in words, terms, UPI payment QR and signature block.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/aakshay001/MOOFUs-Billing-APP/internal/billing"
	"github.com/aakshay001/MOOFUs-Billing-APP/internal/service"

	"github.com/divan/num2words"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderInvoice(doc service.InvoiceDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 15)

	// Page border
	pdf.SetLineWidth(1)
	pdf.Rect(5, 5, 200, 287, "D")
	pdf.SetLineWidth(0.5)
	pdf.Line(10, 10, 200, 10)

	yStart := 14.0

	if doc.LogoPath != "" {
		if _, err := os.Stat(doc.LogoPath); err == nil {
			pdf.Image(doc.LogoPath, 12, yStart, 28, 0, false, "", 0, "")
		}
	}

	// Company header
	pdf.SetXY(45, yStart)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(90, 7, doc.Company.Name, "", 0, "L", false, 0, "")

	pdf.SetXY(145, yStart)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(55, 6, "ORIGINAL FOR RECIPIENT", "1", 0, "C", false, 0, "")

	pdf.SetXY(45, yStart+8)
	pdf.SetFont("Arial", "", 9)
	pdf.MultiCell(90, 4, doc.Company.Address, "", "L", false)

	addrEndY := pdf.GetY()
	pdf.SetXY(45, addrEndY)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(90, 4, "GSTIN : "+orNA(doc.Company.GSTIN), "", 0, "L", false, 0, "")
	pdf.SetXY(45, addrEndY+4)
	pdf.CellFormat(90, 4, "Phone : "+orNA(doc.Company.Phone), "", 0, "L", false, 0, "")

	currentY := addrEndY + 8
	if doc.Company.MSME != "" {
		pdf.SetXY(45, currentY)
		pdf.CellFormat(90, 4, "MSME NO: "+doc.Company.MSME, "", 0, "L", false, 0, "")
		currentY += 4
	}
	if doc.Company.FSSAI != "" {
		pdf.SetXY(45, currentY)
		pdf.CellFormat(90, 4, "FSSAI LIC NO: "+doc.Company.FSSAI, "", 0, "L", false, 0, "")
	}

	// Invoice number / date / payment status box
	pdf.SetXY(145, yStart+6)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(27, 5, "Invoice No.", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 5, doc.InvoiceNo, "1", 0, "L", false, 0, "")

	pdf.SetXY(145, yStart+11)
	pdf.CellFormat(27, 5, "Invoice Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 5, doc.InvoiceDate, "1", 0, "L", false, 0, "")

	pdf.SetXY(145, yStart+16)
	pdf.CellFormat(27, 5, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 5, doc.PaymentStatus, "1", 0, "C", false, 0, "")

	pdf.Ln(10)

	// Title
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.SetLineWidth(0.3)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(3)

	r.billShipBlocks(pdf, doc)

	pdf.Ln(3)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(2)

	r.itemTable(pdf, doc)

	pdf.Ln(8)

	// Amount in figures and words
	grand := doc.Totals.GrandTotal
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(130, 6, "Total Amount (In Figures):", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Rs. "+grand.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 9)
	pdf.MultiCell(0, 5, "Total in words: "+amountInWords(grand), "", "L", false)

	pdf.Ln(2)

	// Terms
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, "Terms and Conditions:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.MultiCell(0, 4, doc.Terms, "", "L", false)

	pdf.Ln(5)

	footerY := pdf.GetY()

	if doc.UPIID != "" {
		if err := r.paymentQR(pdf, doc, footerY); err != nil {
			return nil, fmt.Errorf("failed to render payment QR: %w", err)
		}
	}

	// Signature block
	pdf.SetXY(140, footerY)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(60, 5, "For "+doc.Company.Name, "", 1, "R", false, 0, "")
	pdf.Ln(15)
	pdf.SetXY(140, pdf.GetY())
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(60, 5, "Authorized Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) billShipBlocks(pdf *gofpdf.Fpdf, doc service.InvoiceDocument) {
	c := doc.Customer
	blockY := pdf.GetY()

	pdf.SetXY(10, blockY)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 5, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetX(10)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 5, c.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range addressLines(c.Address) {
		pdf.SetX(10)
		pdf.CellFormat(95, 4, line, "", 1, "L", false, 0, "")
	}
	billEndY := pdf.GetY()
	pdf.SetXY(10, billEndY)
	pdf.CellFormat(95, 4, "Phone: "+orNA(c.Phone), "", 1, "L", false, 0, "")
	pdf.SetX(10)
	pdf.CellFormat(95, 4, "GSTIN: "+orNA(c.GSTIN), "", 1, "L", false, 0, "")
	pdf.SetX(10)
	pdf.CellFormat(95, 4, "Place of Supply: "+orNA(c.Place), "", 1, "L", false, 0, "")

	// Ship To: shipping fields arrive pre-defaulted to the billing fields.
	pdf.SetXY(105, blockY)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 5, "Ship To:", "", 1, "L", false, 0, "")
	pdf.SetXY(105, blockY+5)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 5, c.ShipName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range addressLines(c.ShipAddress) {
		pdf.SetX(105)
		pdf.CellFormat(95, 4, line, "", 1, "L", false, 0, "")
	}
	shipEndY := pdf.GetY()
	pdf.SetXY(105, shipEndY)
	pdf.CellFormat(95, 4, "Phone: "+orNA(c.ShipPhone), "", 1, "L", false, 0, "")
	pdf.SetX(105)
	pdf.CellFormat(95, 4, "GSTIN: "+orNA(c.ShipGSTIN), "", 1, "L", false, 0, "")

	if y := billEndY + 12; pdf.GetY() < y {
		pdf.SetY(y)
	}
}

func (r *Renderer) itemTable(pdf *gofpdf.Fpdf, doc service.InvoiceDocument) {
	var widths []float64
	var headers []string
	var nameLimit int

	switch doc.TaxMode {
	case billing.TaxModeNoTax:
		widths = []float64{10, 52, 20, 12, 12, 18, 14, 20, 22}
		headers = []string{"Sr", "Product", "HSN", "Qty", "Free", "Rate", "Disc%", "Taxable", "Amount"}
		nameLimit = 24
	case billing.TaxModeIGST:
		widths = []float64{10, 48, 18, 12, 12, 16, 12, 20, 18, 24}
		headers = []string{"Sr", "Product", "HSN", "Qty", "Free", "Rate", "Disc%", "Taxable", "IGST", "Total"}
		nameLimit = 20
	default:
		widths = []float64{10, 45, 18, 12, 12, 15, 11, 19, 16, 16, 22}
		headers = []string{"Sr", "Product", "HSN", "Qty", "Free", "Rate", "Disc%", "Taxable", "CGST", "SGST", "Total"}
		nameLimit = 18
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	x := 8.0
	for i, h := range headers {
		pdf.SetXY(x, pdf.GetY())
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
		x += widths[i]
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for idx, line := range doc.Lines {
		base := []string{
			fmt.Sprintf("%d", idx+1),
			truncate(line.Product, nameLimit),
			line.HSN,
			fmt.Sprintf("%d", line.Qty),
			dash(line.FreeQty > 0, fmt.Sprintf("%d", line.FreeQty)),
			line.UnitPrice.StringFixed(2),
			dash(line.DiscountPct.IsPositive(), line.DiscountPct.StringFixed(1)+"%"),
			line.Taxable.StringFixed(2),
		}
		switch doc.TaxMode {
		case billing.TaxModeNoTax:
			base = append(base, line.Total.StringFixed(2))
		case billing.TaxModeIGST:
			base = append(base, line.IGST.StringFixed(2), line.Total.StringFixed(2))
		default:
			base = append(base, line.CGST.StringFixed(2), line.SGST.StringFixed(2), line.Total.StringFixed(2))
		}

		x = 8.0
		for i, val := range base {
			align := "R"
			switch i {
			case 0, 3, 4: // Sr, Qty, Free
				align = "C"
			case 1, 2: // Product, HSN
				align = "L"
			}
			pdf.SetXY(x, pdf.GetY())
			pdf.CellFormat(widths[i], 6, val, "1", 0, align, false, 0, "")
			x += widths[i]
		}
		pdf.Ln(-1)
	}

	pdf.Ln(2)

	// Totals row: label spans the first seven columns, then the per-mode
	// amount columns.
	pdf.SetFont("Arial", "B", 9)
	labelWidth := 0.0
	for _, w := range widths[:7] {
		labelWidth += w
	}
	pdf.SetXY(8, pdf.GetY())
	pdf.CellFormat(labelWidth, 7, "Total", "1", 0, "C", false, 0, "")

	t := doc.Totals
	switch doc.TaxMode {
	case billing.TaxModeNoTax:
		pdf.CellFormat(widths[7], 7, t.Taxable.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 7, t.GrandTotal.StringFixed(2), "1", 0, "R", false, 0, "")
	case billing.TaxModeIGST:
		pdf.CellFormat(widths[7], 7, t.Taxable.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 7, t.IGST.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[9], 7, t.GrandTotal.StringFixed(2), "1", 0, "R", false, 0, "")
	default:
		pdf.CellFormat(widths[7], 7, t.Taxable.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 7, t.CGST.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[9], 7, t.SGST.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[10], 7, t.GrandTotal.StringFixed(2), "1", 0, "R", false, 0, "")
	}
}

func (r *Renderer) paymentQR(pdf *gofpdf.Fpdf, doc service.InvoiceDocument, footerY float64) error {
	payload := fmt.Sprintf("upi://pay?pa=%s&pn=%s&cu=INR", doc.UPIID, doc.Company.Name)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return err
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("upi_qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("upi_qr", 15, footerY, 30, 0, false, opts, 0, "")

	pdf.SetXY(15, footerY+32)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(30, 3, "Pay using UPI", "", 0, "C", false, 0, "")
	return nil
}

func amountInWords(grand decimal.Decimal) string {
	rupees := int(grand.Round(0).IntPart())
	return strings.ToUpper(num2words.Convert(rupees)) + " RUPEES ONLY"
}

func addressLines(addr string) []string {
	if addr == "" {
		return []string{"N/A"}
	}
	lines := strings.Split(addr, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	return lines
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// truncate cuts on rune boundaries so multibyte names are never split
// mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func dash(cond bool, s string) string {
	if !cond {
		return "-"
	}
	return s
}
