package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF produces the A4 invoice document. The PDF creation date is
// pinned to the booking's issue date so identical bookings render to
// byte-identical files.
func (inv Invoice) RenderPDF() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Both metadata dates must be pinned; gofpdf fills an unset ModDate
	// from the wall clock, which would leak render time into the bytes.
	pdf.SetCreationDate(inv.IssueDate.UTC())
	pdf.SetModificationDate(inv.IssueDate.UTC())
	// Resource dictionaries are backed by maps; without catalog sorting
	// the /Font entries come out in random iteration order per render.
	pdf.SetCatalogSort(true)
	pdf.SetTitle(inv.Number, false)
	pdf.SetAuthor(brandName, false)
	pdf.AddPage()

	// Brand header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, brandName)
	pdf.Ln(14)
	pdf.SetDrawColor(60, 60, 60)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(6)

	// Invoice metadata
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Invoice "+orDash(inv.Number))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Issued: "+dateOrDash(inv.IssueDate))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Booking reference: "+orDash(inv.BookingID))
	pdf.Ln(10)

	// Customer block
	inv.section(pdf, "Billed To")
	inv.row(pdf, orDash(inv.CustomerName))
	inv.row(pdf, orDash(inv.CustomerEmail))
	inv.row(pdf, orDash(inv.ContactNumber))
	pdf.Ln(4)

	// Trip / event block
	inv.section(pdf, strings.ToUpper(inv.kindLabel()[:1])+inv.kindLabel()[1:]+" Details")
	inv.row(pdf, inv.kindLabel()+": "+orDash(inv.SubjectName))
	inv.row(pdf, "Travel date: "+dateOrDash(inv.TravelDate))
	inv.row(pdf, fmt.Sprintf("Travelers: %d", inv.Travelers))
	if inv.SpecialRequests != "" {
		inv.row(pdf, "Special requests: "+inv.SpecialRequests)
	}
	pdf.Ln(4)

	// Payment summary
	inv.section(pdf, "Payment Summary")
	inv.row(pdf, fmt.Sprintf("%d x %s", inv.Travelers, money(inv.UnitPrice)))
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Total: "+money(inv.TotalAmount))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	inv.row(pdf, "Status: "+orDash(string(inv.Status)))
	pdf.Ln(10)

	// Fixed footer
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(90, 90, 90)
	for _, l := range []string{footerLine1, footerLine2, footerLine3} {
		pdf.Cell(0, 5, l)
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (inv Invoice) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
}

func (inv Invoice) row(pdf *gofpdf.Fpdf, text string) {
	pdf.Cell(0, 6, text)
	pdf.Ln(6)
}
