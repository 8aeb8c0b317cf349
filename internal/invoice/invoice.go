// Package invoice renders a booking into the customer-facing invoice, as
// plain text (used for the notification mail body and golden tests) and as
// a paginated PDF. Rendering is a pure function of the booking snapshot:
// identical input produces byte-identical output.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/tripvista/travel-api/internal/models"
)

const (
	brandName    = "TripVista Travel & Tours"
	footerLine1  = "Thank you for booking with TripVista Travel & Tours."
	footerLine2  = "Questions? office@tripvista.example | +1 (555) 010-2030"
	footerLine3  = "All bookings are subject to our standard terms of travel."
	placeholder  = "-"
	currencyMark = "$"
)

// Invoice is the flattened, display-ready view of one booking.
type Invoice struct {
	Number    string
	BookingID string
	IssueDate time.Time

	CustomerName  string
	CustomerEmail string
	ContactNumber string

	Kind            models.BookingType
	SubjectName     string
	TravelDate      time.Time
	Travelers       int
	SpecialRequests string

	UnitPrice   float64
	TotalAmount float64
	Status      models.BookingStatus
}

// Build flattens a booking into an Invoice. It never fails: absent fields
// come out empty and render as placeholders, because an invoice must still
// be producible for an incomplete record.
func Build(b *models.Booking) Invoice {
	number := "INV-"
	if id := strings.ReplaceAll(b.ID, "-", ""); len(id) >= 8 {
		number += strings.ToUpper(id[:8])
	} else {
		number += strings.ToUpper(id)
	}

	return Invoice{
		Number:          number,
		BookingID:       b.ID,
		IssueDate:       b.CreatedAt,
		CustomerName:    b.UserName,
		CustomerEmail:   b.UserEmail,
		ContactNumber:   b.Details.ContactNumber,
		Kind:            b.Type,
		SubjectName:     b.SubjectName,
		TravelDate:      b.Details.TravelDate,
		Travelers:       b.Details.Travelers,
		SpecialRequests: b.Details.SpecialRequests,
		UnitPrice:       b.UnitPrice,
		TotalAmount:     b.TotalAmount,
		Status:          b.Status,
	}
}

// Text renders the invoice as plain text. Deterministic for identical input.
func (inv Invoice) Text() string {
	var b strings.Builder

	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(strings.ToUpper(brandName))
	line(strings.Repeat("-", 60))
	line("INVOICE %s", orDash(inv.Number))
	line("Issued:  %s", dateOrDash(inv.IssueDate))
	line("Booking: %s", orDash(inv.BookingID))
	line("")
	line("BILLED TO")
	line("  %s", orDash(inv.CustomerName))
	line("  %s", orDash(inv.CustomerEmail))
	line("  %s", orDash(inv.ContactNumber))
	line("")
	line(strings.ToUpper(inv.kindLabel()))
	line("  %s: %s", inv.kindLabel(), orDash(inv.SubjectName))
	line("  Travel date: %s", dateOrDash(inv.TravelDate))
	line("  Travelers: %d", inv.Travelers)
	if inv.SpecialRequests != "" {
		line("  Special requests: %s", inv.SpecialRequests)
	}
	line("")
	line("PAYMENT")
	line("  %d x %s", inv.Travelers, money(inv.UnitPrice))
	line("  Total: %s", money(inv.TotalAmount))
	line("  Status: %s", orDash(string(inv.Status)))
	line("")
	line(footerLine1)
	line(footerLine2)
	line(footerLine3)

	return b.String()
}

func (inv Invoice) kindLabel() string {
	if inv.Kind == models.BookingTypeEvent {
		return "Event"
	}
	return "Trip"
}

func money(v float64) string {
	return fmt.Sprintf("%s%.2f", currencyMark, v)
}

func orDash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.UTC().Format("2006-01-02")
}
