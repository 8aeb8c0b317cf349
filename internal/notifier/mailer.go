// Package notifier delivers booking confirmations to the business mailbox.
// Delivery is best-effort at-most-once: a failed send is logged and
// dropped, and can never affect a booking that already committed.
package notifier

import (
	"fmt"
	"io"

	"github.com/tripvista/travel-api/internal/invoice"
	"github.com/tripvista/travel-api/internal/models"
	gomail "gopkg.in/gomail.v2"
)

// Dispatcher sends one notification per created booking.
type Dispatcher interface {
	SendBookingConfirmation(booking *models.Booking) error
}

type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	mailbox string
}

func NewMailer(host string, port int, user, password, from, mailbox string) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(host, port, user, password),
		from:    from,
		mailbox: mailbox,
	}
}

func (m *Mailer) SendBookingConfirmation(booking *models.Booking) error {
	inv := invoice.Build(booking)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.mailbox)
	msg.SetHeader("Subject", fmt.Sprintf("New booking %s: %s", inv.Number, booking.SubjectName))
	msg.SetBody("text/plain", inv.Text())

	if pdfBytes, err := inv.RenderPDF(); err == nil {
		msg.Attach(inv.Number+".pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdfBytes)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send booking mail: %w", err)
	}
	return nil
}
