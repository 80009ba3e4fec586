package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"ristorante/internal/pkg/logger"
)

// Mailer sends transactional reservation emails. Delivery failures are the
// caller's to ignore: a lost email must never fail a booking.
type Mailer interface {
	SendReservationCreated(ctx context.Context, to, name, refCode string, start time.Time, partySize int) error
	SendReservationConfirmed(ctx context.Context, to, name, refCode string, start time.Time) error
	SendReservationCancelled(ctx context.Context, to, name, refCode string) error
}

// SMTPMailer sends plain-text mail over an SMTP relay.
type SMTPMailer struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr: host + ":" + port,
		from: from,
		auth: auth,
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

func (m *SMTPMailer) SendReservationCreated(_ context.Context, to, name, refCode string, start time.Time, partySize int) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nwe received your reservation request %s for %d guests on %s.\nWe will confirm it shortly.\n",
		name, refCode, partySize, start.Format("Mon, 2 Jan 2006 at 15:04"),
	)
	return m.send(to, "Reservation request received - "+refCode, body)
}

func (m *SMTPMailer) SendReservationConfirmed(_ context.Context, to, name, refCode string, start time.Time) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nyour reservation %s on %s is confirmed. We look forward to welcoming you.\n",
		name, refCode, start.Format("Mon, 2 Jan 2006 at 15:04"),
	)
	return m.send(to, "Reservation confirmed - "+refCode, body)
}

func (m *SMTPMailer) SendReservationCancelled(_ context.Context, to, name, refCode string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nyour reservation %s has been cancelled.\n",
		name, refCode,
	)
	return m.send(to, "Reservation cancelled - "+refCode, body)
}

// DevConsoleMailer logs instead of sending. Used when SMTP is not configured.
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) SendReservationCreated(_ context.Context, to, name, refCode string, start time.Time, partySize int) error {
	if m.enabled {
		logger.Info.Printf("[DEV-EMAIL] reservation created to=%s ref=%s start=%s party=%d", to, refCode, start.Format(time.RFC3339), partySize)
	}
	return nil
}

func (m *DevConsoleMailer) SendReservationConfirmed(_ context.Context, to, name, refCode string, start time.Time) error {
	if m.enabled {
		logger.Info.Printf("[DEV-EMAIL] reservation confirmed to=%s ref=%s", to, refCode)
	}
	return nil
}

func (m *DevConsoleMailer) SendReservationCancelled(_ context.Context, to, name, refCode string) error {
	if m.enabled {
		logger.Info.Printf("[DEV-EMAIL] reservation cancelled to=%s ref=%s", to, refCode)
	}
	return nil
}
