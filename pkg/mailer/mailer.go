// Package mailer kirim email konfirmasi booking lewat SMTP (gomail).
// Tanpa SMTP_HOST mailer jadi no-op.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"train-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var confirmationTmpl = template.Must(template.ParseFS(templateFS, "templates/booking_confirmation.html"))

// BookingConfirmation data untuk template email
type BookingConfirmation struct {
	Username      string
	BookingID     string
	PNR           string
	TrainName     string
	TrainNumber   string
	FromStation   string
	ToStation     string
	TravelDate    string
	SeatClass     string
	Seats         string
	TotalAmount   float64
	PaymentMethod string
	TicketURL     string
}

type Mailer interface {
	Enabled() bool
	SendBookingConfirmation(ctx context.Context, to string, data BookingConfirmation) error
}

func New(cfg utils.EmailConfig, log *zap.Logger) Mailer {
	log = log.With(zap.String("component", "mailer"))
	if cfg.Host == "" {
		log.Info("SMTP not configured, confirmation emails disabled")
		return noopMailer{}
	}
	return &smtpMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		log:    log,
	}
}

type smtpMailer struct {
	from   string
	dialer *gomail.Dialer
	log    *zap.Logger
}

func (m *smtpMailer) Enabled() bool { return true }

func (m *smtpMailer) SendBookingConfirmation(ctx context.Context, to string, data BookingConfirmation) error {
	body, err := RenderBookingConfirmation(data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Booking confirmed - PNR %s", data.PNR))
	msg.SetBody("text/html", body)

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send confirmation email", zap.Error(err), zap.String("pnr", data.PNR))
		return fmt.Errorf("send confirmation email for %s: %w", data.PNR, err)
	}

	m.log.Info("Confirmation email sent", zap.String("pnr", data.PNR))
	return nil
}

// RenderBookingConfirmation render body HTML email
func RenderBookingConfirmation(data BookingConfirmation) (string, error) {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("render confirmation email: %w", err)
	}
	return body.String(), nil
}

type noopMailer struct{}

func (noopMailer) Enabled() bool { return false }

func (noopMailer) SendBookingConfirmation(context.Context, string, BookingConfirmation) error {
	return nil
}
