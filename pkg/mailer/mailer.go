package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
	"go.uber.org/zap"
)

// MailerService delivers transactional email through MailerSend.
type MailerService struct {
	client    *mailersend.Mailersend
	fromName  string
	fromEmail string
	log       *zap.Logger
}

func NewMailerService(apiKey, fromName, fromEmail string, log *zap.Logger) *MailerService {
	return &MailerService{
		client:    mailersend.NewMailersend(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		log:       log.With(zap.String("component", "mailer")),
	}
}

// SendReservationConfirmed emails a confirmation summary to the guest.
func (m *MailerService) SendReservationConfirmed(ctx context.Context, to, code string, checkIn, checkOut time.Time, totalAmount float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	from := mailersend.From{
		Name:  m.fromName,
		Email: m.fromEmail,
	}

	recipients := []mailersend.Recipient{
		{Email: to},
	}

	body := fmt.Sprintf(
		"Your reservation %s is confirmed.\nCheck-in: %s\nCheck-out: %s\nTotal amount: %.2f\n",
		code,
		checkIn.Format("2006-01-02"),
		checkOut.Format("2006-01-02"),
		totalAmount,
	)

	message := m.client.Email.NewMessage()
	message.SetFrom(from)
	message.SetRecipients(recipients)
	message.SetSubject(fmt.Sprintf("Reservation %s confirmed", code))
	message.SetText(body)

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	m.log.Info("Confirmation email sent",
		zap.String("recipient", to),
		zap.String("message_id", res.Header.Get("X-Message-Id")),
	)
	return nil
}
