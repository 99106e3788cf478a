// Package mailer sends seating plan PDFs over SMTP.
package mailer

import (
	"fmt"
	"io"

	"exam-seating/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

// SendSeatingPlan emails the attached PDF to every recipient in one message.
// Failures are returned to the caller; nothing is retried here.
func (m *Mailer) SendSeatingPlan(recipients []string, subject, body, filename string, pdf []byte) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients given")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send seating plan email",
			zap.Error(err),
			zap.Int("recipients", len(recipients)),
		)
		return fmt.Errorf("send seating plan email: %w", err)
	}

	m.log.Info("Seating plan emailed",
		zap.Int("recipients", len(recipients)),
		zap.String("attachment", filename),
	)
	return nil
}
