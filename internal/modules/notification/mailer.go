package notification

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"aerotours/internal/config"

	"github.com/google/uuid"
)

// Mailer hands a rendered email to the transactional provider and returns
// the provider message id.
type Mailer interface {
	Send(to, subject, htmlBody string) (string, error)
}

// SMTPMailer delivers over plain SMTP. With Enabled=false it logs the
// email and returns a generated id, which keeps local development and
// tests offline.
type SMTPMailer struct {
	cfg config.EmailConfig
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) (string, error) {
	id := uuid.New().String()

	if !m.cfg.Enabled {
		log.Printf("[EMAIL] would send to %s: %s (id=%s)", to, subject, id)
		return id, nil
	}

	if m.cfg.SMTPHost == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return "", fmt.Errorf("email service not properly configured")
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString(fmt.Sprintf("Message-ID: <%s@aerotours>\r\n", id))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return "", fmt.Errorf("smtp send failed: %w", err)
	}

	return id, nil
}
