package smtpmail

import (
	"strings"

	"petvizor/internal/domain/system"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Mailer envía correo transaccional por SMTP.
// La ausencia de configuración se detecta antes de marcar (distinto de
// un fallo de transporte).
type Mailer struct {
	cfg Config
}

func NewMailer(cfg Config) *Mailer {
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.User = strings.TrimSpace(cfg.User)
	cfg.From = strings.TrimSpace(cfg.From)
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) IsConfigured() bool {
	return m != nil && m.cfg.Host != "" && m.cfg.User != "" && m.cfg.Pass != "" && m.cfg.From != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.IsConfigured() {
		return system.ErrMailNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)
	return d.DialAndSend(msg)
}
