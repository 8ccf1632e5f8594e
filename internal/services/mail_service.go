package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

type IMailService interface {
	SendPasswordResetMail(email, token string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587 (STARTTLS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@yourapp.com"
	FromName string

	AppName    string
	AppBaseURL string // e.g. "https://yourapp.com"
}

type smtpMailService struct {
	cfg      SMTPConfig
	resetTpl *template.Template
}

const resetMailTemplate = `<html>
<body style="font-family: sans-serif;">
  <h2>{{.AppName}} password reset</h2>
  <p>Someone requested a password reset for your account. If that was you,
  use the link below within 30 minutes. Otherwise you can ignore this mail.</p>
  <p><a href="{{.ResetURL}}">Reset your password</a></p>
</body>
</html>`

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:      cfg,
		resetTpl: template.Must(template.New("resetHTML").Parse(resetMailTemplate)),
	}
}

func (s *smtpMailService) SendPasswordResetMail(email, token string) error {

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), token)

	var body bytes.Buffer
	err := s.resetTpl.Execute(&body, map[string]string{
		"AppName":  s.cfg.AppName,
		"ResetURL": resetURL,
	})
	if err != nil {
		return err
	}

	headers := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s password reset\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n",
		s.cfg.FromName, s.cfg.From, email, s.cfg.AppName)

	msg := append([]byte(headers), body.Bytes()...)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{email}, msg)
}

// noopMailService is used when no SMTP host is configured; reset mails
// are dropped and the token is only usable via logs/manual delivery.
type noopMailService struct{}

func NewNoopMailService() IMailService {
	return noopMailService{}
}

func (noopMailService) SendPasswordResetMail(string, string) error {
	return nil
}
