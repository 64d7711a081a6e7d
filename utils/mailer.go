package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SMTPMailer sends verification codes over plain SMTP, configured from env.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	return &SMTPMailer{
		host: os.Getenv("SMTP_HOST"),
		port: os.Getenv("SMTP_PORT"),
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASS"),
		from: os.Getenv("SMTP_FROM"),
	}
}

func (m *SMTPMailer) SendOTP(to, code string) error {
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Email Verification</h2>
  <p>Your OTP for email verification is:</p>
  <div style="background-color: #f0f0f0; padding: 20px; text-align: center; border-radius: 8px;">
    <h1 style="letter-spacing: 5px; margin: 0;">%s</h1>
  </div>
  <p>This OTP will expire in 10 minutes.</p>
  <p>If you didn't request this, please ignore this email.</p>
</div>`, code)

	msg := []byte(
		"From: " + m.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: Your Vyoma Placement Cell Email Verification OTP\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body + "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
}
