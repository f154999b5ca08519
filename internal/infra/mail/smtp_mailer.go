// Package mail dispatches transactional email over SMTP.
package mail

import (
	"context"
	"html/template"
	"strings"

	"influencerhub/config"
	"influencerhub/internal/domain/service"
	"influencerhub/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

const otpSubject = "Your verification code"

// otpTemplate renders the verification email body. The code is the only
// dynamic part; everything else is static branding.
var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f4f4f7; margin: 0; padding: 24px;">
    <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
      <h2 style="margin-top: 0; color: #1a1a2e;">Verify your email</h2>
      <p>Hi {{.Name}},</p>
      <p>Use the code below to verify your email address. It expires in 10 minutes.</p>
      <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px; text-align: center; color: #1a1a2e; margin: 24px 0;">{{.Code}}</p>
      <p style="color: #6b7280; font-size: 13px;">If you did not request this code, you can safely ignore this email.</p>
    </div>
  </body>
</html>`))

type smtpMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer is the constructor for smtpMailer. It fails fast when the
// SMTP channel is not configured, since OTP delivery cannot work without it.
func NewSMTPMailer(cfg *config.Config) (service.OTPMailer, error) {
	smtp := cfg.SMTP
	if smtp == nil || strings.TrimSpace(smtp.Host) == "" {
		return nil, errors.New("smtp host is not configured")
	}
	if strings.TrimSpace(smtp.From) == "" {
		return nil, errors.New("smtp sender address is not configured")
	}

	opts := []gomail.Option{
		gomail.WithPort(smtp.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if smtp.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtp.Username),
			gomail.WithPassword(smtp.Password),
		)
	}

	client, err := gomail.NewClient(smtp.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{client: client, from: smtp.From}, nil
}

// SendCode delivers a verification code to the given address.
func (m *smtpMailer) SendCode(ctx context.Context, email, code, displayName string) error {
	name := displayName
	if strings.TrimSpace(name) == "" {
		name = "there"
	}

	var body strings.Builder
	if err := otpTemplate.Execute(&body, struct {
		Name string
		Code string
	}{Name: name, Code: code}); err != nil {
		return errors.Wrap(err, "render otp email")
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "set sender")
	}
	if err := msg.To(email); err != nil {
		return errors.Wrap(err, "set recipient")
	}
	msg.Subject(otpSubject)
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send otp email")
	}

	return nil
}
