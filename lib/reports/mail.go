package reports

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"raidchampions/lib/telemetry"
	"strings"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("raidchampions.lib.reports")

type SmtpConfig struct {
	Server       string `json:"server" validate:"required_with=EmailAddress"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address" env:"SMTP_EMAIL_ADDRESS"`
	Password     string `json:"password" env:"SMTP_PASSWORD"`
}

type Mailer struct {
	config SmtpConfig
}

func NewMailer(config SmtpConfig) Mailer {
	return Mailer{config: config}
}

// Send mails the reports as one message, the tables are inlined as text
// and html, and attached in the given format.
func (m Mailer) Send(ctx context.Context, to []string, subject string, tables []Table, attachAs Format) error {
	ctx, span := tracer.Start(ctx, "Mailer:Send")
	defer span.End()
	span.SetAttributes(
		attribute.StringSlice("to", to),
		attribute.Int("reports", len(tables)),
	)

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Raid Champions <%s>", m.config.EmailAddress)
	mail.To = to
	mail.Subject = subject

	var text, html strings.Builder
	for _, t := range tables {
		err := Render(&text, t, FormatText)
		if err != nil {
			return err
		}
		text.WriteString("\n")
		err = Render(&html, t, FormatHTML)
		if err != nil {
			return err
		}
		html.WriteString("<br/>\n")

		attachment, err := RenderString(t, attachAs)
		if err != nil {
			return err
		}
		filename := fmt.Sprintf("%s.%s", attachmentName(t.Title), attachAs.Extension())
		_, err = mail.Attach(bytes.NewBufferString(attachment), filename, contentType(attachAs))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to attach report")
			return err
		}
	}
	mail.Text = []byte(text.String())
	mail.HTML = []byte(html.String())

	addr := fmt.Sprintf("%s:%d", m.config.Server, m.config.Port)
	err := mail.Send(addr, smtp.PlainAuth("", m.config.EmailAddress, m.config.Password, m.config.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}
	return nil
}

func attachmentName(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		}
		return '-'
	}, name)
	name = strings.Trim(name, "-")
	if name == "" {
		return "report"
	}
	return name
}

func contentType(f Format) string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatMarkdown:
		return "text/markdown"
	case FormatHTML:
		return "text/html"
	}
	return "text/plain"
}
