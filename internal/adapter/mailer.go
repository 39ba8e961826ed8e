// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// sendFunc matches [smtp.SendMail] so tests can replace the transport.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
	send sendFunc
	now  func() time.Time

	logger *logger.Logger
}

// NewMailer returns an SMTP [Mailer] for cfg. When cfg.Host is empty the
// returned Mailer only logs the messages it is given, which keeps local
// development free of an SMTP relay.
func NewMailer(cfg config.Mailer, log *logger.Logger) Mailer {
	if strings.TrimSpace(cfg.Host) == "" {
		log.Warn().Str("func", "NewMailer").Msg("mailer host is not set, e-mails will only be logged")
		return &logMailer{logger: log}
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	log.Debug().Str("func", "NewMailer").Str("host", cfg.Host).Int("port", cfg.Port).Msg("creating smtp mailer")

	return &smtpMailer{
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:   auth,
		from:   cfg.From,
		send:   smtp.SendMail,
		now:    time.Now,
		logger: log,
	}
}

// Send implements [Mailer].
func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	to, recipients, err := envelope(email)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	msg := buildMessage(m.from, to, email.Subject, email.HTML, m.now())
	if err = m.send(m.addr, m.auth, m.from, recipients, msg); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Str("to", to).Int("recipients", len(recipients)).Msg("error sending e-mail")
		return mapSMTPError(err)
	}

	log.Info().Str("func", "*smtpMailer.Send").Str("to", to).Int("recipients", len(recipients)).Msg("e-mail sent")
	return nil
}

// undisclosedRecipients is the To header of a Bcc-only message.
const undisclosedRecipients = "undisclosed-recipients:;"

// envelope returns the To header and the SMTP recipients of email.
func envelope(email models.Email) (string, []string, error) {
	recipients := make([]string, 0, len(email.Bcc)+1)

	header := undisclosedRecipients
	if email.To != "" || len(email.Bcc) == 0 {
		to, err := sanitizeAddress(email.To)
		if err != nil {
			return "", nil, err
		}
		header = to
		recipients = append(recipients, to)
	}

	for _, addr := range email.Bcc {
		bcc, err := sanitizeAddress(addr)
		if err != nil {
			return "", nil, err
		}
		recipients = append(recipients, bcc)
	}

	return header, recipients, nil
}

// sanitizeAddress parses addr and rejects anything that could smuggle extra
// headers into the message.
func sanitizeAddress(addr string) (string, error) {
	if strings.ContainsAny(addr, "\r\n") {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecipient, addr)
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}
	return parsed.Address, nil
}

// buildMessage renders an RFC 5322 message with an HTML body.
func buildMessage(from, to, subject, html string, now time.Time) []byte {
	var b bytes.Buffer

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", stripNewlines(subject)) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)

	return b.Bytes()
}

func stripNewlines(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// logMailer is the [Mailer] used when no SMTP relay is configured.
type logMailer struct {
	logger *logger.Logger
}

// Send implements [Mailer]. The body is never logged because it may carry
// credentials or one-time codes.
func (m *logMailer) Send(ctx context.Context, email models.Email) error {
	to, recipients, err := envelope(email)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*logMailer.Send").
		Str("to", to).
		Int("recipients", len(recipients)).
		Str("subject", email.Subject).
		Msg("smtp disabled, e-mail not delivered")

	return nil
}
