// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport abstractions used by the
// DigitalHub server.
//
// The primary abstraction is [Mailer], which decouples the service layer
// from the mail transport. The package ships an SMTP implementation and a
// log-only fallback used when no SMTP host is configured ([NewMailer]).
//
// SMTP replies are mapped by mapSMTPError so that callers can use
// [errors.Is] on the sentinel values in errors.go (e.g. [ErrMailRejected]
// for permanent 5xx failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/bvc-digitalhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers a single e-mail message.
type Mailer interface {
	// Send delivers email. It returns [ErrInvalidRecipient] for an address
	// that cannot be put into a header, [ErrMailRejected] when the relay
	// refuses the message permanently and [ErrSendingMail] otherwise.
	Send(ctx context.Context, email models.Email) error
}
