// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Email is an outgoing transactional message.
type Email struct {
	To string
	// Bcc receives the message without appearing in the headers. An e-mail
	// with an empty To is addressed to undisclosed recipients.
	Bcc     []string
	Subject string
	// HTML is the message body, sent as text/html.
	HTML string
}
