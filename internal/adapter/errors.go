// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrMailRejected     = errors.New("mail rejected by relay")
	ErrSendingMail      = errors.New("error sending mail")
)
