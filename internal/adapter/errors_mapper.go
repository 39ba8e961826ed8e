// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/textproto"
)

// mapSMTPError converts an error returned by the SMTP client into the
// package sentinels. Permanent negative replies (5xx) become
// [ErrMailRejected]; everything else is [ErrSendingMail].
func mapSMTPError(err error) error {
	if err == nil {
		return nil
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) && protoErr.Code >= 500 && protoErr.Code < 600 {
		return fmt.Errorf("%w: %d %s", ErrMailRejected, protoErr.Code, protoErr.Msg)
	}

	return fmt.Errorf("%w: %w", ErrSendingMail, err)
}
