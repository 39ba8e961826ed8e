// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
)

type recipientRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecipientRepository constructs a [RecipientRepository] that reads the
// students and staff tables of db.
func NewRecipientRepository(db *DB, logger *logger.Logger) RecipientRepository {
	logger.Debug().Msg("creating recipient repository")
	return &recipientRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recipientRepository) ListRecipients(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRecipients)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*recipientRepository.ListRecipients").Msg("error listing recipients")
		return nil, err
	}
	defer rows.Close()

	emails := make([]string, 0)
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			log.Err(err).Str("func", "*recipientRepository.ListRecipients").Msg("error scanning recipient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*recipientRepository.ListRecipients").Msg("error iterating recipient rows")
		return nil, err
	}

	return emails, nil
}
