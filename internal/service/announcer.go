// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// announcementBatchSize caps the Bcc list of one queued message. Relays
// commonly refuse messages with more than 100 recipients.
const announcementBatchSize = 50

// announcer e-mails portal announcements to every student and staff member.
type announcer struct {
	recipients store.RecipientRepository
	mail       workers.MailQueue
}

func newAnnouncer(recipients store.RecipientRepository, mail workers.MailQueue) *announcer {
	return &announcer{recipients: recipients, mail: mail}
}

// announce queues message in Bcc batches. The announced record is already
// stored, so failures are logged and not returned.
func (a *announcer) announce(ctx context.Context, message models.Email) {
	log := logger.FromContext(ctx)

	recipients, err := a.recipients.ListRecipients(ctx)
	if err != nil {
		log.Err(err).Str("func", "*announcer.announce").Str("subject", message.Subject).
			Msg("error loading announcement recipients")
		return
	}
	recipients = uniqueAddresses(recipients)

	queued := 0
	for start := 0; start < len(recipients); start += announcementBatchSize {
		end := min(start+announcementBatchSize, len(recipients))

		batch := message
		batch.To = ""
		batch.Bcc = recipients[start:end]
		if err := a.mail.Enqueue(ctx, batch); err != nil {
			log.Err(err).Str("func", "*announcer.announce").Str("subject", message.Subject).
				Int("queued", queued).Int("recipients", len(recipients)).
				Msg("announcement was not queued for every recipient")
			return
		}
		queued += end - start
	}

	log.Info().Str("func", "*announcer.announce").Str("subject", message.Subject).
		Int("recipients", queued).Msg("announcement queued")
}

// uniqueAddresses drops repeated and blank addresses, keeping the first
// occurrence of each.
func uniqueAddresses(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	unique := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		addr = normalizeEmail(addr)
		if addr == "" {
			continue
		}
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		unique = append(unique, addr)
	}
	return unique
}
