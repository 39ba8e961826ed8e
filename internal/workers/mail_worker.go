// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/internal/adapter"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

const (
	// DefaultMailQueueSize is used when a non-positive size is requested.
	DefaultMailQueueSize = 100

	// mailSendTimeout bounds a single delivery attempt.
	mailSendTimeout = 30 * time.Second

	// mailDrainTimeout bounds the delivery of messages still queued at shutdown.
	mailDrainTimeout = 10 * time.Second
)

// MailWorker is a [Worker] and a [MailQueue]: requests enqueue e-mails and
// Run delivers them one by one through an [adapter.Mailer].
type MailWorker struct {
	queue  chan models.Email
	mailer adapter.Mailer

	mu     sync.RWMutex
	closed bool

	logger *logger.Logger
}

// NewMailWorker creates a mail worker with a buffer of size messages.
func NewMailWorker(mailer adapter.Mailer, size int, log *logger.Logger) *MailWorker {
	if size <= 0 {
		size = DefaultMailQueueSize
	}

	log.Debug().Str("func", "NewMailWorker").Int("queue_size", size).Msg("creating mail worker")

	return &MailWorker{
		queue:  make(chan models.Email, size),
		mailer: mailer,
		logger: log,
	}
}

// Enqueue implements [MailQueue]. A full queue drops the message.
func (w *MailWorker) Enqueue(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		log.Error().Str("func", "*MailWorker.Enqueue").Str("to", email.To).Msg("mail worker stopped, e-mail dropped")
		return ErrMailQueueClosed
	}

	select {
	case w.queue <- email:
		return nil
	default:
		log.Error().Str("func", "*MailWorker.Enqueue").Str("to", email.To).Msg("mail queue is full, e-mail dropped")
		return ErrMailQueueFull
	}
}

// Run implements [Worker]. After ctx is cancelled, messages already queued
// get one more delivery attempt within a short deadline.
func (w *MailWorker) Run(ctx context.Context) {
	w.logger.Info().Str("func", "*MailWorker.Run").Msg("mail worker started")

	for {
		select {
		case email := <-w.queue:
			w.deliver(ctx, email)
		case <-ctx.Done():
			w.drain(context.WithoutCancel(ctx))
			w.logger.Info().Str("func", "*MailWorker.Run").Msg("mail worker stopped")
			return
		}
	}
}

func (w *MailWorker) drain(ctx context.Context) {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, mailDrainTimeout)
	defer cancel()

	for {
		select {
		case email := <-w.queue:
			w.deliver(ctx, email)
		default:
			return
		}
	}
}

func (w *MailWorker) deliver(ctx context.Context, email models.Email) {
	ctx, cancel := context.WithTimeout(ctx, mailSendTimeout)
	defer cancel()

	if err := w.mailer.Send(ctx, email); err != nil {
		w.logger.Err(err).Str("func", "*MailWorker.deliver").Str("to", email.To).Msg("error delivering e-mail")
	}
}
