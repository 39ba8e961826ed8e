// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// ── helpers ─────────────────────────────────────────────────────────────────

// recordingMailer collects every e-mail it is asked to send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []models.Email
	err  error
	hook chan models.Email
}

func (m *recordingMailer) Send(_ context.Context, email models.Email) error {
	m.mu.Lock()
	m.sent = append(m.sent, email)
	m.mu.Unlock()
	if m.hook != nil {
		m.hook <- email
	}
	return m.err
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// ── Enqueue ─────────────────────────────────────────────────────────────────

func TestMailWorker_Enqueue_FullQueueDrops(t *testing.T) {
	w := NewMailWorker(&recordingMailer{}, 1, logger.Nop())

	if err := w.Enqueue(context.Background(), models.Email{To: "a@bvc.edu"}); err != nil {
		t.Fatalf("first enqueue: unexpected error %v", err)
	}

	err := w.Enqueue(context.Background(), models.Email{To: "b@bvc.edu"})
	if !errors.Is(err, ErrMailQueueFull) {
		t.Fatalf("expected ErrMailQueueFull, got %v", err)
	}
}

func TestMailWorker_DefaultSize(t *testing.T) {
	w := NewMailWorker(&recordingMailer{}, 0, logger.Nop())

	if cap(w.queue) != DefaultMailQueueSize {
		t.Errorf("expected capacity %d, got %d", DefaultMailQueueSize, cap(w.queue))
	}
}

// ── Run ─────────────────────────────────────────────────────────────────────

func TestMailWorker_Run_Delivers(t *testing.T) {
	mailer := &recordingMailer{hook: make(chan models.Email, 1)}
	w := NewMailWorker(mailer, 4, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := w.Enqueue(ctx, models.Email{To: "a@bvc.edu", Subject: "hi"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case got := <-mailer.hook:
		if got.To != "a@bvc.edu" || got.Subject != "hi" {
			t.Errorf("unexpected e-mail delivered: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("e-mail was not delivered")
	}
}

func TestMailWorker_Run_SendErrorKeepsRunning(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("relay down"), hook: make(chan models.Email, 2)}
	w := NewMailWorker(mailer, 4, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for _, to := range []string{"a@bvc.edu", "b@bvc.edu"} {
		if err := w.Enqueue(ctx, models.Email{To: to}); err != nil {
			t.Fatalf("enqueue %s: %v", to, err)
		}
		select {
		case <-mailer.hook:
		case <-time.After(time.Second):
			t.Fatalf("e-mail to %s was not attempted", to)
		}
	}
}

func TestMailWorker_Run_DrainsOnShutdown(t *testing.T) {
	mailer := &recordingMailer{}
	w := NewMailWorker(mailer, 4, logger.Nop())

	for _, to := range []string{"a@bvc.edu", "b@bvc.edu", "c@bvc.edu"} {
		if err := w.Enqueue(context.Background(), models.Email{To: to}); err != nil {
			t.Fatalf("enqueue %s: %v", to, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Run(ctx)

	if got := mailer.count(); got != 3 {
		t.Errorf("expected 3 e-mails delivered on shutdown, got %d", got)
	}

	err := w.Enqueue(context.Background(), models.Email{To: "late@bvc.edu"})
	if !errors.Is(err, ErrMailQueueClosed) {
		t.Errorf("expected ErrMailQueueClosed after stop, got %v", err)
	}
}
