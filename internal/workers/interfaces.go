// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs several
// workers until their context is cancelled, and the mail queue used by the
// services to hand e-mails off without blocking a request.
package workers

import (
	"context"

	"github.com/MKhiriev/bvc-digitalhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled and the worker has finished its
// shutdown work.
type Worker interface {
	Run(ctx context.Context)
}

// MailQueue accepts e-mails for asynchronous delivery.
type MailQueue interface {
	// Enqueue hands email to the queue without blocking. It returns
	// [ErrMailQueueFull] when the queue has no free slot and
	// [ErrMailQueueClosed] once the worker has stopped.
	Enqueue(ctx context.Context, email models.Email) error
}
