// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives and
	// shutdown has completed.
	RunServer()

	// Run is RunServer driven by ctx instead of process signals.
	Run(ctx context.Context) error
}
