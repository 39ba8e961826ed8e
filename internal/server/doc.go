// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server and the background workers of the
// application.
//
// It starts both, waits for SIGINT, SIGTERM or SIGQUIT and shuts them down
// in order: the HTTP server first, so requests still in flight can queue
// e-mails, then the workers, which flush what is left.
package server
