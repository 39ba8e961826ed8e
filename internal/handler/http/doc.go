// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the DigitalHub API.
//
// It wires the chi router, the request tracing and access logging
// middleware, bearer token resolution and the per-route role gate in front
// of the service layer. Every error leaves the package through one
// error-to-status table with a generic message, so clients never learn why a
// token was rejected.
package http
