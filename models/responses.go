// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by the login and signup endpoints. The token is
// also set in the Authorization response header.
//
// Clients keep Token and Role together as one session object.
type LoginResponse struct {
	Token string          `json:"token"`
	Role  Role            `json:"role"`
	User  PrincipalRecord `json:"user"`
}

// SessionResponse describes the caller of an authenticated request.
type SessionResponse struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// MessageResponse is a plain informational or error body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Stats holds the public portal counters.
type Stats struct {
	Students int64 `json:"students"`
	Staff    int64 `json:"staff"`
}
