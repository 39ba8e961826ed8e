// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role tags the kind of an authenticated principal.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// LookupOrder is the order in which principal stores are consulted when a
// token does not name the principal kind. The first store holding the id
// wins, so it is also the tie-break for ids present in several stores.
var LookupOrder = []Role{RoleStudent, RoleStaff, RoleAdmin}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}
