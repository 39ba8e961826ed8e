// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PrincipalRecord is the closed set of account records a principal can be
// backed by: [Student], [Staff] or [Admin]. The unexported method keeps the
// set closed to this package.
type PrincipalRecord interface {
	PrincipalID() string
	principalRole() Role
}

// Principal is an authenticated actor after token resolution.
//
// Role is derived from the concrete type of Record, so the two can never
// disagree. Record never carries a password hash.
type Principal struct {
	ID     string          `json:"id"`
	Role   Role            `json:"role"`
	Record PrincipalRecord `json:"record"`
}

// NewPrincipal builds a normalized principal from a store record, stripping
// the password hash. A nil record yields the zero Principal.
func NewPrincipal(record PrincipalRecord) Principal {
	switch r := record.(type) {
	case Student:
		r.PasswordHash = ""
		return Principal{ID: r.ID, Role: RoleStudent, Record: r}
	case Staff:
		r.PasswordHash = ""
		return Principal{ID: r.ID, Role: RoleStaff, Record: r}
	case Admin:
		r.PasswordHash = ""
		return Principal{ID: r.ID, Role: RoleAdmin, Record: r}
	default:
		return Principal{}
	}
}

// IsZero reports whether p is the anonymous (unresolved) principal.
func (p Principal) IsZero() bool {
	return p.ID == "" && p.Record == nil
}

// HasRole reports whether p has one of the given roles.
func (p Principal) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// Student returns the student record when p is a student.
func (p Principal) Student() (Student, bool) {
	s, ok := p.Record.(Student)
	return s, ok
}

// Staff returns the staff record when p is a staff member.
func (p Principal) Staff() (Staff, bool) {
	s, ok := p.Record.(Staff)
	return s, ok
}

// Admin returns the admin record when p is an admin.
func (p Principal) Admin() (Admin, bool) {
	a, ok := p.Record.(Admin)
	return a, ok
}
