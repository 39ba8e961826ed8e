// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Staff is a faculty member. Staff accounts are created by an admin only;
// the initial plaintext password is e-mailed to the new member once.
type Staff struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Position      string     `json:"position"`
	Department    string     `json:"department"`
	Qualification string     `json:"qualification"`
	Experience    string     `json:"experience"`
	Bio           string     `json:"bio"`
	Subjects      StringList `json:"subjects"`

	// Photo is a reference (URL) to the staff photo in the file store.
	Photo string `json:"photo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Staff model.
func (s Staff) TableName() string {
	return "staff"
}

// PrincipalID implements [PrincipalRecord].
func (s Staff) PrincipalID() string {
	return s.ID
}

func (Staff) principalRole() Role {
	return RoleStaff
}

// StaffUpdate is a partial update of a staff member. Only non-nil fields
// are written.
type StaffUpdate struct {
	Name          *string
	Email         *string
	Position      *string
	Department    *string
	Qualification *string
	Experience    *string
	Bio           *string
	Subjects      *StringList
	Photo         *string
	PasswordHash  *string
}

// IsEmpty reports whether the update changes nothing.
func (u StaffUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Position == nil && u.Department == nil &&
		u.Qualification == nil && u.Experience == nil && u.Bio == nil && u.Subjects == nil &&
		u.Photo == nil && u.PasswordHash == nil
}

// StaffOrder selects the ordering of staff listings.
type StaffOrder int

const (
	// StaffOrderNewest lists the most recently created members first
	// (admin console).
	StaffOrderNewest StaffOrder = iota

	// StaffOrderDepartment lists members alphabetically by department
	// (public faculty directory).
	StaffOrderDepartment
)
