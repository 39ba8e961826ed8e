// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Student is a student account. Students sign up themselves after verifying
// their e-mail address and fill the onboarding fields later.
type Student struct {
	// ID is the server-assigned UUID of the student.
	ID string `json:"id"`

	// Name is the display name shown on profiles and project cards.
	Name string `json:"name"`

	// Email is unique across students and always stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the student's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Onboarding fields.
	Department string     `json:"department"`
	Year       string     `json:"year"`
	RollNumber string     `json:"rollNumber"`
	Bio        string     `json:"bio"`
	Skills     StringList `json:"skills"`

	// ProfilePic is a reference (URL) to the profile image in the file store.
	ProfilePic string `json:"profilePic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Student model.
func (s Student) TableName() string {
	return "students"
}

// PrincipalID implements [PrincipalRecord].
func (s Student) PrincipalID() string {
	return s.ID
}

func (Student) principalRole() Role {
	return RoleStudent
}

// StudentUpdate is a partial update of a student. Only non-nil fields are
// written. PasswordHash carries an already hashed replacement password.
type StudentUpdate struct {
	Name         *string
	Email        *string
	Department   *string
	Year         *string
	RollNumber   *string
	Bio          *string
	Skills       *StringList
	ProfilePic   *string
	PasswordHash *string
}

// IsEmpty reports whether the update changes nothing.
func (u StudentUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Department == nil && u.Year == nil &&
		u.RollNumber == nil && u.Bio == nil && u.Skills == nil && u.ProfilePic == nil &&
		u.PasswordHash == nil
}
