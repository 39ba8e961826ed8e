// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Admin is a portal administrator. Admins are provisioned from configuration
// at startup and are never created through the API.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}

// PrincipalID implements [PrincipalRecord].
func (a Admin) PrincipalID() string {
	return a.ID
}

func (Admin) principalRole() Role {
	return RoleAdmin
}
