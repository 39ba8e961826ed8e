// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		record   PrincipalRecord
		wantID   string
		wantRole Role
	}{
		{
			name:     "student",
			record:   Student{ID: "s-1", Email: "s@bvc.edu", PasswordHash: "hash"},
			wantID:   "s-1",
			wantRole: RoleStudent,
		},
		{
			name:     "staff",
			record:   Staff{ID: "st-1", Email: "st@bvc.edu", PasswordHash: "hash"},
			wantID:   "st-1",
			wantRole: RoleStaff,
		},
		{
			name:     "admin",
			record:   Admin{ID: "a-1", Email: "a@bvc.edu", PasswordHash: "hash"},
			wantID:   "a-1",
			wantRole: RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrincipal(tt.record)

			assert.Equal(t, tt.wantID, p.ID)
			assert.Equal(t, tt.wantRole, p.Role)
			assert.False(t, p.IsZero())

			switch r := p.Record.(type) {
			case Student:
				assert.Empty(t, r.PasswordHash)
			case Staff:
				assert.Empty(t, r.PasswordHash)
			case Admin:
				assert.Empty(t, r.PasswordHash)
			default:
				t.Fatalf("unexpected record type %T", p.Record)
			}
		})
	}
}

func TestNewPrincipal_NilRecord(t *testing.T) {
	p := NewPrincipal(nil)
	assert.True(t, p.IsZero())
	assert.Empty(t, p.Role)
}

func TestPrincipal_Accessors(t *testing.T) {
	p := NewPrincipal(Staff{ID: "st-1", Name: "Dr. Rao"})

	staff, ok := p.Staff()
	require.True(t, ok)
	assert.Equal(t, "Dr. Rao", staff.Name)

	_, ok = p.Student()
	assert.False(t, ok)
	_, ok = p.Admin()
	assert.False(t, ok)
}

func TestPrincipal_HasRole(t *testing.T) {
	admin := NewPrincipal(Admin{ID: "a-1"})

	assert.True(t, admin.HasRole(RoleAdmin))
	assert.True(t, admin.HasRole(RoleStaff, RoleAdmin))
	assert.False(t, admin.HasRole(RoleStudent))
	assert.False(t, admin.HasRole())
}

func TestPrincipal_JSONNeverContainsPasswordHash(t *testing.T) {
	p := Principal{ID: "s-1", Role: RoleStudent, Record: Student{ID: "s-1", PasswordHash: "secret-hash"}}

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.Contains(t, string(b), `"role":"student"`)
}

func TestRole_Valid(t *testing.T) {
	for _, r := range LookupOrder {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
	assert.Equal(t, []Role{RoleStudent, RoleStaff, RoleAdmin}, LookupOrder)
}
