// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Job is a placement or internship opening published by the placement cell.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Salary      string `json:"salary"`
	Description string `json:"description"`

	// Deadline is the last day to apply in YYYY-MM-DD form, empty when open.
	Deadline string `json:"deadline"`
	// Link is the external application page, if any.
	Link string `json:"link"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Job model.
func (j Job) TableName() string {
	return "jobs"
}

// JobUpdate is a partial update of a job. Only non-nil fields are written.
// An empty Deadline clears it.
type JobUpdate struct {
	Title       *string
	Company     *string
	Location    *string
	Type        *string
	Salary      *string
	Deadline    *string
	Description *string
	Link        *string
}

// IsEmpty reports whether the update changes nothing.
func (u JobUpdate) IsEmpty() bool {
	return u.Title == nil && u.Company == nil && u.Location == nil && u.Type == nil &&
		u.Salary == nil && u.Deadline == nil && u.Description == nil && u.Link == nil
}
