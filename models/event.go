// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Event is a campus event announced on the portal.
type Event struct {
	ID string `json:"id"`
	// Title is the event headline.
	Title string `json:"title"`
	// Date is the calendar day of the event in YYYY-MM-DD form.
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`

	// Banner is a reference (URL) to the banner image in the file store.
	Banner string `json:"banner"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Event model.
func (e Event) TableName() string {
	return "events"
}

// EventUpdate is a partial update of an event. Only non-nil fields are
// written.
type EventUpdate struct {
	Title       *string
	Date        *string
	Time        *string
	Location    *string
	Description *string
	Category    *string
	Banner      *string
}

// IsEmpty reports whether the update changes nothing.
func (u EventUpdate) IsEmpty() bool {
	return u.Title == nil && u.Date == nil && u.Time == nil && u.Location == nil &&
		u.Description == nil && u.Category == nil && u.Banner == nil
}

// EventOrder selects the ordering of event listings.
type EventOrder int

const (
	// EventOrderUpcoming lists events by date, earliest first (admin console).
	EventOrderUpcoming EventOrder = iota

	// EventOrderLatest lists events by date, latest first (public portal).
	EventOrderLatest
)
