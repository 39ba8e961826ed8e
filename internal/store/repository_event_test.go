// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEventID = "0190b6b0-7c5e-7b3a-9d2e-1f2a3b4c5d71"

var eventColumnNames = []string{
	"id", "title", "date", "time", "location", "description", "category", "banner", "created_at", "updated_at",
}

func eventRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(eventColumnNames).
		AddRow(testEventID, "Tech Fest", "2026-11-20", "10:00", "Main hall", "", "Cultural", "", now, now)
}

func TestCreateEvent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEventRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO events").
		WithArgs(testEventID, "Tech Fest", "2026-11-20", "10:00", "Main hall", "", "Cultural", "").
		WillReturnRows(eventRow(time.Now()))

	created, err := repo.CreateEvent(context.Background(), models.Event{
		ID: testEventID, Title: "Tech Fest", Date: "2026-11-20", Time: "10:00",
		Location: "Main hall", Category: "Cultural",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-11-20", created.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEventByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEventRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM events WHERE id = ").
		WithArgs(testEventID).
		WillReturnRows(eventRow(time.Now()))
	event, err := repo.FindEventByID(context.Background(), testEventID)
	require.NoError(t, err)
	assert.Equal(t, "Tech Fest", event.Title)

	mock.ExpectQuery("SELECT (.+) FROM events WHERE id = ").WillReturnError(sql.ErrNoRows)
	_, err = repo.FindEventByID(context.Background(), testEventID)
	assert.ErrorIs(t, err, ErrNotFound)

	// a malformed id never reaches the database
	_, err = repo.FindEventByID(context.Background(), "64f1c2")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEvents_Order(t *testing.T) {
	tests := []struct {
		name  string
		order models.EventOrder
		query string
	}{
		{name: "upcoming", order: models.EventOrderUpcoming, query: "SELECT (.+) FROM events ORDER BY date ASC, created_at ASC"},
		{name: "latest", order: models.EventOrderLatest, query: "SELECT (.+) FROM events ORDER BY date DESC, created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewEventRepository(db, logger.Nop())

			mock.ExpectQuery(tt.query).WillReturnRows(eventRow(time.Now()))

			events, err := repo.ListEvents(context.Background(), tt.order)

			require.NoError(t, err)
			assert.Len(t, events, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListEvents_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEventRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM events").WillReturnRows(sqlmock.NewRows(eventColumnNames))

	events, err := repo.ListEvents(context.Background(), models.EventOrderLatest)

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestUpdateEvent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEventRepository(db, logger.Nop())
	location := "Auditorium"

	mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), location = \$1 WHERE id = \$2`).
		WithArgs(location, testEventID).
		WillReturnRows(eventRow(time.Now()))

	_, err := repo.UpdateEvent(context.Background(), testEventID, models.EventUpdate{Location: &location})
	require.NoError(t, err)

	mock.ExpectQuery("UPDATE events").WillReturnError(sql.ErrNoRows)
	_, err = repo.UpdateEvent(context.Background(), testEventID, models.EventUpdate{Location: &location})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.UpdateEvent(context.Background(), testEventID, models.EventUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEventRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM events WHERE id = ").
		WithArgs(testEventID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteEvent(context.Background(), testEventID))

	mock.ExpectExec("DELETE FROM events").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteEvent(context.Background(), testEventID), ErrNotFound)

	mock.ExpectExec("DELETE FROM events").WillReturnError(pgError(pgerrcode.AdminShutdown))
	assert.ErrorIs(t, repo.DeleteEvent(context.Background(), testEventID), ErrDatabaseUnavailable)
}
