// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// eventRepository is the PostgreSQL-backed implementation of
// [EventRepository] over the "events" table.
type eventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] backed by db.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEvent,
		event.ID, event.Title, event.Date, event.Time, event.Location,
		event.Description, event.Category, event.Banner,
	)

	created, err := scanEvent(row)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*eventRepository.CreateEvent").Msg("error creating event")
		return models.Event{}, err
	}

	return created, nil
}

func (r *eventRepository) FindEventByID(ctx context.Context, id string) (models.Event, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Event{}, ErrNotFound
	}

	event, err := scanEvent(r.db.QueryRowContext(ctx, findEventByID, id))
	if err != nil {
		err = r.db.mapError(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*eventRepository.FindEventByID").Str("event_id", id).Msg("error looking up event")
		}
		return models.Event{}, err
	}

	return event, nil
}

// ListEvents returns all events in the requested order.
func (r *eventRepository) ListEvents(ctx context.Context, order models.EventOrder) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEventsQuery(order)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error building list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error listing events")
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error scanning event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*eventRepository.ListEvents").Msg("error iterating event rows")
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) UpdateEvent(ctx context.Context, id string, update models.EventUpdate) (models.Event, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Event{}, ErrNotFound
	}

	query, args, err := buildEventUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.UpdateEvent").Msg("error building update query")
		return models.Event{}, err
	}

	updated, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*eventRepository.UpdateEvent").Str("event_id", id).Msg("error updating event")
		return models.Event{}, err
	}

	return updated, nil
}

func (r *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return ErrNotFound
	}

	result, err := r.db.ExecContext(ctx, deleteEvent, id)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*eventRepository.DeleteEvent").Str("event_id", id).Msg("error deleting event")
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanEvent(row rowScanner) (models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Date, &e.Time, &e.Location, &e.Description,
		&e.Category, &e.Banner, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}
