// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type eventService struct {
	events   store.EventRepository
	announce *announcer
	ids      idGenerator

	logger *logger.Logger
}

// NewEventService constructs an [EventService]. Announcements go to the
// addresses listed by recipients.
func NewEventService(events store.EventRepository, recipients store.RecipientRepository, mail workers.MailQueue,
	logger *logger.Logger) EventService {
	return &eventService{
		events:   events,
		announce: newAnnouncer(recipients, mail),
		ids:      newIDGenerator(),
		logger:   logger,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req models.EventRequest) (models.Event, error) {
	log := logger.FromContext(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" || req.Date == "" {
		return models.Event{}, ErrInvalidDataProvided
	}

	event, err := s.events.CreateEvent(ctx, models.Event{
		ID:          s.ids.Generate(),
		Title:       title,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		Banner:      req.Banner,
	})
	if err != nil {
		log.Err(err).Str("func", "*eventService.CreateEvent").Msg("error creating event")
		return models.Event{}, mapStoreError(err)
	}

	log.Info().Str("func", "*eventService.CreateEvent").Str("event_id", event.ID).Msg("event created")
	s.broadcast(ctx, event, false)
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (models.Event, error) {
	event, err := s.events.FindEventByID(ctx, id)
	if err != nil {
		return models.Event{}, mapStoreError(err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, order models.EventOrder) ([]models.Event, error) {
	events, err := s.events.ListEvents(ctx, order)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, req models.EventUpdateRequest) (models.Event, error) {
	log := logger.FromContext(ctx)

	update := models.EventUpdate{
		Title:       nonEmpty(req.Title),
		Date:        nonEmpty(req.Date),
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		Banner:      req.Banner,
	}

	event, err := s.events.UpdateEvent(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*eventService.UpdateEvent").Str("event_id", id).Msg("error updating event")
		return models.Event{}, mapStoreError(err)
	}

	log.Info().Str("func", "*eventService.UpdateEvent").Str("event_id", id).Msg("event updated")
	s.broadcast(ctx, event, true)
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.DeleteEvent(ctx, id); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*eventService.DeleteEvent").Str("event_id", id).Msg("event deleted")
	return nil
}

func (s *eventService) broadcast(ctx context.Context, event models.Event, updated bool) {
	message, err := eventAnnouncement(event, updated)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*eventService.broadcast").Str("event_id", event.ID).
			Msg("error rendering event announcement")
		return
	}
	s.announce.announce(ctx, message)
}
