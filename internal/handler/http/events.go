// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/app"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/go-chi/chi/v5"
)

// ── admin ───────────────────────────────────────────────────────────────────

// adminListEvents lists events for the console, earliest first.
func (h *Handler) adminListEvents(w http.ResponseWriter, r *http.Request) {
	h.listEvents(w, r, models.EventOrderUpcoming)
}

func (h *Handler) adminCreateEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EventRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid event request")
		writeError(w, r, err)
		return
	}

	event, err := h.services.EventService.CreateEvent(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusCreated)
}

func (h *Handler) adminUpdateEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EventUpdateRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid event update")
		writeError(w, r, err)
		return
	}

	event, err := h.services.EventService.UpdateEvent(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) adminDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EventService.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDeleted}, http.StatusOK)
}

// ── public ──────────────────────────────────────────────────────────────────

// publicListEvents lists events for the portal, latest first.
func (h *Handler) publicListEvents(w http.ResponseWriter, r *http.Request) {
	h.listEvents(w, r, models.EventOrderLatest)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.services.EventService.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, event, http.StatusOK)
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request, order models.EventOrder) {
	events, err := h.services.EventService.ListEvents(r.Context(), order)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nonNil(events), http.StatusOK)
}
