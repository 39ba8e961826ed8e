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

// listJobs serves both the console and the portal; jobs are newest first.
func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.services.JobService.ListJobs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nonNil(jobs), http.StatusOK)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.services.JobService.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) applyForJob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.JobApplicationRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid job application")
		writeError(w, r, err)
		return
	}

	if err := h.services.JobService.Apply(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgApplicationSubmitted}, http.StatusOK)
}

// ── admin ───────────────────────────────────────────────────────────────────

func (h *Handler) adminCreateJob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.JobRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid job request")
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.CreateJob(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusCreated)
}

func (h *Handler) adminUpdateJob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.JobUpdateRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid job update")
		writeError(w, r, err)
		return
	}

	job, err := h.services.JobService.UpdateJob(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) adminDeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := h.services.JobService.DeleteJob(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDeleted}, http.StatusOK)
}
