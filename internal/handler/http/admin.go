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

// ── students ────────────────────────────────────────────────────────────────

func (h *Handler) adminListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.services.StudentService.ListStudents(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nonNil(students), http.StatusOK)
}

func (h *Handler) adminGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.services.StudentService.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, student, http.StatusOK)
}

func (h *Handler) adminUpdateStudent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.StudentProfileRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid student update")
		writeError(w, r, err)
		return
	}

	student, err := h.services.StudentService.UpdateStudent(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, student, http.StatusOK)
}

func (h *Handler) adminDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.services.StudentService.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDeleted}, http.StatusOK)
}

// ── staff ───────────────────────────────────────────────────────────────────

func (h *Handler) adminCreateStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateStaffRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid staff request")
		writeError(w, r, err)
		return
	}

	staff, err := h.services.StaffService.CreateStaff(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, staff, http.StatusCreated)
}

func (h *Handler) adminListStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.services.StaffService.ListStaff(r.Context(), models.StaffOrderNewest)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nonNil(members), http.StatusOK)
}

func (h *Handler) adminUpdateStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.StaffProfileRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid staff update")
		writeError(w, r, err)
		return
	}

	staff, err := h.services.StaffService.UpdateStaff(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, staff, http.StatusOK)
}

func (h *Handler) adminDeleteStaff(w http.ResponseWriter, r *http.Request) {
	if err := h.services.StaffService.DeleteStaff(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgDeleted}, http.StatusOK)
}
