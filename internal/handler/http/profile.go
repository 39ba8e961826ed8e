// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// getOwnStudentProfile returns the record resolved for the calling student.
func (h *Handler) getOwnStudentProfile(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	student, ok := p.Student()
	if !ok {
		writeError(w, r, errNoPrincipal)
		return
	}

	utils.WriteJSON(w, student, http.StatusOK)
}

// updateOwnStudentProfile covers both onboarding and later profile edits.
func (h *Handler) updateOwnStudentProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.StudentProfileRequest
	if err = h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid profile update")
		writeError(w, r, err)
		return
	}

	student, err := h.services.StudentService.UpdateOwnProfile(r.Context(), p.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, student, http.StatusOK)
}

func (h *Handler) updateOwnStaffProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.StaffProfileRequest
	if err = h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid profile update")
		writeError(w, r, err)
		return
	}

	staff, err := h.services.StaffService.UpdateOwnProfile(r.Context(), p.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, staff, http.StatusOK)
}
