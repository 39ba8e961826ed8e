// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.InfoService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// listFaculty is the public staff directory, grouped by department.
func (h *Handler) listFaculty(w http.ResponseWriter, r *http.Request) {
	members, err := h.services.StaffService.ListStaff(r.Context(), models.StaffOrderDepartment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, nonNil(members), http.StatusOK)
}

func (h *Handler) getFaculty(w http.ResponseWriter, r *http.Request) {
	staff, err := h.services.StaffService.GetStaff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, staff, http.StatusOK)
}

// nonNil makes empty listings serialize as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
