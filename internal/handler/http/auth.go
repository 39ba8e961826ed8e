// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/app"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// loginFunc is one of the per-role login methods of the auth service.
type loginFunc func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

func (h *Handler) loginStudent(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, models.RoleStudent, h.services.AuthService.LoginStudent)
}

func (h *Handler) loginStaff(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, models.RoleStaff, h.services.AuthService.LoginStaff)
}

func (h *Handler) loginAdmin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, models.RoleAdmin, h.services.AuthService.LoginAdmin)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, role models.Role, fn loginFunc) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Str("role", role.String()).Msg("invalid login request")
		writeError(w, r, err)
		return
	}

	resp, err := fn(r.Context(), req)
	if err != nil {
		log.Err(err).Str("role", role.String()).Msg("login failed")
		writeError(w, r, err)
		return
	}

	event := log.Info().Str("role", role.String())
	if resp.User != nil {
		event = event.Str("principal_id", resp.User.PrincipalID())
	}
	event.Msg("logged in")
	writeSession(w, resp, http.StatusOK)
}

func (h *Handler) sendOTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendOTPRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid send-otp request")
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.SendSignupOTP(r.Context(), req.Email); err != nil {
		log.Err(err).Msg("signup otp was not sent")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgOTPSent}, http.StatusOK)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerifyOTPRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid verify-otp request")
		writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.VerifySignupOTP(r.Context(), req.Email, req.OTP); err != nil {
		log.Err(err).Msg("otp verification failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEmailVerified}, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := h.decode(w, r, &req); err != nil {
		log.Err(err).Msg("invalid signup request")
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("signup failed")
		writeError(w, r, err)
		return
	}

	writeSession(w, resp, http.StatusCreated)
}

// session describes the caller so a client can keep one {token, role} pair.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{ID: p.ID, Role: p.Role}, http.StatusOK)
}

// writeSession sends the login response and repeats the token in the
// Authorization header.
func writeSession(w http.ResponseWriter, resp models.LoginResponse, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", resp.Token))
	utils.WriteJSON(w, resp, status)
}
