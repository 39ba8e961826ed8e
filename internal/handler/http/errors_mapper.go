// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/app"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/internal/validators"
)

type errorReply struct {
	status  int
	message string
}

// errorStatusMap is consulted in order; the first sentinel matched with
// [errors.Is] decides the response.
var errorStatusMap = []struct {
	target error
	reply  errorReply
}{
	{ErrEmptyAuthorizationHeader, errorReply{http.StatusUnauthorized, app.MsgUnauthorized}},
	{ErrInvalidAuthorizationHeader, errorReply{http.StatusUnauthorized, app.MsgUnauthorized}},
	{errNoPrincipal, errorReply{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrInvalidToken, errorReply{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrPrincipalNotFound, errorReply{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrForbidden, errorReply{http.StatusForbidden, app.MsgForbidden}},
	{service.ErrStoreUnavailable, errorReply{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
	{service.ErrMailUnavailable, errorReply{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},

	{service.ErrInvalidCredentials, errorReply{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrInvalidDataProvided, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrValidation, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{utils.ErrEmptyBody, errorReply{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrEmailNotVerified, errorReply{http.StatusBadRequest, app.MsgEmailNotVerified}},
	{service.ErrInvalidOTP, errorReply{http.StatusBadRequest, app.MsgInvalidOTP}},
	{service.ErrNothingToUpdate, errorReply{http.StatusBadRequest, app.MsgNothingToUpdate}},
	{service.ErrNotFound, errorReply{http.StatusNotFound, app.MsgNotFound}},
	{service.ErrEmailAlreadyRegistered, errorReply{http.StatusConflict, app.MsgEmailAlreadyRegistered}},
}

func replyFromError(err error) errorReply {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return replyFromError(err).status
}

// errorBody is the JSON body of every error response. Fields is only set
// for validation failures.
type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// writeError writes the generic reply for err. 5xx causes are logged here;
// everything else is logged by the caller with its own context.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	reply := replyFromError(err)

	body := errorBody{Message: reply.message}
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		body.Fields = validationErr.Fields
	}

	if reply.status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("route", r.URL.Path).Int("status", reply.status).Msg("request failed")
	}

	utils.WriteJSON(w, body, reply.status)
}
