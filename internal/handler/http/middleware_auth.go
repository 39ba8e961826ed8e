// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// authenticate enforces bearer token authentication.
//
// The token from the "Authorization" header is resolved through
// [service.PrincipalResolver]; on success the principal is stored in the
// request context (see [utils.GetPrincipalFromContext]) and its id is added
// to the request logger.
//
// Every rejection is answered with the same generic 401 body; the log entry
// carries the distinct reason:
//   - "no token": the header is absent.
//   - "malformed header": the header is not "Bearer <token>".
//   - "invalid token": bad signature, expired, wrong algorithm or garbage.
//   - "principal not found": the token is valid but its account is gone.
//
// A store failure during resolution is answered with 503.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.resolvePrincipal(r)
		if err != nil {
			logAuthFailure(r, err)
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, withPrincipal(r, p))
	})
}

// optionalAuth resolves the bearer token when one is sent and lets the
// request through anonymously otherwise. A token that cannot be resolved
// is ignored as well; only an unavailable store fails the request.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.resolvePrincipal(r)
		switch {
		case err == nil:
			r = withPrincipal(r, p)
		case errors.Is(err, service.ErrStoreUnavailable):
			logAuthFailure(r, err)
			writeError(w, r, err)
			return
		case !errors.Is(err, ErrEmptyAuthorizationHeader):
			logger.FromRequest(r).Debug().Err(err).Str("route", r.URL.Path).
				Msg("ignoring unusable token on public route")
		}

		next.ServeHTTP(w, r)
	})
}

// requireRole returns a middleware admitting only principals with one of
// roles. It must run after authenticate and never touches storage.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := principal(r)
			if err == nil {
				err = service.RequireRole(p, roles...)
			}
			if err != nil {
				logAuthFailure(r, err)
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) resolvePrincipal(r *http.Request) (models.Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return models.Principal{}, ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.Principal{}, ErrInvalidAuthorizationHeader
	}

	return h.services.PrincipalResolver.Resolve(r.Context(), token)
}

// withPrincipal stores p in the request context and tags the request logger
// with its id and role.
func withPrincipal(r *http.Request, p models.Principal) *http.Request {
	l := logger.FromRequest(r).With().
		Str("principal_id", p.ID).
		Str("principal_role", p.Role.String()).
		Logger()

	ctx := utils.WithPrincipal(r.Context(), p)
	return r.WithContext(l.WithContext(ctx))
}

// logAuthFailure records why a request was turned away. Once a principal is
// resolved the request logger already carries its id.
func logAuthFailure(r *http.Request, err error) {
	log := logger.FromRequest(r)

	event := log.Warn()
	if errors.Is(err, service.ErrStoreUnavailable) {
		event = log.Error()
	}

	event.Err(err).
		Str("route", r.URL.Path).
		Str("reason", authFailureReason(err)).
		Msg("request rejected")
}

func authFailureReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyAuthorizationHeader):
		return "no token"
	case errors.Is(err, ErrInvalidAuthorizationHeader):
		return "malformed header"
	case errors.Is(err, service.ErrInvalidToken):
		return "invalid token"
	case errors.Is(err, service.ErrPrincipalNotFound):
		return "principal not found"
	case errors.Is(err, service.ErrForbidden):
		return "role not permitted"
	case errors.Is(err, service.ErrStoreUnavailable):
		return "store unavailable"
	case errors.Is(err, errNoPrincipal):
		return "no principal"
	default:
		return "unknown"
	}
}
