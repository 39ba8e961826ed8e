// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResponseWriter_RecordsReply checks that the decorator sees what the
// handlers of this package write: JSON error replies and JSON payloads.
func TestResponseWriter_RecordsReply(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter, r *http.Request)
		wantStatus int
	}{
		{
			name:       "unauthorized",
			write:      func(w http.ResponseWriter, r *http.Request) { writeError(w, r, service.ErrInvalidToken) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "forbidden",
			write:      func(w http.ResponseWriter, r *http.Request) { writeError(w, r, service.ErrForbidden) },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "store unavailable",
			write:      func(w http.ResponseWriter, r *http.Request) { writeError(w, r, service.ErrStoreUnavailable) },
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "created",
			write: func(w http.ResponseWriter, _ *http.Request) {
				utils.WriteJSON(w, models.MessageResponse{Message: "created"}, http.StatusCreated)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "body without header",
			write:      func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(livenessText)) },
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			tt.write(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, rec.Body.Len(), w.size)
		})
	}
}

// The timeout middleware writes 504 once the handler returns past its
// deadline. A reply already sent must keep its status.
func TestResponseWriter_LateHeaderAfterReply(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	writeError(w, httptest.NewRequest(http.MethodGet, "/api/session", nil), service.ErrStoreUnavailable)
	w.WriteHeader(http.StatusGatewayTimeout)

	assert.Equal(t, http.StatusServiceUnavailable, w.status)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "service temporarily unavailable", errorMessage(t, rec))
}

func TestResponseWriter_Untouched(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rec.Flushed)
}

// TestAccessLog_Rejections runs rejected requests through the router and
// checks the status the access log records against the one sent.
func TestAccessLog_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantReason string
		wantID     string
		wantRole   string
	}{
		{
			name:       "no token",
			path:       "/api/session",
			wantStatus: http.StatusUnauthorized,
			wantReason: "no token",
		},
		{
			name:       "unknown token",
			path:       "/api/session",
			token:      "stale",
			wantStatus: http.StatusUnauthorized,
			wantReason: "invalid token",
		},
		{
			name:       "student on admin route",
			path:       "/api/admin/users",
			token:      studentToken,
			wantStatus: http.StatusForbidden,
			wantReason: "role not permitted",
			wantID:     testStudent.ID,
			wantRole:   models.RoleStudent.String(),
		},
		{
			name:       "staff on admin route",
			path:       "/api/admin/events",
			token:      staffToken,
			wantStatus: http.StatusForbidden,
			wantReason: "role not permitted",
			wantID:     testStaff.ID,
			wantRole:   models.RoleStaff.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			h := newLoggedHandler(newTestServices(), &logs)

			rec := do(t, h, http.MethodGet, tt.path, tt.token, nil)
			require.Equal(t, tt.wantStatus, rec.Code)

			entries := logEntries(t, &logs)
			access := findAccessLog(entries)
			require.NotNil(t, access, "log: %s", logs.String())
			assert.Equal(t, float64(tt.wantStatus), access["status"])
			assert.Equal(t, "warn", access["level"])
			assert.Equal(t, float64(rec.Body.Len()), access["size"])
			assert.NotEmpty(t, access["trace_id"])

			rejected := findLog(entries, "request rejected")
			require.NotNil(t, rejected)
			assert.Equal(t, tt.wantReason, rejected["reason"])
			assert.Equal(t, access["trace_id"], rejected["trace_id"])
			if tt.wantID == "" {
				assert.NotContains(t, rejected, "principal_id")
				assert.NotContains(t, rejected, "principal_role")
				return
			}
			assert.Equal(t, tt.wantID, rejected["principal_id"])
			assert.Equal(t, tt.wantRole, rejected["principal_role"])
		})
	}
}

// Handlers behind authenticate log through a logger tagged by withPrincipal.
func TestWithPrincipal_TagsRequestLogger(t *testing.T) {
	tests := []struct {
		name string
		p    models.Principal
	}{
		{name: "student", p: models.NewPrincipal(testStudent)},
		{name: "staff", p: models.NewPrincipal(testStaff)},
		{name: "admin", p: models.NewPrincipal(testAdmin)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := withPrincipal(makeRequest(http.MethodGet, "/api/users/me", &buf), tt.p)

			got, err := principal(r)
			require.NoError(t, err)
			assert.Equal(t, tt.p, got)

			writeError(httptest.NewRecorder(), r, service.ErrStoreUnavailable)

			entry := findLog(logEntries(t, &buf), "request failed")
			require.NotNil(t, entry)
			assert.Equal(t, tt.p.ID, entry["principal_id"])
			assert.Equal(t, tt.p.Role.String(), entry["principal_role"])
		})
	}
}
