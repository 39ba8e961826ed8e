// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithBuildInfo(info models.AppBuildInfo) *Handler {
	svcs := newTestServices()
	svcs.AppInfoService = &mockAppInfoService{info: info}
	return newTestHandler(svcs)
}

func TestGetServerVersion_WritesBuildInfo(t *testing.T) {
	want := models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc1234")
	h := newHandlerWithBuildInfo(want)

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, want, decodeBody[models.AppBuildInfo](t, rec))
}

func TestGetServerVersion_UnsetValues(t *testing.T) {
	h := newHandlerWithBuildInfo(models.NewAppBuildInfo("", "", ""))

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.JSONEq(t, `{"version":"N/A","buildDate":"N/A","buildCommit":"N/A"}`, rec.Body.String())
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newHandlerWithBuildInfo(models.NewAppBuildInfo("3.0.0", "", ""))

	tests := []struct {
		name  string
		token string
	}{
		{name: "anonymous"},
		{name: "with a valid token", token: studentToken},
		{name: "with a stale token", token: "stale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/api/version", tt.token, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "3.0.0", decodeBody[models.AppBuildInfo](t, rec).Version)
		})
	}
}

func TestLiveness(t *testing.T) {
	h := newTestHandler(newTestServices())

	rec := do(t, h, http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, livenessText, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
