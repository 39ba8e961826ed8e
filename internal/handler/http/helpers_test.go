// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/service"
	"github.com/MKhiriev/bvc-digitalhub/internal/validators"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements one service interface; a nil function field returns
// zero values.

type mockResolver struct {
	resolveFn func(ctx context.Context, token string) (models.Principal, error)
}

func (m *mockResolver) Resolve(ctx context.Context, token string) (models.Principal, error) {
	if m.resolveFn == nil {
		return models.Principal{}, service.ErrInvalidToken
	}
	return m.resolveFn(ctx, token)
}

type mockAuthService struct {
	loginStudentFn func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	loginStaffFn   func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	loginAdminFn   func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	sendOTPFn      func(ctx context.Context, email string) error
	verifyOTPFn    func(ctx context.Context, email, code string) error
	signupFn       func(ctx context.Context, req models.SignupRequest) (models.LoginResponse, error)
}

func (m *mockAuthService) LoginStudent(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if m.loginStudentFn == nil {
		return models.LoginResponse{}, nil
	}
	return m.loginStudentFn(ctx, req)
}

func (m *mockAuthService) LoginStaff(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if m.loginStaffFn == nil {
		return models.LoginResponse{}, nil
	}
	return m.loginStaffFn(ctx, req)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if m.loginAdminFn == nil {
		return models.LoginResponse{}, nil
	}
	return m.loginAdminFn(ctx, req)
}

func (m *mockAuthService) SendSignupOTP(ctx context.Context, email string) error {
	if m.sendOTPFn == nil {
		return nil
	}
	return m.sendOTPFn(ctx, email)
}

func (m *mockAuthService) VerifySignupOTP(ctx context.Context, email, code string) error {
	if m.verifyOTPFn == nil {
		return nil
	}
	return m.verifyOTPFn(ctx, email, code)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.LoginResponse, error) {
	if m.signupFn == nil {
		return models.LoginResponse{}, nil
	}
	return m.signupFn(ctx, req)
}

type mockStudentService struct {
	getFn       func(ctx context.Context, id string) (models.Student, error)
	listFn      func(ctx context.Context) ([]models.Student, error)
	updateFn    func(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error)
	updateOwnFn func(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error)
	deleteFn    func(ctx context.Context, id string) error
}

func (m *mockStudentService) GetStudent(ctx context.Context, id string) (models.Student, error) {
	if m.getFn == nil {
		return models.Student{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockStudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockStudentService) UpdateStudent(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error) {
	if m.updateFn == nil {
		return models.Student{}, nil
	}
	return m.updateFn(ctx, id, req)
}

func (m *mockStudentService) UpdateOwnProfile(ctx context.Context, id string, req models.StudentProfileRequest) (models.Student, error) {
	if m.updateOwnFn == nil {
		return models.Student{}, nil
	}
	return m.updateOwnFn(ctx, id, req)
}

func (m *mockStudentService) DeleteStudent(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockStaffService struct {
	createFn    func(ctx context.Context, req models.CreateStaffRequest) (models.Staff, error)
	getFn       func(ctx context.Context, id string) (models.Staff, error)
	listFn      func(ctx context.Context, order models.StaffOrder) ([]models.Staff, error)
	updateFn    func(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error)
	updateOwnFn func(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error)
	deleteFn    func(ctx context.Context, id string) error
}

func (m *mockStaffService) CreateStaff(ctx context.Context, req models.CreateStaffRequest) (models.Staff, error) {
	if m.createFn == nil {
		return models.Staff{}, nil
	}
	return m.createFn(ctx, req)
}

func (m *mockStaffService) GetStaff(ctx context.Context, id string) (models.Staff, error) {
	if m.getFn == nil {
		return models.Staff{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockStaffService) ListStaff(ctx context.Context, order models.StaffOrder) ([]models.Staff, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, order)
}

func (m *mockStaffService) UpdateStaff(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error) {
	if m.updateFn == nil {
		return models.Staff{}, nil
	}
	return m.updateFn(ctx, id, req)
}

func (m *mockStaffService) UpdateOwnProfile(ctx context.Context, id string, req models.StaffProfileRequest) (models.Staff, error) {
	if m.updateOwnFn == nil {
		return models.Staff{}, nil
	}
	return m.updateOwnFn(ctx, id, req)
}

func (m *mockStaffService) DeleteStaff(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockEventService struct {
	createFn func(ctx context.Context, req models.EventRequest) (models.Event, error)
	getFn    func(ctx context.Context, id string) (models.Event, error)
	listFn   func(ctx context.Context, order models.EventOrder) ([]models.Event, error)
	updateFn func(ctx context.Context, id string, req models.EventUpdateRequest) (models.Event, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockEventService) CreateEvent(ctx context.Context, req models.EventRequest) (models.Event, error) {
	if m.createFn == nil {
		return models.Event{}, nil
	}
	return m.createFn(ctx, req)
}

func (m *mockEventService) GetEvent(ctx context.Context, id string) (models.Event, error) {
	if m.getFn == nil {
		return models.Event{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockEventService) ListEvents(ctx context.Context, order models.EventOrder) ([]models.Event, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, order)
}

func (m *mockEventService) UpdateEvent(ctx context.Context, id string, req models.EventUpdateRequest) (models.Event, error) {
	if m.updateFn == nil {
		return models.Event{}, nil
	}
	return m.updateFn(ctx, id, req)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockJobService struct {
	createFn func(ctx context.Context, req models.JobRequest) (models.Job, error)
	getFn    func(ctx context.Context, id string) (models.Job, error)
	listFn   func(ctx context.Context) ([]models.Job, error)
	updateFn func(ctx context.Context, id string, req models.JobUpdateRequest) (models.Job, error)
	deleteFn func(ctx context.Context, id string) error
	applyFn  func(ctx context.Context, id string, req models.JobApplicationRequest) error
}

func (m *mockJobService) CreateJob(ctx context.Context, req models.JobRequest) (models.Job, error) {
	if m.createFn == nil {
		return models.Job{}, nil
	}
	return m.createFn(ctx, req)
}

func (m *mockJobService) GetJob(ctx context.Context, id string) (models.Job, error) {
	if m.getFn == nil {
		return models.Job{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockJobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockJobService) UpdateJob(ctx context.Context, id string, req models.JobUpdateRequest) (models.Job, error) {
	if m.updateFn == nil {
		return models.Job{}, nil
	}
	return m.updateFn(ctx, id, req)
}

func (m *mockJobService) DeleteJob(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockJobService) Apply(ctx context.Context, id string, req models.JobApplicationRequest) error {
	if m.applyFn == nil {
		return nil
	}
	return m.applyFn(ctx, id, req)
}

type mockInfoService struct {
	statsFn func(ctx context.Context) (models.Stats, error)
}

func (m *mockInfoService) Stats(ctx context.Context) (models.Stats, error) {
	if m.statsFn == nil {
		return models.Stats{}, nil
	}
	return m.statsFn(ctx)
}

type mockAppInfoService struct {
	info models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppInfo(context.Context) models.AppBuildInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Handler builders
// ─────────────────────────────────────────────

const (
	studentToken = "student-token"
	staffToken   = "staff-token"
	adminToken   = "admin-token"
)

var (
	testStudent = models.Student{ID: "0b7c7f9e-5f5e-4a43-9d38-4b1b2b3c6e01", Name: "Asha", Email: "asha@bvc.edu"}
	testStaff   = models.Staff{ID: "0b7c7f9e-5f5e-4a43-9d38-4b1b2b3c6e02", Name: "Dr. Rao", Email: "rao@bvc.edu"}
	testAdmin   = models.Admin{ID: "0b7c7f9e-5f5e-4a43-9d38-4b1b2b3c6e03", Email: "admin@bvc.edu"}
)

// tokenResolver resolves the three fixed test tokens to their principals.
func tokenResolver() *mockResolver {
	return &mockResolver{resolveFn: func(_ context.Context, token string) (models.Principal, error) {
		switch token {
		case studentToken:
			return models.NewPrincipal(testStudent), nil
		case staffToken:
			return models.NewPrincipal(testStaff), nil
		case adminToken:
			return models.NewPrincipal(testAdmin), nil
		default:
			return models.Principal{}, service.ErrInvalidToken
		}
	}}
}

// newTestServices returns services whose every member is a zero fake and
// whose resolver knows the fixed test tokens.
func newTestServices() *service.Services {
	return &service.Services{
		PrincipalResolver: tokenResolver(),
		AuthService:       &mockAuthService{},
		StudentService:    &mockStudentService{},
		StaffService:      &mockStaffService{},
		EventService:      &mockEventService{},
		JobService:        &mockJobService{},
		InfoService:       &mockInfoService{},
		AppInfoService:    &mockAppInfoService{info: models.NewAppBuildInfo("test", "", "")},
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, validators.NewRequestValidator(), config.Server{HTTPAddress: ":0"}, logger.Nop())
}

// newLoggedHandler is newTestHandler with JSON log output captured in buf.
func newLoggedHandler(svcs *service.Services, buf *bytes.Buffer) *Handler {
	return newLoggedHandlerWithConfig(svcs, buf, config.Server{HTTPAddress: ":0"})
}

func newLoggedHandlerWithConfig(svcs *service.Services, buf *bytes.Buffer, cfg config.Server) *Handler {
	l := &logger.Logger{Logger: zerolog.New(buf)}
	return NewHandler(svcs, validators.NewRequestValidator(), cfg, l)
}

// ─────────────────────────────────────────────
// Request helpers
// ─────────────────────────────────────────────

// do sends a request through the full router. token may be empty.
func do(t *testing.T, h *Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorBody](t, rec).Message
}

// logEntries splits captured JSON log lines.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// findLog returns the first entry with the given message.
func findLog(entries []map[string]any, message string) map[string]any {
	for _, entry := range entries {
		if entry["message"] == message {
			return entry
		}
	}
	return nil
}

// findAccessLog returns the entry written by withLogging.
func findAccessLog(entries []map[string]any) map[string]any {
	for _, entry := range entries {
		if _, ok := entry["duration"]; ok {
			return entry
		}
	}
	return nil
}
