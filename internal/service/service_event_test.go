// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/mock"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEventID = "0190b6b0-7c5e-7b3a-9d2e-1f2a3b4c5d71"

type eventFixture struct {
	svc        *eventService
	repo       *mock.MockEventRepository
	recipients *mock.MockRecipientRepository
	mail       *mock.MockMailQueue
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &eventFixture{
		repo:       mock.NewMockEventRepository(ctrl),
		recipients: mock.NewMockRecipientRepository(ctrl),
		mail:       mock.NewMockMailQueue(ctrl),
	}
	f.svc = NewEventService(f.repo, f.recipients, f.mail, logger.Nop()).(*eventService)
	f.svc.ids = fixedID(testEventID)
	return f
}

// expectAnnouncement expects one announcement batch and returns the queued
// message through got.
func (f *eventFixture) expectAnnouncement(got *models.Email) {
	f.recipients.EXPECT().ListRecipients(gomock.Any()).Return([]string{"asha@bvc.edu", "rao@bvc.edu"}, nil)
	f.mail.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email models.Email) error {
			*got = email
			return nil
		})
}

func TestEventService_Create_Announces(t *testing.T) {
	f := newEventFixture(t)
	f.repo.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Event) (models.Event, error) {
			assert.Equal(t, testEventID, e.ID)
			assert.Equal(t, "Tech Fest", e.Title)
			assert.Equal(t, "https://cdn.bvc.edu/banner.png", e.Banner)
			return e, nil
		})
	var announced models.Email
	f.expectAnnouncement(&announced)

	got, err := f.svc.CreateEvent(context.Background(), models.EventRequest{
		Title: " Tech Fest ", Date: "2026-11-20", Time: "10:00", Banner: "https://cdn.bvc.edu/banner.png",
	})

	require.NoError(t, err)
	assert.Equal(t, testEventID, got.ID)
	assert.Equal(t, "New Event: Tech Fest", announced.Subject)
	assert.Equal(t, []string{"asha@bvc.edu", "rao@bvc.edu"}, announced.Bcc)
	assert.Contains(t, announced.HTML, "2026-11-20")
	assert.Contains(t, announced.HTML, defaultEventCategory)
}

func TestEventService_Create_AnnouncementFailureKeepsEvent(t *testing.T) {
	f := newEventFixture(t)
	f.repo.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(models.Event{ID: testEventID, Title: "Fest"}, nil)
	f.recipients.EXPECT().ListRecipients(gomock.Any()).Return(nil, store.ErrDatabaseUnavailable)

	got, err := f.svc.CreateEvent(context.Background(), models.EventRequest{Title: "Fest", Date: "2026-11-20"})

	require.NoError(t, err)
	assert.Equal(t, testEventID, got.ID)
}

func TestEventService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     models.EventRequest
		repoErr error
		wantErr error
	}{
		{name: "blank title", req: models.EventRequest{Title: "  ", Date: "2026-11-20"}, wantErr: ErrInvalidDataProvided},
		{name: "no date", req: models.EventRequest{Title: "Fest"}, wantErr: ErrInvalidDataProvided},
		{name: "store down", req: models.EventRequest{Title: "Fest", Date: "2026-11-20"}, repoErr: store.ErrDatabaseUnavailable, wantErr: ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEventFixture(t)
			if tt.repoErr != nil {
				f.repo.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(models.Event{}, tt.repoErr)
			}

			_, err := f.svc.CreateEvent(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEventService_Update_AnnouncesChange(t *testing.T) {
	f := newEventFixture(t)
	f.repo.EXPECT().UpdateEvent(gomock.Any(), testEventID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u models.EventUpdate) (models.Event, error) {
			assert.Nil(t, u.Title, "blank title is ignored")
			require.NotNil(t, u.Location)
			assert.Equal(t, "Auditorium", *u.Location)
			return models.Event{ID: testEventID, Title: "Tech Fest", Date: "2026-11-20", Location: "Auditorium"}, nil
		})
	var announced models.Email
	f.expectAnnouncement(&announced)

	_, err := f.svc.UpdateEvent(context.Background(), testEventID, models.EventUpdateRequest{
		Title:    strPtr(""),
		Location: strPtr("Auditorium"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated Event: Tech Fest", announced.Subject)
	assert.Contains(t, announced.HTML, "Auditorium")
}

func TestEventService_Update_MissingSendsNothing(t *testing.T) {
	f := newEventFixture(t)
	f.repo.EXPECT().UpdateEvent(gomock.Any(), "missing", gomock.Any()).Return(models.Event{}, store.ErrNotFound)

	_, err := f.svc.UpdateEvent(context.Background(), "missing", models.EventUpdateRequest{Location: strPtr("x")})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_ReadsAndDelete(t *testing.T) {
	f := newEventFixture(t)
	f.repo.EXPECT().ListEvents(gomock.Any(), models.EventOrderLatest).Return([]models.Event{{ID: testEventID}}, nil)
	f.repo.EXPECT().FindEventByID(gomock.Any(), "missing").Return(models.Event{}, store.ErrNotFound)
	f.repo.EXPECT().DeleteEvent(gomock.Any(), testEventID).Return(nil)

	events, err := f.svc.ListEvents(context.Background(), models.EventOrderLatest)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = f.svc.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, f.svc.DeleteEvent(context.Background(), testEventID))
}

func TestEventAnnouncement_EscapesContent(t *testing.T) {
	email, err := eventAnnouncement(models.Event{Title: "<script>x</script>", Date: "2026-11-20", Category: "Sports"}, false)

	require.NoError(t, err)
	assert.NotContains(t, email.HTML, "<script>")
	assert.Contains(t, email.HTML, "Sports")
	assert.Empty(t, email.To)
}
