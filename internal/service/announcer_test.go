// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/bvc-digitalhub/internal/mock"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAnnouncerForTest(t *testing.T) (*announcer, *mock.MockRecipientRepository, *mock.MockMailQueue) {
	t.Helper()
	ctrl := gomock.NewController(t)
	recipients := mock.NewMockRecipientRepository(ctrl)
	mail := mock.NewMockMailQueue(ctrl)
	return newAnnouncer(recipients, mail), recipients, mail
}

func addresses(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("user%03d@bvc.edu", i)
	}
	return out
}

func TestAnnouncer_BatchesRecipients(t *testing.T) {
	a, recipients, mail := newAnnouncerForTest(t)
	recipients.EXPECT().ListRecipients(gomock.Any()).Return(addresses(announcementBatchSize*2+3), nil)

	var batches [][]string
	mail.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, email models.Email) error {
			assert.Empty(t, email.To)
			assert.Equal(t, "New Event: Fest", email.Subject)
			batches = append(batches, email.Bcc)
			return nil
		})

	a.announce(context.Background(), models.Email{To: "ignored@bvc.edu", Subject: "New Event: Fest", HTML: "<p>x</p>"})

	require.Len(t, batches, 3)
	assert.Len(t, batches[0], announcementBatchSize)
	assert.Len(t, batches[1], announcementBatchSize)
	assert.Equal(t, []string{"user100@bvc.edu", "user101@bvc.edu", "user102@bvc.edu"}, batches[2])
}

func TestAnnouncer_DeduplicatesAddresses(t *testing.T) {
	a, recipients, mail := newAnnouncerForTest(t)
	recipients.EXPECT().ListRecipients(gomock.Any()).
		Return([]string{"asha@bvc.edu", "Asha@BVC.edu ", "", "rao@bvc.edu"}, nil)
	mail.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email models.Email) error {
			assert.Equal(t, []string{"asha@bvc.edu", "rao@bvc.edu"}, email.Bcc)
			return nil
		})

	a.announce(context.Background(), models.Email{Subject: "s"})
}

func TestAnnouncer_NoRecipientsQueuesNothing(t *testing.T) {
	a, recipients, _ := newAnnouncerForTest(t)
	recipients.EXPECT().ListRecipients(gomock.Any()).Return([]string{}, nil)

	a.announce(context.Background(), models.Email{Subject: "s"})
}

func TestAnnouncer_StopsAtFirstQueueFailure(t *testing.T) {
	a, recipients, mail := newAnnouncerForTest(t)
	recipients.EXPECT().ListRecipients(gomock.Any()).Return(addresses(announcementBatchSize*3), nil)
	gomock.InOrder(
		mail.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil),
		mail.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(workers.ErrMailQueueFull),
	)

	a.announce(context.Background(), models.Email{Subject: "s"})
}

func TestAnnouncer_RecipientLookupFailure(t *testing.T) {
	a, recipients, _ := newAnnouncerForTest(t)
	recipients.EXPECT().ListRecipients(gomock.Any()).Return(nil, store.ErrDatabaseUnavailable)

	// no mail is expected
	a.announce(context.Background(), models.Email{Subject: "s"})
}
