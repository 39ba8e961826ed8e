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
	"go.uber.org/mock/gomock"
)

func newAdminServiceForTest(t *testing.T) (*adminService, *mock.MockAdminRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAdminRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAdminService(repo, hasher, logger.Nop()).(*adminService)
	svc.ids = fixedID(testAdminID)
	return svc, repo, hasher
}

func TestEnsureSeedAdmin_NotConfigured(t *testing.T) {
	svc, _, _ := newAdminServiceForTest(t)

	assert.NoError(t, svc.EnsureSeedAdmin(context.Background(), "", ""))
	assert.NoError(t, svc.EnsureSeedAdmin(context.Background(), "admin@bvc.edu", ""))
}

func TestEnsureSeedAdmin_CreatesMissing(t *testing.T) {
	svc, repo, hasher := newAdminServiceForTest(t)
	repo.EXPECT().FindAdminByEmail(gomock.Any(), "admin@bvc.edu").Return(models.Admin{}, store.ErrNotFound)
	hasher.EXPECT().Hash("admin123").Return("hash", nil)
	repo.EXPECT().UpsertAdmin(gomock.Any(), models.Admin{ID: testAdminID, Email: "admin@bvc.edu", PasswordHash: "hash"}).
		Return(models.Admin{ID: testAdminID}, nil)

	assert.NoError(t, svc.EnsureSeedAdmin(context.Background(), "Admin@BVC.edu", "admin123"))
}

func TestEnsureSeedAdmin_UpToDate(t *testing.T) {
	svc, repo, hasher := newAdminServiceForTest(t)
	repo.EXPECT().FindAdminByEmail(gomock.Any(), "admin@bvc.edu").
		Return(models.Admin{ID: "existing", Email: "admin@bvc.edu", PasswordHash: "hash"}, nil)
	hasher.EXPECT().Compare("admin123", "hash").Return(true)

	assert.NoError(t, svc.EnsureSeedAdmin(context.Background(), "admin@bvc.edu", "admin123"))
}

func TestEnsureSeedAdmin_RotatesPasswordKeepsID(t *testing.T) {
	svc, repo, hasher := newAdminServiceForTest(t)
	repo.EXPECT().FindAdminByEmail(gomock.Any(), "admin@bvc.edu").
		Return(models.Admin{ID: "existing", Email: "admin@bvc.edu", PasswordHash: "old"}, nil)
	hasher.EXPECT().Compare("admin456", "old").Return(false)
	hasher.EXPECT().Hash("admin456").Return("new", nil)
	repo.EXPECT().UpsertAdmin(gomock.Any(), models.Admin{ID: "existing", Email: "admin@bvc.edu", PasswordHash: "new"}).
		Return(models.Admin{ID: "existing"}, nil)

	assert.NoError(t, svc.EnsureSeedAdmin(context.Background(), "admin@bvc.edu", "admin456"))
}

func TestEnsureSeedAdmin_StoreDown(t *testing.T) {
	svc, repo, _ := newAdminServiceForTest(t)
	repo.EXPECT().FindAdminByEmail(gomock.Any(), "admin@bvc.edu").Return(models.Admin{}, store.ErrDatabaseUnavailable)

	err := svc.EnsureSeedAdmin(context.Background(), "admin@bvc.edu", "admin123")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
