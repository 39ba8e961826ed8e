// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/config"
	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every persistence component used by the service layer.
type Storages struct {
	StudentRepository   StudentRepository
	StaffRepository     StaffRepository
	AdminRepository     AdminRepository
	EventRepository     EventRepository
	JobRepository       JobRepository
	RecipientRepository RecipientRepository
	OTPStore            OTPStore

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL and Redis, applies migrations, and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	redisClient, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		StudentRepository:   NewStudentRepository(db, log),
		StaffRepository:     NewStaffRepository(db, log),
		AdminRepository:     NewAdminRepository(db, log),
		EventRepository:     NewEventRepository(db, log),
		JobRepository:       NewJobRepository(db, log),
		RecipientRepository: NewRecipientRepository(db, log),
		OTPStore:            NewRedisOTPStore(redisClient, log),
		db:                  db,
		redis:               redisClient,
	}, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
