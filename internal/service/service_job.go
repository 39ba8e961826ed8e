// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/store"
	"github.com/MKhiriev/bvc-digitalhub/internal/workers"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

type jobService struct {
	jobs     store.JobRepository
	announce *announcer
	mail     workers.MailQueue
	ids      idGenerator

	logger *logger.Logger
}

// NewJobService constructs a [JobService]. Announcements go to the
// addresses listed by recipients; confirmations go to the applicant.
func NewJobService(jobs store.JobRepository, recipients store.RecipientRepository, mail workers.MailQueue,
	logger *logger.Logger) JobService {
	return &jobService{
		jobs:     jobs,
		announce: newAnnouncer(recipients, mail),
		mail:     mail,
		ids:      newIDGenerator(),
		logger:   logger,
	}
}

func (s *jobService) CreateJob(ctx context.Context, req models.JobRequest) (models.Job, error) {
	log := logger.FromContext(ctx)

	title := strings.TrimSpace(req.Title)
	company := strings.TrimSpace(req.Company)
	if title == "" || company == "" {
		return models.Job{}, ErrInvalidDataProvided
	}

	job, err := s.jobs.CreateJob(ctx, models.Job{
		ID:          s.ids.Generate(),
		Title:       title,
		Company:     company,
		Location:    req.Location,
		Type:        req.Type,
		Salary:      req.Salary,
		Deadline:    req.Deadline,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		log.Err(err).Str("func", "*jobService.CreateJob").Msg("error creating job")
		return models.Job{}, mapStoreError(err)
	}

	log.Info().Str("func", "*jobService.CreateJob").Str("job_id", job.ID).Msg("job created")
	s.broadcast(ctx, job, false)
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (models.Job, error) {
	job, err := s.jobs.FindJobByID(ctx, id)
	if err != nil {
		return models.Job{}, mapStoreError(err)
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id string, req models.JobUpdateRequest) (models.Job, error) {
	log := logger.FromContext(ctx)

	update := models.JobUpdate{
		Title:       nonEmpty(req.Title),
		Company:     nonEmpty(req.Company),
		Location:    req.Location,
		Type:        req.Type,
		Salary:      req.Salary,
		Deadline:    req.Deadline,
		Description: req.Description,
		Link:        req.Link,
	}

	job, err := s.jobs.UpdateJob(ctx, id, update)
	if err != nil {
		log.Err(err).Str("func", "*jobService.UpdateJob").Str("job_id", id).Msg("error updating job")
		return models.Job{}, mapStoreError(err)
	}

	log.Info().Str("func", "*jobService.UpdateJob").Str("job_id", id).Msg("job updated")
	s.broadcast(ctx, job, true)
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobs.DeleteJob(ctx, id); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("func", "*jobService.DeleteJob").Str("job_id", id).Msg("job deleted")
	return nil
}

// Apply implements [JobService]. Unlike announcements, a confirmation that
// cannot be queued fails the call.
func (s *jobService) Apply(ctx context.Context, id string, req models.JobApplicationRequest) error {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Name) == "" {
		return ErrInvalidDataProvided
	}
	req.Email = email

	job, err := s.jobs.FindJobByID(ctx, id)
	if err != nil {
		return mapStoreError(err)
	}

	message, err := jobApplicationEmail(job, req)
	if err != nil {
		return err
	}
	if err = s.mail.Enqueue(ctx, message); err != nil {
		return fmt.Errorf("%w: %w", ErrMailUnavailable, err)
	}

	log.Info().Str("func", "*jobService.Apply").Str("job_id", id).Str("email", email).Msg("job application confirmation queued")
	return nil
}

func (s *jobService) broadcast(ctx context.Context, job models.Job, updated bool) {
	message, err := jobAnnouncement(job, updated)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jobService.broadcast").Str("job_id", job.ID).
			Msg("error rendering job announcement")
		return
	}
	s.announce.announce(ctx, message)
}
