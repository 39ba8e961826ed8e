// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bvc-digitalhub/internal/logger"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
)

// jobRepository is the PostgreSQL-backed implementation of [JobRepository]
// over the "jobs" table.
type jobRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewJobRepository constructs a [JobRepository] backed by db.
func NewJobRepository(db *DB, logger *logger.Logger) JobRepository {
	logger.Debug().Msg("creating job repository")
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

func (r *jobRepository) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createJob,
		job.ID, job.Title, job.Company, job.Location, job.Type,
		job.Salary, job.Deadline, job.Description, job.Link,
	)

	created, err := scanJob(row)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*jobRepository.CreateJob").Msg("error creating job")
		return models.Job{}, err
	}

	return created, nil
}

func (r *jobRepository) FindJobByID(ctx context.Context, id string) (models.Job, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Job{}, ErrNotFound
	}

	job, err := scanJob(r.db.QueryRowContext(ctx, findJobByID, id))
	if err != nil {
		err = r.db.mapError(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*jobRepository.FindJobByID").Str("job_id", id).Msg("error looking up job")
		}
		return models.Job{}, err
	}

	return job, nil
}

func (r *jobRepository) ListJobs(ctx context.Context) ([]models.Job, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listJobs)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*jobRepository.ListJobs").Msg("error listing jobs")
		return nil, err
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			log.Err(err).Str("func", "*jobRepository.ListJobs").Msg("error scanning job row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*jobRepository.ListJobs").Msg("error iterating job rows")
		return nil, err
	}

	return jobs, nil
}

func (r *jobRepository) UpdateJob(ctx context.Context, id string, update models.JobUpdate) (models.Job, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Job{}, ErrNotFound
	}

	query, args, err := buildJobUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*jobRepository.UpdateJob").Msg("error building update query")
		return models.Job{}, err
	}

	updated, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*jobRepository.UpdateJob").Str("job_id", id).Msg("error updating job")
		return models.Job{}, err
	}

	return updated, nil
}

func (r *jobRepository) DeleteJob(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return ErrNotFound
	}

	result, err := r.db.ExecContext(ctx, deleteJob, id)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*jobRepository.DeleteJob").Str("job_id", id).Msg("error deleting job")
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanJob(row rowScanner) (models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Salary,
		&j.Deadline, &j.Description, &j.Link, &j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}
