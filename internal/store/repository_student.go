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

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// studentRepository is the PostgreSQL-backed implementation of
// [StudentRepository] over the "students" table.
type studentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStudentRepository constructs a [StudentRepository] backed by db.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateStudent inserts student and returns the stored row. The e-mail is
// normalised before insert. A duplicate e-mail yields [ErrEmailAlreadyExists].
func (r *studentRepository) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createStudent,
		student.ID, student.Name, normalizeEmail(student.Email), student.PasswordHash,
		student.Department, student.Year, student.RollNumber, student.Bio, student.Skills, student.ProfilePic,
	)

	created, err := scanStudent(row)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error creating student")
		return models.Student{}, err
	}

	return created, nil
}

// FindStudentByID returns the student with the given id or [ErrNotFound].
func (r *studentRepository) FindStudentByID(ctx context.Context, id string) (models.Student, error) {
	if !utils.IsValidID(id) {
		return models.Student{}, ErrNotFound
	}

	return r.findOne(ctx, "*studentRepository.FindStudentByID", findStudentByID, id)
}

// FindStudentByEmail returns the student with the given e-mail or [ErrNotFound].
func (r *studentRepository) FindStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	return r.findOne(ctx, "*studentRepository.FindStudentByEmail", findStudentByEmail, normalizeEmail(email))
}

func (r *studentRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.Student, error) {
	log := logger.FromContext(ctx)

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		err = r.db.mapError(err)
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("func", funcName).Msg("student not found")
		} else {
			log.Err(err).Str("func", funcName).Msg("error looking up student")
		}
		return models.Student{}, err
	}

	return student, nil
}

// ListStudents returns all students, newest first.
func (r *studentRepository) ListStudents(ctx context.Context) ([]models.Student, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listStudents)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error listing students")
		return nil, err
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error scanning student row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*studentRepository.ListStudents").Msg("error iterating student rows")
		return nil, err
	}

	return students, nil
}

// UpdateStudent applies the non-nil fields of update and returns the
// updated row. An unknown id yields [ErrNotFound].
func (r *studentRepository) UpdateStudent(ctx context.Context, id string, update models.StudentUpdate) (models.Student, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return models.Student{}, ErrNotFound
	}

	query, args, err := buildStudentUpdateQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Msg("error building update query")
		return models.Student{}, err
	}

	updated, err := scanStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*studentRepository.UpdateStudent").Str("student_id", id).Msg("error updating student")
		return models.Student{}, err
	}

	return updated, nil
}

// DeleteStudent removes the student with the given id. An unknown id
// yields [ErrNotFound].
func (r *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(id) {
		return ErrNotFound
	}

	result, err := r.db.ExecContext(ctx, deleteStudent, id)
	if err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*studentRepository.DeleteStudent").Str("student_id", id).Msg("error deleting student")
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountStudents returns the number of registered students.
func (r *studentRepository) CountStudents(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countStudents).Scan(&count); err != nil {
		err = r.db.mapError(err)
		log.Err(err).Str("func", "*studentRepository.CountStudents").Msg("error counting students")
		return 0, err
	}

	return count, nil
}

func scanStudent(row rowScanner) (models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Department, &s.Year,
		&s.RollNumber, &s.Bio, &s.Skills, &s.ProfilePic, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}
