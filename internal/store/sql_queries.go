// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/bvc-digitalhub/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	studentColumns = `id, name, email, password_hash, department, year, roll_number, bio, skills, profile_pic, created_at, updated_at`
	staffColumns   = `id, name, email, password_hash, position, department, qualification, experience, bio, subjects, photo, created_at, updated_at`
	adminColumns   = `id, email, password_hash, created_at`

	// dates travel as YYYY-MM-DD text; jobs without a deadline yield ''
	eventColumns = `id, title, to_char(date, 'YYYY-MM-DD') AS date, time, location, description, category, banner, created_at, updated_at`
	jobColumns   = `id, title, company, location, type, salary, COALESCE(to_char(deadline, 'YYYY-MM-DD'), '') AS deadline, description, link, created_at, updated_at`
)

const (
	createStudent = `INSERT INTO students (id, name, email, password_hash, department, year, roll_number, bio, skills, profile_pic)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + studentColumns + `;`

	findStudentByID = `SELECT ` + studentColumns + `
    FROM students
    WHERE id = $1;`

	findStudentByEmail = `SELECT ` + studentColumns + `
    FROM students
    WHERE email = $1;`

	listStudents = `SELECT ` + studentColumns + `
    FROM students
    ORDER BY created_at DESC;`

	deleteStudent = `DELETE FROM students WHERE id = $1;`

	countStudents = `SELECT COUNT(*) FROM students;`
)

const (
	createStaff = `INSERT INTO staff (id, name, email, password_hash, position, department, qualification, experience, bio, subjects, photo)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + staffColumns + `;`

	findStaffByID = `SELECT ` + staffColumns + `
    FROM staff
    WHERE id = $1;`

	findStaffByEmail = `SELECT ` + staffColumns + `
    FROM staff
    WHERE email = $1;`

	deleteStaff = `DELETE FROM staff WHERE id = $1;`

	countStaff = `SELECT COUNT(*) FROM staff;`
)

const (
	findAdminByID = `SELECT ` + adminColumns + `
    FROM admins
    WHERE id = $1;`

	findAdminByEmail = `SELECT ` + adminColumns + `
    FROM admins
    WHERE email = $1;`

	upsertAdmin = `INSERT INTO admins (id, email, password_hash)
    VALUES ($1, $2, $3)
    ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
    RETURNING ` + adminColumns + `;`
)

const (
	createEvent = `INSERT INTO events (id, title, date, time, location, description, category, banner)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + eventColumns + `;`

	findEventByID = `SELECT ` + eventColumns + `
    FROM events
    WHERE id = $1;`

	deleteEvent = `DELETE FROM events WHERE id = $1;`
)

const (
	createJob = `INSERT INTO jobs (id, title, company, location, type, salary, deadline, description, link)
    VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date, $8, $9)
    RETURNING ` + jobColumns + `;`

	findJobByID = `SELECT ` + jobColumns + `
    FROM jobs
    WHERE id = $1;`

	listJobs = `SELECT ` + jobColumns + `
    FROM jobs
    ORDER BY created_at DESC;`

	deleteJob = `DELETE FROM jobs WHERE id = $1;`
)

// listRecipients yields every student and staff address once. Both tables
// store normalized addresses, so UNION removes the duplicates.
const listRecipients = `SELECT email FROM students
    UNION
    SELECT email FROM staff
    ORDER BY email;`

// psql is the squirrel builder for PostgreSQL ($n placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildStudentUpdateQuery builds an UPDATE for the non-nil fields of update.
func buildStudentUpdateQuery(id string, update models.StudentUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	q := psql.Update("students").Set("updated_at", sq.Expr("NOW()"))
	q = setIfPresent(q, "name", update.Name)
	if update.Email != nil {
		q = q.Set("email", normalizeEmail(*update.Email))
	}
	q = setIfPresent(q, "department", update.Department)
	q = setIfPresent(q, "year", update.Year)
	q = setIfPresent(q, "roll_number", update.RollNumber)
	q = setIfPresent(q, "bio", update.Bio)
	if update.Skills != nil {
		q = q.Set("skills", *update.Skills)
	}
	q = setIfPresent(q, "profile_pic", update.ProfilePic)
	q = setIfPresent(q, "password_hash", update.PasswordHash)

	query, args, err := q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + studentColumns).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildStaffUpdateQuery builds an UPDATE for the non-nil fields of update.
func buildStaffUpdateQuery(id string, update models.StaffUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	q := psql.Update("staff").Set("updated_at", sq.Expr("NOW()"))
	q = setIfPresent(q, "name", update.Name)
	if update.Email != nil {
		q = q.Set("email", normalizeEmail(*update.Email))
	}
	q = setIfPresent(q, "position", update.Position)
	q = setIfPresent(q, "department", update.Department)
	q = setIfPresent(q, "qualification", update.Qualification)
	q = setIfPresent(q, "experience", update.Experience)
	q = setIfPresent(q, "bio", update.Bio)
	if update.Subjects != nil {
		q = q.Set("subjects", *update.Subjects)
	}
	q = setIfPresent(q, "photo", update.Photo)
	q = setIfPresent(q, "password_hash", update.PasswordHash)

	query, args, err := q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + staffColumns).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListStaffQuery builds the staff listing for the requested order.
func buildListStaffQuery(order models.StaffOrder) (string, []any, error) {
	q := psql.Select(staffColumns).From("staff")

	switch order {
	case models.StaffOrderDepartment:
		q = q.OrderBy("department ASC", "name ASC")
	default:
		q = q.OrderBy("created_at DESC")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListEventsQuery builds the event listing for the requested order.
func buildListEventsQuery(order models.EventOrder) (string, []any, error) {
	q := psql.Select(eventColumns).From("events")

	switch order {
	case models.EventOrderLatest:
		q = q.OrderBy("date DESC", "created_at DESC")
	default:
		q = q.OrderBy("date ASC", "created_at ASC")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildEventUpdateQuery builds an UPDATE for the non-nil fields of update.
func buildEventUpdateQuery(id string, update models.EventUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	q := psql.Update("events").Set("updated_at", sq.Expr("NOW()"))
	q = setIfPresent(q, "title", update.Title)
	if update.Date != nil {
		q = q.Set("date", sq.Expr("?::date", *update.Date))
	}
	q = setIfPresent(q, "time", update.Time)
	q = setIfPresent(q, "location", update.Location)
	q = setIfPresent(q, "description", update.Description)
	q = setIfPresent(q, "category", update.Category)
	q = setIfPresent(q, "banner", update.Banner)

	query, args, err := q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + eventColumns).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildJobUpdateQuery builds an UPDATE for the non-nil fields of update.
// An empty deadline is stored as NULL.
func buildJobUpdateQuery(id string, update models.JobUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	q := psql.Update("jobs").Set("updated_at", sq.Expr("NOW()"))
	q = setIfPresent(q, "title", update.Title)
	q = setIfPresent(q, "company", update.Company)
	q = setIfPresent(q, "location", update.Location)
	q = setIfPresent(q, "type", update.Type)
	q = setIfPresent(q, "salary", update.Salary)
	if update.Deadline != nil {
		q = q.Set("deadline", sq.Expr("NULLIF(?, '')::date", *update.Deadline))
	}
	q = setIfPresent(q, "description", update.Description)
	q = setIfPresent(q, "link", update.Link)

	query, args, err := q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + jobColumns).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func setIfPresent(q sq.UpdateBuilder, column string, value *string) sq.UpdateBuilder {
	if value == nil {
		return q
	}
	return q.Set(column, *value)
}

// normalizeEmail lower-cases and trims an e-mail address. All tables store
// and look up addresses in this form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
