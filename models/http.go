// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of every login endpoint (student, staff, admin).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SendOTPRequest asks for a signup verification code to be e-mailed.
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest submits the code received by e-mail.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// SignupRequest creates a student account for an already verified e-mail.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// StudentProfileRequest is a partial student update. It is used both by the
// student (own profile, onboarding) and by an admin; only an admin may set
// Password.
type StudentProfileRequest struct {
	Name       *string   `json:"name,omitempty" validate:"omitempty,max=120"`
	Email      *string   `json:"email,omitempty" validate:"omitempty,email"`
	Department *string   `json:"department,omitempty" validate:"omitempty,max=120"`
	Year       *string   `json:"year,omitempty" validate:"omitempty,max=20"`
	RollNumber *string   `json:"rollNumber,omitempty" validate:"omitempty,max=40"`
	Bio        *string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Skills     *[]string `json:"skills,omitempty" validate:"omitempty,max=50,dive,max=60"`
	ProfilePic *string   `json:"profilePic,omitempty" validate:"omitempty,max=2048"`
	Password   *string   `json:"password,omitempty" validate:"omitempty,min=6,maxbytes=72"`
}

// CreateStaffRequest is the body of the admin "add staff" endpoint.
type CreateStaffRequest struct {
	Name          string   `json:"name" validate:"required,max=120"`
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=6,maxbytes=72"`
	Position      string   `json:"position" validate:"max=120"`
	Department    string   `json:"department" validate:"max=120"`
	Qualification string   `json:"qualification" validate:"max=200"`
	Experience    string   `json:"experience" validate:"max=120"`
	Bio           string   `json:"bio" validate:"max=2000"`
	Subjects      []string `json:"subjects" validate:"max=50,dive,max=120"`
	Photo         string   `json:"photo" validate:"max=2048"`
}

// StaffProfileRequest is a partial staff update used by the staff member
// and by an admin. Only an admin may set Password.
type StaffProfileRequest struct {
	Name          *string   `json:"name,omitempty" validate:"omitempty,max=120"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	Position      *string   `json:"position,omitempty" validate:"omitempty,max=120"`
	Department    *string   `json:"department,omitempty" validate:"omitempty,max=120"`
	Qualification *string   `json:"qualification,omitempty" validate:"omitempty,max=200"`
	Experience    *string   `json:"experience,omitempty" validate:"omitempty,max=120"`
	Bio           *string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Subjects      *[]string `json:"subjects,omitempty" validate:"omitempty,max=50,dive,max=120"`
	Photo         *string   `json:"photo,omitempty" validate:"omitempty,max=2048"`
	Password      *string   `json:"password,omitempty" validate:"omitempty,min=6,maxbytes=72"`
}

// EventRequest is the body of the admin "create event" endpoint.
type EventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"max=40"`
	Location    string `json:"location" validate:"max=200"`
	Description string `json:"description" validate:"max=5000"`
	Category    string `json:"category" validate:"max=80"`
	Banner      string `json:"banner" validate:"max=2048"`
}

// EventUpdateRequest is a partial event update.
type EventUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"time,omitempty" validate:"omitempty,max=40"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=80"`
	Banner      *string `json:"banner,omitempty" validate:"omitempty,max=2048"`
}

// JobRequest is the body of the admin "create job" endpoint.
type JobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	Location    string `json:"location" validate:"max=200"`
	Type        string `json:"type" validate:"max=60"`
	Salary      string `json:"salary" validate:"max=80"`
	Deadline    string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Description string `json:"description" validate:"max=5000"`
	Link        string `json:"link" validate:"omitempty,url,max=2048"`
}

// JobUpdateRequest is a partial job update. An empty deadline clears it.
type JobUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Company     *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Type        *string `json:"type,omitempty" validate:"omitempty,max=60"`
	Salary      *string `json:"salary,omitempty" validate:"omitempty,max=80"`
	Deadline    *string `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Link        *string `json:"link,omitempty" validate:"omitempty,url,max=2048"`
}

// JobApplicationRequest is a student's application for a job. The
// applicant receives a confirmation e-mail.
type JobApplicationRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"max=30"`
}
