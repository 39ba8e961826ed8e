// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/bvc-digitalhub/models"
)

var (
	otpTemplate = template.Must(template.New("otp").Parse(
		`<p>Your BVC DigitalHub verification code is <strong>{{.Code}}</strong>.</p>` +
			`<p>The code expires in {{.Minutes}} minutes. If you did not request it, ignore this e-mail.</p>`))

	staffCredentialsTemplate = template.Must(template.New("staff-credentials").Parse(
		`<p>Hello {{.Name}},</p>` +
			`<p>A BVC DigitalHub staff account was created for you.</p>` +
			`<p>E-mail: <strong>{{.Email}}</strong><br>Password: <strong>{{.Password}}</strong></p>` +
			`<p>Please change the password after your first login.</p>`))

	eventTemplate = template.Must(template.New("event").Parse(
		`<h2>{{.Event.Title}}</h2>` +
			`<p>{{if .Updated}}An event on BVC DigitalHub was updated.{{else}}A new event was announced on BVC DigitalHub.{{end}}</p>` +
			`<p>Date: <strong>{{.Event.Date}}</strong>{{with .Event.Time}}<br>Time: <strong>{{.}}</strong>{{end}}` +
			`{{with .Event.Location}}<br>Location: <strong>{{.}}</strong>{{end}}</p>` +
			`<p>{{.Category}}</p>{{with .Event.Description}}<p>{{.}}</p>{{end}}`))

	jobTemplate = template.Must(template.New("job").Parse(
		`<h2>{{.Job.Title}} at {{.Job.Company}}</h2>` +
			`<p>{{if .Updated}}A job opening on BVC DigitalHub was updated.{{else}}A new job opening was posted on BVC DigitalHub.{{end}}</p>` +
			`<p>{{with .Job.Type}}Type: <strong>{{.}}</strong><br>{{end}}{{with .Job.Location}}Location: <strong>{{.}}</strong><br>{{end}}` +
			`{{with .Job.Salary}}Salary: <strong>{{.}}</strong><br>{{end}}{{with .Job.Deadline}}Apply by: <strong>{{.}}</strong>{{end}}</p>` +
			`{{with .Job.Description}}<p>{{.}}</p>{{end}}{{with .Job.Link}}<p><a href="{{.}}">Apply here</a></p>{{end}}`))

	jobApplicationTemplate = template.Must(template.New("job-application").Parse(
		`<p>Hello {{.Name}},</p>` +
			`<p>Your application for <strong>{{.Job.Title}}</strong> at <strong>{{.Job.Company}}</strong> was submitted.</p>` +
			`<p>The placement cell will contact you{{with .Phone}} at {{.}}{{end}} with the next steps.</p>`))
)

// defaultEventCategory is shown for events without a category.
const defaultEventCategory = "General Event"

func otpEmail(to, code string, ttl time.Duration) (models.Email, error) {
	return render(otpTemplate, to, "Your BVC DigitalHub verification code", struct {
		Code    string
		Minutes int
	}{Code: code, Minutes: int(ttl.Minutes())})
}

func staffCredentialsEmail(staff models.Staff, password string) (models.Email, error) {
	return render(staffCredentialsTemplate, staff.Email, "Your BVC DigitalHub staff account", struct {
		Name     string
		Email    string
		Password string
	}{Name: staff.Name, Email: staff.Email, Password: password})
}

func render(tmpl *template.Template, to, subject string, data any) (models.Email, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return models.Email{}, fmt.Errorf("error rendering %s e-mail: %w", tmpl.Name(), err)
	}
	return models.Email{To: to, Subject: subject, HTML: body.String()}, nil
}

// eventAnnouncement renders the announcement of a new or changed event.
// The message has no recipients yet.
func eventAnnouncement(event models.Event, updated bool) (models.Email, error) {
	subject := "New Event: " + event.Title
	if updated {
		subject = "Updated Event: " + event.Title
	}

	category := event.Category
	if category == "" {
		category = defaultEventCategory
	}

	return render(eventTemplate, "", subject, struct {
		Event    models.Event
		Category string
		Updated  bool
	}{Event: event, Category: category, Updated: updated})
}

// jobAnnouncement renders the announcement of a new or changed job.
func jobAnnouncement(job models.Job, updated bool) (models.Email, error) {
	subject := fmt.Sprintf("New Opportunity: %s at %s", job.Title, job.Company)
	if updated {
		subject = fmt.Sprintf("Updated: %s at %s", job.Title, job.Company)
	}

	return render(jobTemplate, "", subject, struct {
		Job     models.Job
		Updated bool
	}{Job: job, Updated: updated})
}

func jobApplicationEmail(job models.Job, req models.JobApplicationRequest) (models.Email, error) {
	return render(jobApplicationTemplate, req.Email, "Job Application Submitted Successfully", struct {
		Name  string
		Phone string
		Job   models.Job
	}{Name: req.Name, Phone: req.Phone, Job: job})
}
