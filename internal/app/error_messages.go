// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// DigitalHub API handlers and middleware.
//
// All Msg* constants are the human-readable strings written into the
// {"message": ...} body of error responses. They never reveal why a token
// was rejected or which store was consulted.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned by every login endpoint when the
	// e-mail is unknown or the password does not match.
	MsgInvalidCredentials = "invalid email or password"

	// MsgUnauthorized is returned for a missing, malformed, expired or
	// otherwise invalid bearer token, and for a token whose principal no
	// longer exists.
	MsgUnauthorized = "unauthorized"

	// MsgForbidden is returned when an authenticated principal calls a route
	// that does not allow its role.
	MsgForbidden = "forbidden"

	// MsgServiceUnavailable is returned when a backing store or the mail
	// queue cannot serve the request right now.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned when an account, event or job does not exist.
	MsgNotFound = "not found"

	// MsgEmailAlreadyRegistered is returned when signup or account creation
	// uses an e-mail that is taken.
	MsgEmailAlreadyRegistered = "email already registered"

	// MsgEmailNotVerified is returned by signup when the e-mail has no
	// verified OTP mark.
	MsgEmailNotVerified = "email is not verified"

	// MsgInvalidOTP is returned when a verification code is wrong or expired.
	MsgInvalidOTP = "invalid or expired otp"

	// MsgNothingToUpdate is returned when a profile update carries no
	// changes.
	MsgNothingToUpdate = "nothing to update"

	// MsgOTPSent confirms that a verification code was queued for delivery.
	MsgOTPSent = "otp sent"

	// MsgEmailVerified confirms a successful OTP check.
	MsgEmailVerified = "email verified"

	// MsgDeleted confirms a successful delete.
	MsgDeleted = "deleted"

	// MsgApplicationSubmitted confirms that a job application confirmation
	// was queued for the applicant.
	MsgApplicationSubmitted = "application submitted"
)
