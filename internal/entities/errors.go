// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrActivityNotFound signals missing activity.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyEnrolled signals the email is already on the participant list.
	ErrAlreadyEnrolled = errors.New("already enrolled")
	// ErrNotEnrolled signals the email is absent from the participant list.
	ErrNotEnrolled = errors.New("not enrolled")
	// ErrActivityFull signals the activity reached max participants.
	ErrActivityFull = errors.New("activity full")
)
