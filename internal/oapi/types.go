// Package oapi contains the HTTP contract of the activities API.
package oapi

import (
	"bytes"
	"encoding/json"
)

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	ACTIVITYFULL    ErrorResponseErrorCode = "ACTIVITY_FULL"
	ALREADYENROLLED ErrorResponseErrorCode = "ALREADY_ENROLLED"
	INTERNAL        ErrorResponseErrorCode = "INTERNAL"
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	NOTENROLLED     ErrorResponseErrorCode = "NOT_ENROLLED"
	NOTFOUND        ErrorResponseErrorCode = "NOT_FOUND"
)

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Detail string                 `json:"detail"`
	Code   ErrorResponseErrorCode `json:"code"`
}

// MessageResponse confirms a signup or unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// Activity defines model for Activity.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NamedActivity pairs an activity with its registry key.
type NamedActivity struct {
	Name     string
	Activity Activity
}

// Activities is serialized as a JSON object keyed by activity name,
// keeping slice order instead of sorting keys.
type Activities []NamedActivity

// MarshalJSON implements json.Marshaler.
func (a Activities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(item.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PostActivitiesActivityNameSignupParams defines parameters for PostActivitiesActivityNameSignup.
type PostActivitiesActivityNameSignupParams struct {
	Email string `form:"email" json:"email"`
}

// PostActivitiesActivityNameUnregisterParams defines parameters for PostActivitiesActivityNameUnregister.
type PostActivitiesActivityNameUnregisterParams struct {
	Email string `form:"email" json:"email"`
}
