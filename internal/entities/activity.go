// Package entities contains core business entities.
package entities

import "fmt"

// Activity is an extracurricular offering with its current participants.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// SpotsLeft returns remaining capacity, never negative.
func (a Activity) SpotsLeft() int {
	left := a.MaxParticipants - len(a.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// Clone returns a copy that shares no participant storage with a.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return out
}

// Enrollment confirms a successful signup or unregister.
type Enrollment struct {
	Activity string
	Email    string
	// Count is the participant count right after the change.
	Count int
}

// SignupMessage is the human-readable signup confirmation.
func (e Enrollment) SignupMessage() string {
	return fmt.Sprintf("Signed up %s for %s", e.Email, e.Activity)
}

// UnregisterMessage is the human-readable unregister confirmation.
func (e Enrollment) UnregisterMessage() string {
	return fmt.Sprintf("Unregistered %s from %s", e.Email, e.Activity)
}
