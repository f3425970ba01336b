// Package observability exposes Prometheus collectors for the signup flow.
package observability

import (
	"errors"

	"mergington-activities/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels.
const (
	ResultOK              = "ok"
	ResultNotFound        = "not_found"
	ResultAlreadyEnrolled = "already_enrolled"
	ResultNotEnrolled     = "not_enrolled"
	ResultFull            = "full"
	ResultInvalid         = "invalid"
	ResultError           = "error"
)

var (
	// Signups counts signup attempts by activity and result.
	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Name:      "signups_total",
			Help:      "Signup attempts by activity and outcome.",
		},
		[]string{"activity", "result"},
	)

	// Unregisters counts unregister attempts by activity and result.
	Unregisters = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Name:      "unregisters_total",
			Help:      "Unregister attempts by activity and outcome.",
		},
		[]string{"activity", "result"},
	)

	// Participants tracks the current participant count per activity.
	Participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "activities",
			Name:      "participants",
			Help:      "Current number of participants per activity.",
		},
		[]string{"activity"},
	)
)

// ResultOf maps a registry error to its result label.
func ResultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, entities.ErrActivityNotFound):
		return ResultNotFound
	case errors.Is(err, entities.ErrAlreadyEnrolled):
		return ResultAlreadyEnrolled
	case errors.Is(err, entities.ErrNotEnrolled):
		return ResultNotEnrolled
	case errors.Is(err, entities.ErrActivityFull):
		return ResultFull
	case errors.Is(err, entities.ErrInvalidArgument):
		return ResultInvalid
	default:
		return ResultError
	}
}

// RecordSignup counts a signup attempt.
func RecordSignup(activity string, err error) {
	Signups.WithLabelValues(activityLabel(activity, err), ResultOf(err)).Inc()
}

// RecordUnregister counts an unregister attempt.
func RecordUnregister(activity string, err error) {
	Unregisters.WithLabelValues(activityLabel(activity, err), ResultOf(err)).Inc()
}

// SetParticipants updates the participant gauge for an activity.
func SetParticipants(activity string, count int) {
	Participants.WithLabelValues(activity).Set(float64(count))
}

// activityLabel collapses unknown names so arbitrary paths cannot grow label cardinality.
func activityLabel(activity string, err error) string {
	if errors.Is(err, entities.ErrActivityNotFound) || errors.Is(err, entities.ErrInvalidArgument) {
		return "unknown"
	}
	return activity
}
