// Package domain contains application services orchestrating activity signups.
package domain

import (
	"context"
	"fmt"

	"mergington-activities/internal/entities"
	"mergington-activities/internal/observability"
)

// Activities returns every activity with its current participants.
func (u *Usecase) Activities(ctx context.Context) ([]entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListActivities(ctx)
}

// Activity returns a single activity by exact name.
func (u *Usecase) Activity(ctx context.Context, name string) (entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return entities.Activity{}, fmt.Errorf("%w: activity_name is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetActivity(ctx, name)
}

// SignUp adds email to the activity's participants.
func (u *Usecase) SignUp(ctx context.Context, activityName, email string) (res entities.Enrollment, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	defer func() { observability.RecordSignup(activityName, err) }()

	if err := validate(activityName, email); err != nil {
		return entities.Enrollment{}, err
	}

	res, err = u.repo.Enroll(ctx, activityName, email)
	if err != nil {
		u.log.Infow("signup rejected", "activity", activityName, "email", email, "error", err)
		return entities.Enrollment{}, err
	}
	u.log.Infow("signup", "activity", activityName, "email", email)
	observability.SetParticipants(res.Activity, res.Count)
	return res, nil
}

// Unregister removes email from the activity's participants.
func (u *Usecase) Unregister(ctx context.Context, activityName, email string) (res entities.Enrollment, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	defer func() { observability.RecordUnregister(activityName, err) }()

	if err := validate(activityName, email); err != nil {
		return entities.Enrollment{}, err
	}

	res, err = u.repo.Unenroll(ctx, activityName, email)
	if err != nil {
		u.log.Infow("unregister rejected", "activity", activityName, "email", email, "error", err)
		return entities.Enrollment{}, err
	}
	u.log.Infow("unregister", "activity", activityName, "email", email)
	observability.SetParticipants(res.Activity, res.Count)
	return res, nil
}

func validate(activityName, email string) error {
	if activityName == "" {
		return fmt.Errorf("%w: activity_name is required", entities.ErrInvalidArgument)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return nil
}
