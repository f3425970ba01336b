package usecase

import (
	"context"

	"mergington-activities/internal/entities"
)

// ActivityUsecaseInterface abstracts activity signup operations for delivery layer.
type ActivityUsecaseInterface interface {
	Activities(ctx context.Context) ([]entities.Activity, error)
	Activity(ctx context.Context, name string) (entities.Activity, error)
	SignUp(ctx context.Context, activityName, email string) (entities.Enrollment, error)
	Unregister(ctx context.Context, activityName, email string) (entities.Enrollment, error)
}
