// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"mergington-activities/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ActivityInterface exposes activity registry operations.
type ActivityInterface interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	GetActivity(ctx context.Context, name string) (entities.Activity, error)
	Enroll(ctx context.Context, name, email string) (entities.Enrollment, error)
	Unenroll(ctx context.Context, name, email string) (entities.Enrollment, error)
}
