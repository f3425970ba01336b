// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"mergington-activities/config"
	"mergington-activities/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	ActivityInterface
}

// New constructs repository backend by name.
func New(_ context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
