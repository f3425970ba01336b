// Package memory implements the activity repository as an in-process registry.
package memory

import (
	"context"
	"sync"

	"mergington-activities/config"
	"mergington-activities/internal/entities"

	"go.uber.org/zap"
)

// Registry holds every activity keyed by exact name.
// Mutations take the exclusive lock; reads hand out deep copies.
type Registry struct {
	log             *zap.SugaredLogger
	catalog         []entities.Activity
	enforceCapacity bool

	mu         sync.RWMutex
	order      []string
	activities map[string]*record
}

// record pairs the participant list (signup order) with a membership index.
type record struct {
	activity entities.Activity
	members  map[string]struct{}
}

// New creates a registry seeded with the default catalog on start.
func New(log *zap.SugaredLogger, cfg *config.Config) *Registry {
	return NewWithCatalog(log, entities.DefaultCatalog(), cfg.Registry.EnforceCapacity)
}

// NewWithCatalog creates a registry that seeds the given catalog on start.
func NewWithCatalog(log *zap.SugaredLogger, catalog []entities.Activity, enforceCapacity bool) *Registry {
	seed := make([]entities.Activity, 0, len(catalog))
	for _, a := range catalog {
		seed = append(seed, a.Clone())
	}
	return &Registry{
		log:             log.Named("repo.memory"),
		catalog:         seed,
		enforceCapacity: enforceCapacity,
		activities:      map[string]*record{},
	}
}

// OnStart loads the catalog, replacing any existing state.
func (r *Registry) OnStart(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]string, 0, len(r.catalog))
	r.activities = make(map[string]*record, len(r.catalog))
	for _, a := range r.catalog {
		if _, dup := r.activities[a.Name]; dup {
			r.log.Warnw("duplicate activity in catalog skipped", "activity", a.Name)
			continue
		}
		rec := &record{activity: a, members: make(map[string]struct{}, len(a.Participants))}
		rec.activity.Participants = make([]string, 0, len(a.Participants))
		for _, p := range a.Participants {
			if _, dup := rec.members[p]; dup {
				r.log.Warnw("duplicate participant in catalog skipped", "activity", a.Name, "email", p)
				continue
			}
			rec.members[p] = struct{}{}
			rec.activity.Participants = append(rec.activity.Participants, p)
		}
		r.order = append(r.order, a.Name)
		r.activities[a.Name] = rec
	}

	r.log.Infow("registry ready", "activities", len(r.order), "enforce_capacity", r.enforceCapacity)
	return nil
}

// OnStop drops all state.
func (r *Registry) OnStop(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.activities = map[string]*record{}
	return nil
}

// ListActivities returns a snapshot of every activity in catalog order.
func (r *Registry) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]entities.Activity, 0, len(r.order))
	for _, name := range r.order {
		res = append(res, r.activities[name].activity.Clone())
	}
	return res, nil
}

// GetActivity returns a snapshot of a single activity.
func (r *Registry) GetActivity(ctx context.Context, name string) (entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return entities.Activity{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.activities[name]
	if !ok {
		return entities.Activity{}, entities.ErrActivityNotFound
	}
	return rec.activity.Clone(), nil
}

// Enroll appends email to the activity's participants.
func (r *Registry) Enroll(ctx context.Context, name, email string) (entities.Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Enrollment{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.activities[name]
	if !ok {
		return entities.Enrollment{}, entities.ErrActivityNotFound
	}
	if _, exists := rec.members[email]; exists {
		return entities.Enrollment{}, entities.ErrAlreadyEnrolled
	}
	if r.enforceCapacity && rec.activity.SpotsLeft() == 0 {
		return entities.Enrollment{}, entities.ErrActivityFull
	}

	rec.activity.Participants = append(rec.activity.Participants, email)
	rec.members[email] = struct{}{}

	r.log.Debugw("participant enrolled", "activity", name, "email", email, "count", len(rec.activity.Participants))
	return entities.Enrollment{Activity: name, Email: email, Count: len(rec.activity.Participants)}, nil
}

// Unenroll removes email from the activity's participants, keeping the order of the rest.
func (r *Registry) Unenroll(ctx context.Context, name, email string) (entities.Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Enrollment{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.activities[name]
	if !ok {
		return entities.Enrollment{}, entities.ErrActivityNotFound
	}
	if _, exists := rec.members[email]; !exists {
		return entities.Enrollment{}, entities.ErrNotEnrolled
	}

	rec.activity.Participants = removeFirst(rec.activity.Participants, email)
	delete(rec.members, email)

	r.log.Debugw("participant unenrolled", "activity", name, "email", email, "count", len(rec.activity.Participants))
	return entities.Enrollment{Activity: name, Email: email, Count: len(rec.activity.Participants)}, nil
}

func removeFirst(list []string, target string) []string {
	for i, v := range list {
		if v == target {
			res := make([]string, 0, len(list)-1)
			res = append(res, list[:i]...)
			return append(res, list[i+1:]...)
		}
	}
	return list
}
