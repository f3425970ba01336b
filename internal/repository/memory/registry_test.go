package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"mergington-activities/config"
	"mergington-activities/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()

	cfg := &config.Config{Registry: config.RegistryConfig{EnforceCapacity: true}}
	r := New(zap.NewNop().Sugar(), cfg)
	require.NoError(t, r.OnStart(context.Background()))
	t.Cleanup(func() { _ = r.OnStop(context.Background()) })
	return r
}

func participants(t *testing.T, r *Registry, name string) []string {
	t.Helper()

	a, err := r.GetActivity(context.Background(), name)
	require.NoError(t, err)
	return a.Participants
}

func TestListActivitiesSeed(t *testing.T) {
	r := newRegistry(t)

	list, err := r.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 9)
	require.Equal(t, "Chess Club", list[0].Name)
	require.Equal(t, 12, list[0].MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, list[0].Participants)
	require.Equal(t, "Science Olympiad", list[8].Name)
}

func TestListActivitiesIsSnapshot(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	list, err := r.ListActivities(ctx)
	require.NoError(t, err)
	list[0].Participants[0] = "mutated@mergington.edu"
	list[0].Participants = append(list[0].Participants, "extra@mergington.edu")

	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, participants(t, r, "Chess Club"))
}

func TestEnroll(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	res, err := r.Enroll(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, entities.Enrollment{Activity: "Chess Club", Email: "newstudent@mergington.edu", Count: 3}, res)
	require.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"newstudent@mergington.edu",
	}, participants(t, r, "Chess Club"))
}

func TestEnrollTwiceRejected(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	_, err := r.Enroll(ctx, "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	_, err = r.Enroll(ctx, "Chess Club", "newstudent@mergington.edu")
	require.ErrorIs(t, err, entities.ErrAlreadyEnrolled)
	require.Len(t, participants(t, r, "Chess Club"), 3)

	_, err = r.Enroll(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, entities.ErrAlreadyEnrolled)
	require.Len(t, participants(t, r, "Chess Club"), 3)
}

func TestUnknownActivity(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()
	before, err := r.ListActivities(ctx)
	require.NoError(t, err)

	for _, name := range []string{"Nonexistent Club", "chess club", "Chess Club ", "ChessClub", ""} {
		_, err := r.Enroll(ctx, name, "student@mergington.edu")
		require.ErrorIs(t, err, entities.ErrActivityNotFound, name)
		_, err = r.Unenroll(ctx, name, "michael@mergington.edu")
		require.ErrorIs(t, err, entities.ErrActivityNotFound, name)
		_, err = r.GetActivity(ctx, name)
		require.ErrorIs(t, err, entities.ErrActivityNotFound, name)
	}

	after, err := r.ListActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestUnenroll(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	res, err := r.Unenroll(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, "Unregistered michael@mergington.edu from Chess Club", res.UnregisterMessage())
	require.Equal(t, 1, res.Count)
	require.Equal(t, []string{"daniel@mergington.edu"}, participants(t, r, "Chess Club"))

	_, err = r.Unenroll(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, entities.ErrNotEnrolled)
	require.Equal(t, []string{"daniel@mergington.edu"}, participants(t, r, "Chess Club"))
}

func TestUnenrollNotRegistered(t *testing.T) {
	r := newRegistry(t)

	_, err := r.Unenroll(context.Background(), "Chess Club", "notregistered@mergington.edu")
	require.ErrorIs(t, err, entities.ErrNotEnrolled)
	require.Len(t, participants(t, r, "Chess Club"), 2)
}

func TestEnrollUnenrollRoundTrip(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()
	before := participants(t, r, "Basketball Team")

	_, err := r.Enroll(ctx, "Basketball Team", "integration_test@mergington.edu")
	require.NoError(t, err)
	require.Len(t, participants(t, r, "Basketball Team"), len(before)+1)

	_, err = r.Unenroll(ctx, "Basketball Team", "integration_test@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, before, participants(t, r, "Basketball Team"))
}

func TestUnenrollKeepsOrder(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()

	for _, e := range []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"} {
		_, err := r.Enroll(ctx, "Art Studio", e)
		require.NoError(t, err)
	}
	_, err := r.Unenroll(ctx, "Art Studio", "a@mergington.edu")
	require.NoError(t, err)

	require.Equal(t, []string{
		"isabella@mergington.edu",
		"b@mergington.edu",
		"c@mergington.edu",
	}, participants(t, r, "Art Studio"))
}

func TestSameEmailMultipleActivities(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()
	gym := participants(t, r, "Gym Class")

	_, err := r.Enroll(ctx, "Chess Club", "student@mergington.edu")
	require.NoError(t, err)
	_, err = r.Enroll(ctx, "Programming Class", "student@mergington.edu")
	require.NoError(t, err)

	require.Contains(t, participants(t, r, "Chess Club"), "student@mergington.edu")
	require.Contains(t, participants(t, r, "Programming Class"), "student@mergington.edu")
	require.Equal(t, gym, participants(t, r, "Gym Class"))

	_, err = r.Unenroll(ctx, "Chess Club", "student@mergington.edu")
	require.NoError(t, err)
	require.Contains(t, participants(t, r, "Programming Class"), "student@mergington.edu")
}

func TestCapacityEnforced(t *testing.T) {
	catalog := []entities.Activity{{Name: "Tiny", MaxParticipants: 2, Participants: []string{"a@mergington.edu"}}}
	r := NewWithCatalog(zap.NewNop().Sugar(), catalog, true)
	ctx := context.Background()
	require.NoError(t, r.OnStart(ctx))

	_, err := r.Enroll(ctx, "Tiny", "b@mergington.edu")
	require.NoError(t, err)
	_, err = r.Enroll(ctx, "Tiny", "c@mergington.edu")
	require.ErrorIs(t, err, entities.ErrActivityFull)

	_, err = r.Enroll(ctx, "Tiny", "a@mergington.edu")
	require.ErrorIs(t, err, entities.ErrAlreadyEnrolled)

	a, err := r.GetActivity(ctx, "Tiny")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu", "b@mergington.edu"}, a.Participants)
	require.Zero(t, a.SpotsLeft())
}

func TestCapacityPermissive(t *testing.T) {
	catalog := []entities.Activity{{Name: "Tiny", MaxParticipants: 1, Participants: []string{"a@mergington.edu"}}}
	r := NewWithCatalog(zap.NewNop().Sugar(), catalog, false)
	ctx := context.Background()
	require.NoError(t, r.OnStart(ctx))

	_, err := r.Enroll(ctx, "Tiny", "b@mergington.edu")
	require.NoError(t, err)

	a, err := r.GetActivity(ctx, "Tiny")
	require.NoError(t, err)
	require.Len(t, a.Participants, 2)
	require.Zero(t, a.SpotsLeft())
}

func TestCatalogNotShared(t *testing.T) {
	catalog := []entities.Activity{{Name: "Tiny", MaxParticipants: 5, Participants: []string{"a@mergington.edu"}}}
	r := NewWithCatalog(zap.NewNop().Sugar(), catalog, true)
	ctx := context.Background()
	require.NoError(t, r.OnStart(ctx))

	_, err := r.Enroll(ctx, "Tiny", "b@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu"}, catalog[0].Participants)

	require.NoError(t, r.OnStart(ctx))
	require.Equal(t, []string{"a@mergington.edu"}, participants(t, r, "Tiny"))
}

func TestConcurrentEnroll(t *testing.T) {
	catalog := []entities.Activity{{Name: "Open House", MaxParticipants: 1000}}
	r := NewWithCatalog(zap.NewNop().Sugar(), catalog, true)
	ctx := context.Background()
	require.NoError(t, r.OnStart(ctx))

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i)
			_, err := r.Enroll(ctx, "Open House", email)
			assert.NoError(t, err)
			_, _ = r.ListActivities(ctx)
		}(i)
	}
	wg.Wait()

	require.Len(t, participants(t, r, "Open House"), n)
}

func TestCanceledContext(t *testing.T) {
	r := newRegistry(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Enroll(ctx, "Chess Club", "student@mergington.edu")
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, participants(t, r, "Chess Club"), 2)
}

func TestOnStopClears(t *testing.T) {
	r := newRegistry(t)
	ctx := context.Background()
	require.NoError(t, r.OnStop(ctx))

	list, err := r.ListActivities(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestOnStartSkipsDuplicateParticipants(t *testing.T) {
	catalog := []entities.Activity{{Name: "Tiny", MaxParticipants: 5, Participants: []string{"a@x", "b@x", "a@x"}}}
	r := NewWithCatalog(zap.NewNop().Sugar(), catalog, true)
	ctx := context.Background()
	require.NoError(t, r.OnStart(ctx))
	require.Equal(t, []string{"a@x", "b@x"}, participants(t, r, "Tiny"))

	res, err := r.Unenroll(ctx, "Tiny", "a@x")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Equal(t, []string{"b@x"}, participants(t, r, "Tiny"))

	_, err = r.Unenroll(ctx, "Tiny", "a@x")
	require.ErrorIs(t, err, entities.ErrNotEnrolled)
}

func TestEnrollmentCountMatchesConcurrentWrites(t *testing.T) {
	catalog := []entities.Activity{{Name: "Open House", MaxParticipants: 1000}}
	r := NewWithCatalog(zap.NewNop().Sugar(), catalog, true)
	ctx := context.Background()
	require.NoError(t, r.OnStart(ctx))

	const n = 100
	counts := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := r.Enroll(ctx, "Open House", fmt.Sprintf("student%d@mergington.edu", i))
			assert.NoError(t, err)
			counts <- res.Count
		}(i)
	}
	wg.Wait()
	close(counts)

	seen := map[int]bool{}
	for c := range counts {
		require.False(t, seen[c], "count %d reported twice", c)
		seen[c] = true
	}
	require.Len(t, seen, n)
	require.True(t, seen[n])
}
