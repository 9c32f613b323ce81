// Package directory stores the school activity rosters in memory.
package directory

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// InMemoryRepository keeps the activity directory in process memory. All
// roster mutations happen under the write lock so concurrent signups for
// the same activity cannot drop updates.
type InMemoryRepository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRepository constructs a repository populated with the seed directory.
func NewInMemoryRepository() *InMemoryRepository {
	repo := &InMemoryRepository{
		activities: make(map[string]domain.Activity),
	}
	repo.seed()
	return repo
}

// List implements domain.Repository. Returned rosters are copies; callers
// never observe later mutations.
func (r *InMemoryRepository) List(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = append([]string(nil), activity.Participants...)
		out[name] = activity
	}
	return out, nil
}

// AddParticipant appends the email to the activity roster. The membership
// check and the append happen under the same lock acquisition.
func (r *InMemoryRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return domain.ErrAlreadySignedUp
		}
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	observability.RecordRosterSize(name, len(activity.Participants))
	return nil
}

// RemoveParticipant deletes the email from the roster, preserving the
// order of the remaining participants.
func (r *InMemoryRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := -1
	for i, participant := range activity.Participants {
		if participant == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	activity.Participants = append(activity.Participants[:idx:idx], activity.Participants[idx+1:]...)
	r.activities[name] = activity
	observability.RecordRosterSize(name, len(activity.Participants))
	return nil
}
