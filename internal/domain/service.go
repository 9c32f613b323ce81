package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"example.com/activities/internal/events"
	"example.com/activities/internal/observability"
)

// Service orchestrates signup workflows.
type Service struct {
	repo Repository
	sink events.Sink
}

// NewService constructs a Service. A nil sink disables roster events.
func NewService(repo Repository, sink events.Sink) *Service {
	if sink == nil {
		sink = events.NoopSink{}
	}
	return &Service{repo: repo, sink: sink}
}

// ListActivities returns the full directory keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.List(ctx)
}

// Signup adds the student to the activity roster and announces the change.
// The directory is left untouched when the signup is rejected.
func (s *Service) Signup(ctx context.Context, activity, email string) error {
	if strings.TrimSpace(activity) == "" {
		return errors.New("activity name is required")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}

	if err := s.repo.AddParticipant(ctx, activity, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}

	observability.RecordSignup(activity)
	s.sink.Enqueue(events.Event{
		EventID:    uuid.NewString(),
		Type:       events.TypeSignup,
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// Unregister removes the student from the activity roster and announces
// the change. The directory is left untouched when the removal is rejected.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if strings.TrimSpace(activity) == "" {
		return errors.New("activity name is required")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}

	if err := s.repo.RemoveParticipant(ctx, activity, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return err
	}

	observability.RecordUnregistration(activity)
	s.sink.Enqueue(events.Event{
		EventID:    uuid.NewString(),
		Type:       events.TypeUnregister,
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	default:
		return "error"
	}
}
