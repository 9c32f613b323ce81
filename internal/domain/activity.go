// Package domain defines the business logic for the activities service.
package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp is returned when the email is already on the roster.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrNotRegistered is returned when the email is not on the roster.
	ErrNotRegistered = errors.New("student not registered")
)

// Activity describes a single extracurricular activity and its roster.
type Activity struct {
	Description string
	Schedule    string
	// MaxParticipants is the advertised capacity. Signup does not enforce it.
	MaxParticipants int
	// Participants holds student emails in signup order, no duplicates.
	Participants []string
}

// Repository captures roster storage operations. Activity names match
// exactly, including case and spaces.
type Repository interface {
	List(ctx context.Context) (map[string]Activity, error)
	AddParticipant(ctx context.Context, activity, email string) error
	RemoveParticipant(ctx context.Context, activity, email string) error
}
