package directory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"example.com/activities/internal/domain"
)

func TestSeedDirectoryComplete(t *testing.T) {
	repo := NewInMemoryRepository()

	activities, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(activities) != 9 {
		t.Fatalf("expected 9 seeded activities, got %d", len(activities))
	}
	for name, activity := range activities {
		if activity.Description == "" || activity.Schedule == "" {
			t.Fatalf("activity %q missing description or schedule", name)
		}
		if activity.MaxParticipants <= 0 {
			t.Fatalf("activity %q has non-positive capacity", name)
		}
	}

	if !slices.Contains(activities["Basketball"].Participants, "james@mergington.edu") {
		t.Fatalf("expected james@mergington.edu seeded on Basketball")
	}
	if !slices.Contains(activities["Science Club"].Participants, "lucas@mergington.edu") {
		t.Fatalf("expected lucas@mergington.edu seeded on Science Club")
	}
}

func TestAddParticipantAppendsInOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if err := repo.AddParticipant(ctx, "Chess Club", "first@mergington.edu"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.AddParticipant(ctx, "Chess Club", "second@mergington.edu"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	activities, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	participants := activities["Chess Club"].Participants
	if len(participants) < 2 {
		t.Fatalf("expected at least two participants, got %v", participants)
	}
	if participants[len(participants)-2] != "first@mergington.edu" || participants[len(participants)-1] != "second@mergington.edu" {
		t.Fatalf("expected signup order preserved, got %v", participants)
	}
}

func TestAddParticipantRejectsDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	err := repo.AddParticipant(ctx, "Basketball", "james@mergington.edu")
	if !errors.Is(err, domain.ErrAlreadySignedUp) {
		t.Fatalf("expected ErrAlreadySignedUp, got %v", err)
	}

	activities, _ := repo.List(ctx)
	count := 0
	for _, participant := range activities["Basketball"].Participants {
		if participant == "james@mergington.edu" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one roster entry, got %d", count)
	}
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	repo := NewInMemoryRepository()

	err := repo.AddParticipant(context.Background(), "Underwater Basket Weaving", "student@mergington.edu")
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestRemoveParticipantPreservesOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if err := repo.AddParticipant(ctx, "Gym Class", "tail@mergington.edu"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.RemoveParticipant(ctx, "Gym Class", "john@mergington.edu"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	activities, _ := repo.List(ctx)
	got := activities["Gym Class"].Participants
	want := []string{"olivia@mergington.edu", "tail@mergington.edu"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected roster %v, got %v", want, got)
	}
}

func TestRemoveParticipantNotRegistered(t *testing.T) {
	repo := NewInMemoryRepository()

	err := repo.RemoveParticipant(context.Background(), "Drama Club", "ghost@mergington.edu")
	if !errors.Is(err, domain.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestRemoveParticipantUnknownActivity(t *testing.T) {
	repo := NewInMemoryRepository()

	err := repo.RemoveParticipant(context.Background(), "Underwater Basket Weaving", "student@mergington.edu")
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestListReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	roster := first["Chess Club"]
	roster.Participants[0] = "tampered@mergington.edu"
	delete(first, "Basketball")

	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if second["Chess Club"].Participants[0] == "tampered@mergington.edu" {
		t.Fatalf("mutating a listed roster must not affect the directory")
	}
	if _, ok := second["Basketball"]; !ok {
		t.Fatalf("deleting from a listed map must not affect the directory")
	}
}

func TestConcurrentSignupsRetainAllParticipants(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	activities, _ := repo.List(ctx)
	seeded := len(activities["Gym Class"].Participants)

	const students = 32
	var wg sync.WaitGroup
	for i := 0; i < students; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%02d@mergington.edu", i)
			if err := repo.AddParticipant(ctx, "Gym Class", email); err != nil {
				t.Errorf("concurrent add failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	activities, _ = repo.List(ctx)
	participants := activities["Gym Class"].Participants
	if len(participants) != seeded+students {
		t.Fatalf("expected %d participants, got %d", seeded+students, len(participants))
	}

	seen := make(map[string]struct{}, len(participants))
	for _, participant := range participants {
		if _, dup := seen[participant]; dup {
			t.Fatalf("duplicate roster entry %q", participant)
		}
		seen[participant] = struct{}{}
	}
}
