package directory

import (
	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// seed loads the Mergington High School activity directory. Rosters are
// volatile and reset to this state on every restart.
func (r *InMemoryRepository) seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = map[string]domain.Activity{
		"Basketball": {
			Description:     "Learn basketball skills and compete in interschool games",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "ava@mergington.edu"},
		},
		"Volleyball": {
			Description:     "Practice volleyball techniques and play friendly matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop argumentation skills and compete in debate tournaments",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
		"Science Club": {
			Description:     "Run hands-on experiments and prepare for the science fair",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu", "grace@mergington.edu"},
		},
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	}

	for name, activity := range r.activities {
		observability.RecordRosterSize(name, len(activity.Participants))
	}
}
