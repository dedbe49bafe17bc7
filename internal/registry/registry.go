// Package registry holds the in-memory activity catalog and participant
// membership. It is the sole stateful core of the service: activities are
// seeded once at startup and only their participant lists mutate afterwards.
package registry

import (
	"sync"

	"github.com/mergington/activities/internal/models"
)

// Registry maps activity names to activity records. Handlers run on
// concurrent goroutines, so every read-modify-write of a participant list
// happens under the lock.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// New creates a registry seeded from the given catalog. The seed is deep
// copied; callers keep no aliases into registry state.
func New(seed map[string]*models.Activity) *Registry {
	r := &Registry{
		activities: make(map[string]*models.Activity, len(seed)),
	}
	for name, a := range seed {
		r.activities[name] = &models.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string{}, a.Participants...),
		}
	}
	return r
}

// Default returns the fixed school catalog used at process start.
func Default() map[string]*models.Activity {
	return map[string]*models.Activity{
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
		"Drama Club": {
			Description:     "Participate in school plays and learn acting techniques",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{},
		},
	}
}

// List returns a copy of the full activity mapping, including current
// participants. The copy is detached from registry state.
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = models.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string{}, a.Participants...),
		}
	}
	return out
}

// Len returns the number of activities in the catalog.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// Signup adds email to the activity's participant list, preserving insertion
// order. The email is not validated; an empty string is an accepted value.
// No capacity check is made against MaxParticipants, which is advisory only.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for _, p := range a.Participants {
		if p == email {
			return ErrAlreadyRegistered
		}
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's participant list. Remaining
// participants keep their order.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}
