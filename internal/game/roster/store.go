package roster

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no profile has the requested ID.
var ErrNotFound = errors.New("profile not found")

// Store is the roster collaborator used by the session layer.
type Store interface {
	// Add validates p, assigns a new ID and appends it.
	Add(p Profile) (string, error)
	// Delete removes the profile with id.
	Delete(id string) error
	// List returns every profile in insertion order.
	List() []Profile
	// Get returns the profile with id.
	Get(id string) (Profile, bool)
	// FindByName returns the first profile whose name matches, ignoring case.
	FindByName(name string) (Profile, bool)
}

// MemoryStore is an in-process Store. All methods are safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Profile
}

// NewMemoryStore creates a store holding seed.
//
// Postcondition: Returns a store with every valid seed profile added, or an
// error naming the first invalid one.
func NewMemoryStore(seed ...Profile) (*MemoryStore, error) {
	s := &MemoryStore{byID: make(map[string]Profile)}
	for _, p := range seed {
		if _, err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add implements Store.
func (s *MemoryStore) Add(p Profile) (string, error) {
	p.fillDefaults()
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("adding profile: %w", err)
	}
	p.ID = uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return p.ID, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("deleting %q: %w", id, ErrNotFound)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List implements Store.
func (s *MemoryStore) List() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Profile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Get implements Store.
func (s *MemoryStore) Get(id string) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// FindByName implements Store.
func (s *MemoryStore) FindByName(name string) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if p := s.byID[id]; strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}
