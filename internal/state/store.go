// Package state holds the single authoritative collection of projects and
// notifies registered listeners after every accepted mutation.
package state

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// Listener receives an independent copy of every project, in insertion
// order. Listeners run while the store is locked and must not call
// AddProject or MoveProject.
type Listener func(projects []domain.Project)

// IDGenerator returns a new project identifier.
type IDGenerator func() string

// RandomIDs generates UUIDv4 identifiers.
func RandomIDs() IDGenerator {
	return uuid.NewString
}

// CounterIDs generates "1", "2", ... for the lifetime of the generator.
func CounterIDs() IDGenerator {
	var mu sync.Mutex
	var n uint64
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return strconv.FormatUint(n, 10)
	}
}

type Option func(*Store)

func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

// Store owns every project it creates. Create one per application and pass
// it to every component that reads or mutates board state.
type Store struct {
	mu        sync.Mutex
	projects  []domain.Project
	listeners []Listener
	newID     IDGenerator
	log       *zap.Logger
}

func New(opts ...Option) *Store {
	s := &Store{
		newID: RandomIDs(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProject appends a new active project and notifies listeners. It does
// not validate its input.
func (s *Store) AddProject(title, description string, people int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.NewProject(s.newID(), title, description, people)
	s.projects = append(s.projects, p)
	s.log.Debug("project added", zap.String("project_id", p.ID), zap.Int("people", people))

	s.notify()
}

// MoveProject sets the status of the project with the given id. Unknown ids
// and unchanged statuses are ignored without notifying listeners.
func (s *Store) MoveProject(id string, status domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if s.projects[i].Status == status {
			return
		}
		s.projects[i].Status = status
		s.log.Debug("project moved", zap.String("project_id", id), zap.Stringer("status", status))
		s.notify()
		return
	}
	s.log.Debug("move ignored, unknown project", zap.String("project_id", id))
}

// AddListener registers fn for every future accepted mutation. Listeners are
// called in registration order.
func (s *Store) AddListener(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Projects returns a copy of the current sequence.
func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) Get(id string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// notify must be called with mu held.
func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.snapshot())
	}
}

func (s *Store) snapshot() []domain.Project {
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}
