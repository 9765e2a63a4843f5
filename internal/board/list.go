package board

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/state"
)

// Store is the subset of the state store the board needs.
type Store interface {
	AddProject(title, description string, people int)
	MoveProject(id string, status domain.Status)
	AddListener(fn state.Listener)
	Projects() []domain.Project
}

// ProjectList shows the projects with one status and accepts drops that
// move projects into that status. One ProjectList serves every client, so
// its drop highlight is process-wide; browsers track their own highlight.
type ProjectList struct {
	store  Store
	status domain.Status
	log    *zap.Logger

	mu        sync.RWMutex
	assigned  []domain.Project
	notified  bool
	droppable bool
}

func NewProjectList(store Store, status domain.Status, logger *zap.Logger) *ProjectList {
	l := &ProjectList{
		store:  store,
		status: status,
		log:    logger.With(zap.Stringer("list", status)),
	}
	store.AddListener(l.render)
	l.seed(store.Projects())
	return l
}

// render is the store listener.
func (l *ProjectList) render(projects []domain.Project) {
	relevant := l.filter(projects)

	l.mu.Lock()
	l.assigned = relevant
	l.notified = true
	l.mu.Unlock()
}

// seed applies the state read at construction unless a notification has
// already delivered a newer one.
func (l *ProjectList) seed(projects []domain.Project) {
	relevant := l.filter(projects)

	l.mu.Lock()
	if !l.notified {
		l.assigned = relevant
	}
	l.mu.Unlock()
}

func (l *ProjectList) filter(projects []domain.Project) []domain.Project {
	relevant := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status == l.status {
			relevant = append(relevant, p)
		}
	}
	return relevant
}

func (l *ProjectList) Status() domain.Status {
	return l.status
}

// Title is the list heading, e.g. "ACTIVE PROJECTS".
func (l *ProjectList) Title() string {
	return strings.ToUpper(l.status.String()) + " PROJECTS"
}

func (l *ProjectList) ListID() string {
	return l.status.String() + "-projects-list"
}

func (l *ProjectList) Items() []ProjectItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	items := make([]ProjectItem, len(l.assigned))
	for i, p := range l.assigned {
		items[i] = NewProjectItem(p)
	}
	return items
}

func (l *ProjectList) Droppable() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.droppable
}

func (l *ProjectList) DragOver(types []string) bool {
	if !accepts(types) {
		return false
	}
	l.mu.Lock()
	l.droppable = true
	l.mu.Unlock()
	return true
}

func (l *ProjectList) DragLeave() {
	l.mu.Lock()
	l.droppable = false
	l.mu.Unlock()
}

func (l *ProjectList) Drop(p DragPayload) {
	l.DragLeave()
	if p.Type != PayloadType || p.Data == "" {
		l.log.Debug("drop ignored", zap.String("type", p.Type))
		return
	}
	l.store.MoveProject(p.Data, l.status)
}
