package board

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/state"
	"github.com/emiliopalmerini/projectboard/internal/validate"
)

var (
	_ Draggable  = ProjectItem{}
	_ DropTarget = (*ProjectList)(nil)
	_ Store      = (*state.Store)(nil)
)

func testBoard(t *testing.T) (*state.Store, *Board) {
	t.Helper()
	s := state.New(state.WithIDGenerator(state.CounterIDs()))
	return s, New(s, zap.NewNop())
}

func ids(items []ProjectItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Project().ID
	}
	return out
}

func TestProjectList_FiltersByOwnStatus(t *testing.T) {
	s, b := testBoard(t)
	s.AddProject("one", "desc", 1)
	s.AddProject("two", "desc", 2)
	s.MoveProject("2", domain.StatusFinished)

	if got := ids(b.Active.Items()); len(got) != 1 || got[0] != "1" {
		t.Errorf("active list = %v, want [1]", got)
	}
	if got := ids(b.Finished.Items()); len(got) != 1 || got[0] != "2" {
		t.Errorf("finished list = %v, want [2]", got)
	}
}

func TestProjectList_SeesProjectsAddedBeforeConstruction(t *testing.T) {
	s := state.New(state.WithIDGenerator(state.CounterIDs()))
	s.AddProject("early", "desc", 1)

	l := NewProjectList(s, domain.StatusActive, zap.NewNop())

	if got := ids(l.Items()); len(got) != 1 || got[0] != "1" {
		t.Errorf("items = %v, want [1]", got)
	}
}

// racingStore delivers a newer snapshot to listeners while Projects is
// reading, then returns the older one.
type racingStore struct {
	listener state.Listener
	stale    []domain.Project
	newer    []domain.Project
}

func (r *racingStore) AddProject(title, description string, people int) {}
func (r *racingStore) MoveProject(id string, status domain.Status) {}
func (r *racingStore) AddListener(fn state.Listener) { r.listener = fn }

func (r *racingStore) Projects() []domain.Project {
	r.listener(r.newer)
	return r.stale
}

func TestProjectList_InitialStateDoesNotOverwriteNewerNotification(t *testing.T) {
	s := &racingStore{
		stale: []domain.Project{domain.NewProject("1", "t", "d", 1)},
		newer: []domain.Project{domain.NewProject("1", "t", "d", 1), domain.NewProject("2", "t", "d", 1)},
	}

	l := NewProjectList(s, domain.StatusActive, zap.NewNop())

	if got := ids(l.Items()); len(got) != 2 {
		t.Errorf("items = %v, want [1 2]", got)
	}
}

func TestProjectList_Labels(t *testing.T) {
	_, b := testBoard(t)

	if b.Active.Title() != "ACTIVE PROJECTS" {
		t.Errorf("unexpected title %q", b.Active.Title())
	}
	if b.Finished.ListID() != "finished-projects-list" {
		t.Errorf("unexpected list id %q", b.Finished.ListID())
	}
}

func TestProjectList_DropMovesProject(t *testing.T) {
	s, b := testBoard(t)
	s.AddProject("one", "desc", 1)

	item := b.Active.Items()[0]
	payload := item.DragStart()
	if !b.Finished.DragOver([]string{payload.Type}) {
		t.Fatal("finished list should accept text/plain payload")
	}
	if !b.Finished.Droppable() {
		t.Error("expected droppable highlight after drag over")
	}

	b.Finished.Drop(payload)

	if b.Finished.Droppable() {
		t.Error("expected highlight cleared after drop")
	}
	if len(b.Active.Items()) != 0 {
		t.Errorf("expected empty active list, got %d", len(b.Active.Items()))
	}
	if got := ids(b.Finished.Items()); len(got) != 1 || got[0] != "1" {
		t.Errorf("finished list = %v, want [1]", got)
	}
}

func TestProjectList_RejectsOtherPayloadTypes(t *testing.T) {
	s, b := testBoard(t)
	s.AddProject("one", "desc", 1)

	if b.Finished.DragOver([]string{"text/html"}) {
		t.Error("expected text/html to be rejected")
	}
	if b.Finished.DragOver(nil) {
		t.Error("expected empty types to be rejected")
	}
	if b.Finished.Droppable() {
		t.Error("rejected drag should not highlight")
	}

	b.Finished.Drop(DragPayload{Type: "text/html", Data: "1"})
	if len(b.Finished.Items()) != 0 {
		t.Error("drop with wrong type should not move the project")
	}
}

func TestProjectList_DragLeaveClearsHighlight(t *testing.T) {
	_, b := testBoard(t)
	b.Active.DragOver([]string{PayloadType})
	b.Active.DragLeave()

	if b.Active.Droppable() {
		t.Error("expected highlight cleared")
	}
}

func TestProjectItem_Persons(t *testing.T) {
	tests := []struct {
		people int
		want   string
	}{
		{1, "1 person"},
		{2, "2 people"},
		{5, "5 people"},
	}
	for _, tt := range tests {
		item := NewProjectItem(domain.NewProject("x", "t", "d", tt.people))
		if got := item.Persons(); got != tt.want {
			t.Errorf("Persons() for %d = %q, want %q", tt.people, got, tt.want)
		}
	}

	item := NewProjectItem(domain.NewProject("x", "t", "d", 1))
	if item.Assigned() != "1 person assigned" {
		t.Errorf("unexpected assigned label %q", item.Assigned())
	}
}

func TestProjectInput_Submit(t *testing.T) {
	s, b := testBoard(t)

	_, err := b.Input.Submit(validate.ProjectForm{Title: "Build API", Description: "backend work", People: "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = b.Input.Submit(validate.ProjectForm{Title: "", Description: "backend work", People: "3"})
	if !errors.Is(err, validate.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	projects := s.Projects()
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].People != 3 || projects[0].Status != domain.StatusActive {
		t.Errorf("unexpected project %+v", projects[0])
	}
}

func TestBoard_List(t *testing.T) {
	_, b := testBoard(t)

	l, ok := b.List(domain.StatusFinished)
	if !ok || l != b.Finished {
		t.Error("expected finished list")
	}
	if _, ok := b.List(domain.Status(9)); ok {
		t.Error("expected no list for unknown status")
	}
}
