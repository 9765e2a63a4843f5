package board

import (
	"fmt"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

// ProjectItem renders a single project card.
type ProjectItem struct {
	project domain.Project
}

func NewProjectItem(p domain.Project) ProjectItem {
	return ProjectItem{project: p}
}

func (i ProjectItem) Project() domain.Project {
	return i.project
}

func (i ProjectItem) Persons() string {
	if i.project.People == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", i.project.People)
}

func (i ProjectItem) Assigned() string {
	return i.Persons() + " assigned"
}

func (i ProjectItem) DragStart() DragPayload {
	return DragPayload{Type: PayloadType, Data: i.project.ID}
}

func (i ProjectItem) DragEnd() {}
