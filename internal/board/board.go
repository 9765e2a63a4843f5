// Package board holds the view models of the project board: the input form
// and one list per status. Every view receives the store explicitly.
package board

import (
	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

type Board struct {
	Input    *ProjectInput
	Active   *ProjectList
	Finished *ProjectList
}

func New(store Store, logger *zap.Logger) *Board {
	return &Board{
		Input:    NewProjectInput(store),
		Active:   NewProjectList(store, domain.StatusActive, logger),
		Finished: NewProjectList(store, domain.StatusFinished, logger),
	}
}

func (b *Board) Lists() []*ProjectList {
	return []*ProjectList{b.Active, b.Finished}
}

func (b *Board) List(status domain.Status) (*ProjectList, bool) {
	for _, l := range b.Lists() {
		if l.Status() == status {
			return l, true
		}
	}
	return nil, false
}
