package web

import (
	"encoding/json"
	"net/http"

	"github.com/emiliopalmerini/projectboard/internal/board"
	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/web/templates"
)

// buildBoardView converts the board view models into template data.
func buildBoardView(b *board.Board) templates.BoardView {
	lists := b.Lists()
	view := templates.BoardView{Lists: make([]templates.ListView, 0, len(lists))}
	for _, l := range lists {
		view.Lists = append(view.Lists, buildListView(l))
	}
	return view
}

func buildListView(l *board.ProjectList) templates.ListView {
	items := l.Items()
	lv := templates.ListView{
		Status: l.Status().String(),
		Title:  l.Title(),
		ListID: l.ListID(),
		Items:  make([]templates.ItemView, 0, len(items)),
	}
	for _, it := range items {
		p := it.Project()
		lv.Items = append(lv.Items, templates.ItemView{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Assigned:    it.Assigned(),
		})
	}
	return lv
}

type projectsResponse struct {
	Projects []domain.Project `json:"projects"`
}

func newProjectsResponse(projects []domain.Project) projectsResponse {
	if projects == nil {
		projects = []domain.Project{}
	}
	return projectsResponse{Projects: projects}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
