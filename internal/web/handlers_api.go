package web

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/board"
	"github.com/emiliopalmerini/projectboard/internal/domain"
	"github.com/emiliopalmerini/projectboard/internal/shared/middleware"
	"github.com/emiliopalmerini/projectboard/internal/validate"
)

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func (s *Server) handleAPICreateProject(w http.ResponseWriter, r *http.Request) {
	var form validate.ProjectForm
	if isJSON(r) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		form = validate.ProjectForm{
			Title:       req.Title,
			Description: req.Description,
			People:      strconv.Itoa(req.People),
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		form = validate.ProjectForm{
			Title:       r.PostFormValue("title"),
			Description: r.PostFormValue("description"),
			People:      r.PostFormValue("people"),
		}
	}

	input, err := s.board.Input.Submit(form)
	if err != nil {
		if errors.Is(err, validate.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.log.Error("submit project", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.log.Info("project submitted", zap.String("title", input.Title), zap.Int("people", input.People))

	switch {
	case isJSON(r):
		writeJSON(w, http.StatusCreated, newProjectsResponse(s.store.Projects()))
	case middleware.IsHTMX(r):
		s.renderBoardFragment(w, r)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// listFromPath resolves the {status} path value. It writes a 404 and
// returns false when the status names no list.
func (s *Server) listFromPath(w http.ResponseWriter, r *http.Request) (*board.ProjectList, bool) {
	status, err := domain.ParseStatus(r.PathValue("status"))
	if err != nil {
		http.Error(w, "unknown list", http.StatusNotFound)
		return nil, false
	}
	list, ok := s.board.List(status)
	if !ok {
		http.Error(w, "unknown list", http.StatusNotFound)
		return nil, false
	}
	return list, true
}

func (s *Server) handleAPIDrop(w http.ResponseWriter, r *http.Request) {
	list, ok := s.listFromPath(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	payload := board.DragPayload{
		Type: r.PostFormValue("type"),
		Data: r.PostFormValue("data"),
	}
	if !list.DragOver([]string{payload.Type}) {
		list.DragLeave()
		http.Error(w, "unsupported drag payload", http.StatusUnsupportedMediaType)
		return
	}
	list.Drop(payload)
	s.log.Debug("project dropped", zap.String("project_id", payload.Data), zap.Stringer("list", list.Status()))

	if middleware.IsHTMX(r) {
		s.renderBoardFragment(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newProjectsResponse(s.store.Projects()))
}
