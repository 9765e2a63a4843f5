package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/web/templates"
)

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Page(buildBoardView(s.board)).Render(r.Context(), w); err != nil {
		s.log.Error("render board page", zap.Error(err))
	}
}

func (s *Server) handleBoardFragment(w http.ResponseWriter, r *http.Request) {
	s.renderBoardFragment(w, r)
}

func (s *Server) renderBoardFragment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Board(buildBoardView(s.board)).Render(r.Context(), w); err != nil {
		s.log.Error("render board fragment", zap.Error(err))
	}
}
