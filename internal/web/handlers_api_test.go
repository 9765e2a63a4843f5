package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

func postForm(t *testing.T, s *Server, path string, values url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func validForm() url.Values {
	return url.Values{
		"title":       {"Build API"},
		"description": {"backend work"},
		"people":      {"3"},
	}
}

func TestHandleAPICreateProject(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		htmx       bool
		wantStatus int
		wantCount  int
	}{
		{"form post redirects", validForm(), false, http.StatusSeeOther, 1},
		{"htmx post renders board", validForm(), true, http.StatusOK, 1},
		{
			name:       "invalid people",
			form:       url.Values{"title": {"t"}, "description": {"desc"}, "people": {"9"}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing title",
			form:       url.Values{"description": {"desc"}, "people": {"1"}},
			htmx:       true,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := testServer(t)

			rr := postForm(t, s, "/api/projects", tt.form, tt.htmx)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Len(t, store.Projects(), tt.wantCount)
			if tt.htmx && tt.wantStatus == http.StatusOK {
				assert.Contains(t, rr.Body.String(), `<div id="board">`)
				assert.Contains(t, rr.Body.String(), "Build API")
			}
		})
	}
}

func TestHandleAPICreateProject_JSON(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"Build API","description":"backend work","people":3}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp projectsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "1", resp.Projects[0].ID)
	assert.Equal(t, domain.StatusActive, resp.Projects[0].Status)
	assert.Equal(t, 3, resp.Projects[0].People)
}

func TestHandleAPICreateProject_BadJSON(t *testing.T) {
	s, store := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, store.Projects())
}

func TestHandleAPIDrop(t *testing.T) {
	s, store := testServer(t)
	store.AddProject("Build API", "backend work", 3)

	rr := postForm(t, s, "/api/lists/finished/drop", url.Values{"type": {"text/plain"}, "data": {"1"}}, false)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	p, ok := store.Get("1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusFinished, p.Status)
	assert.Len(t, s.board.Finished.Items(), 1)
	assert.Empty(t, s.board.Active.Items())
}

func TestHandleAPIDrop_HTMXRendersBoard(t *testing.T) {
	s, store := testServer(t)
	store.AddProject("Build API", "backend work", 3)

	rr := postForm(t, s, "/api/lists/finished/drop", url.Values{"type": {"text/plain"}, "data": {"1"}}, true)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	finished := strings.Index(body, `id="finished-projects"`)
	item := strings.Index(body, `data-project-id="1"`)
	assert.True(t, finished >= 0 && item > finished, "project should render in the finished list")
}

func TestHandleAPIDrop_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		form       url.Values
		wantStatus int
	}{
		{"unknown list", "/api/lists/archived/drop", url.Values{"type": {"text/plain"}, "data": {"1"}}, http.StatusNotFound},
		{"wrong payload type", "/api/lists/finished/drop", url.Values{"type": {"text/html"}, "data": {"1"}}, http.StatusUnsupportedMediaType},
		{"unknown project is silent", "/api/lists/finished/drop", url.Values{"type": {"text/plain"}, "data": {"nope"}}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := testServer(t)
			store.AddProject("Build API", "backend work", 3)

			rr := postForm(t, s, tt.path, tt.form, false)

			assert.Equal(t, tt.wantStatus, rr.Code)
			p, _ := store.Get("1")
			assert.Equal(t, domain.StatusActive, p.Status)
			assert.False(t, s.board.Finished.Droppable())
		})
	}
}

func TestHandleAPIDrag_HighlightIsClientSide(t *testing.T) {
	s, _ := testServer(t)

	for _, path := range []string{"/api/lists/active/dragover", "/api/lists/active/dragleave"} {
		rr := postForm(t, s, path, url.Values{"type": {"text/plain"}}, false)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
	assert.False(t, s.board.Active.Droppable())
}

func TestHandleAPIProjects(t *testing.T) {
	s, store := testServer(t)
	store.AddProject("one", "desc", 1)
	store.AddProject("two", "desc", 2)
	store.MoveProject("2", domain.StatusFinished)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var raw struct {
		Projects []map[string]any `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Len(t, raw.Projects, 2)
	assert.Equal(t, "one", raw.Projects[0]["title"])
	assert.Equal(t, "active", raw.Projects[0]["status"])
	assert.Equal(t, "finished", raw.Projects[1]["status"])
}

func TestHandleBoard(t *testing.T) {
	s, store := testServer(t)
	store.AddProject("Build API", "backend <b>work</b>", 1)

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "ACTIVE PROJECTS")
	assert.Contains(t, body, "FINISHED PROJECTS")
	assert.Contains(t, body, "1 person assigned")
	assert.Contains(t, body, "backend &lt;b&gt;work&lt;/b&gt;")
}
