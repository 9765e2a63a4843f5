package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/board"
	"github.com/emiliopalmerini/projectboard/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router *http.ServeMux
	port   int
	store  board.Store
	board  *board.Board
	hub    *Hub
	log    *zap.Logger

	keepAlive time.Duration
}

// NewServer builds the board views and the event hub on top of store and
// registers them as store listeners.
func NewServer(port int, store board.Store, logger *zap.Logger) *Server {
	s := &Server{
		router:    http.NewServeMux(),
		port:      port,
		store:     store,
		board:     board.New(store, logger),
		hub:       NewHub(logger),
		log:       logger,
		keepAlive: 15 * time.Second,
	}
	store.AddListener(s.hub.Listen)
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleBoard)
	s.router.HandleFunc("GET /fragments/board", s.handleBoardFragment)

	// Mutations
	s.router.HandleFunc("POST /api/projects", s.handleAPICreateProject)
	s.router.HandleFunc("POST /api/lists/{status}/drop", s.handleAPIDrop)

	// Reads
	s.router.HandleFunc("GET /api/projects", s.handleAPIProjects)
	s.router.HandleFunc("GET /events", s.handleEvents)
}

func (s *Server) Handler() http.Handler {
	return middleware.HTMX(middleware.Logging(s.log)(s.router))
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", s.port),
		Handler:     s.Handler(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	s.log.Info("starting server", zap.String("url", fmt.Sprintf("http://localhost:%d", s.port)))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Error("server shutdown error", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}
