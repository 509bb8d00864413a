package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ehrlich-b/cube/internal/history"
)

// Server is the HTTP API in front of the Roux solver: POST a scramble,
// get back the solution and its per-step breakdown.
type Server struct {
	router  *mux.Router
	history *history.SolveRepository
}

// NewServer builds a Server. db may be nil, in which case solves are
// not recorded (the /api/solve handler still works; it just skips
// persistence).
func NewServer(db *history.DB) *Server {
	s := &Server{router: mux.NewRouter()}
	if db != nil {
		s.history = history.NewSolveRepository(db)
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/scramble", s.handleScramble).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// Start runs the server, blocking until it exits (or errors).
func (s *Server) Start(addr string) error {
	log.Printf("cube web: listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
