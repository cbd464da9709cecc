package relay

import (
	"encoding/json"
	"net/http"
)

// Server exposes the relay endpoints over a plain ServeMux.
type Server struct {
	client Client
	mux    *http.ServeMux
}

// NewServer wires the route table. Every data endpoint is a thin forward to
// the client; no state lives in the server itself.
func NewServer(client Client) *Server {
	s := &Server{
		client: client,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /balance/{id}", s.handleBalance)
	s.mux.HandleFunc("POST /payout", s.handleCreatePayout)
	s.mux.HandleFunc("GET /payouts/{id}", s.handleListPayouts)
	s.mux.HandleFunc("GET /transactions/{id}", s.handleListTransactions)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError surfaces validation and SDK errors verbatim with a 400-class
// status; the relay does not classify or retry.
func writeError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
