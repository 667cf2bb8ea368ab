// Package fakeapi is an in-memory stand-in for the awards backend. It speaks
// the same REST contract as the real service, including its per-entity
// response envelopes, and is used by tests and by `podium fakeapi`.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/five82/podium/internal/api"
)

const (
	maxUploadMemory = 32 << 20
	cdnBase         = "https://cdn.podium.test"
)

// Server holds backend state. The zero value is not usable; call New.
type Server struct {
	mu       sync.Mutex
	aboutUs  []api.AboutUsEntry
	sponsors []api.Sponsor
	nominees []api.Nominee

	now      func() time.Time
	newID    func() string
	requests atomic.Int64
	failNext atomic.Pointer[failure]
}

type failure struct {
	status  int
	message string
}

// New returns an empty backend.
func New() *Server {
	return &Server{
		now:   time.Now,
		newID: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:24] },
	}
}

// Requests returns how many requests the server has received.
func (s *Server) Requests() int64 {
	return s.requests.Load()
}

// FailNext makes the next request answer with status and a {message} body.
func (s *Server) FailNext(status int, message string) {
	s.failNext.Store(&failure{status: status, message: message})
}

// SeedAboutUs replaces the stored About Us entries.
func (s *Server) SeedAboutUs(entries ...api.AboutUsEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aboutUs = append([]api.AboutUsEntry(nil), entries...)
}

// SeedSponsors replaces the stored sponsors.
func (s *Server) SeedSponsors(sponsors ...api.Sponsor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sponsors = s.sponsors[:0]
	for _, sp := range sponsors {
		s.sponsors = append(s.sponsors, sp.Clone())
	}
}

// SeedNominees replaces the stored nominees.
func (s *Server) SeedNominees(nominees ...api.Nominee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nominees = s.nominees[:0]
	for _, n := range nominees {
		s.nominees = append(s.nominees, n.Clone())
	}
}

// Handler returns the HTTP router for the backend.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.countAndFail)

	r.HandleFunc("/api/aboutus", s.listAboutUs).Methods(http.MethodGet)
	r.HandleFunc("/api/aboutus", s.createAboutUs).Methods(http.MethodPost)
	r.HandleFunc("/api/aboutus/{id}", s.updateAboutUs).Methods(http.MethodPut)
	r.HandleFunc("/api/aboutus/{id}", s.deleteAboutUs).Methods(http.MethodDelete)

	r.HandleFunc("/api/sponsor", s.listSponsors).Methods(http.MethodGet)
	r.HandleFunc("/api/sponsor", s.createSponsor).Methods(http.MethodPost)
	r.HandleFunc("/api/sponsor/{id}", s.updateSponsor).Methods(http.MethodPut)
	r.HandleFunc("/api/sponsor/{id}", s.deleteSponsor).Methods(http.MethodDelete)

	r.HandleFunc("/api/nominee", s.listNominees).Methods(http.MethodGet)
	r.HandleFunc("/api/nominee", s.createNominee).Methods(http.MethodPost)
	r.HandleFunc("/api/nominee/{id}", s.updateNominee).Methods(http.MethodPut)
	r.HandleFunc("/api/nominee/{id}", s.deleteNominee).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "route not found")
	})
	return r
}

func (s *Server) countAndFail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		if f := s.failNext.Swap(nil); f != nil {
			writeMessage(w, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *Server) uploadURL(kind, filename string) (string, string) {
	publicID := kind + "/" + s.newID()
	return fmt.Sprintf("%s/%s/%s", cdnBase, publicID, filename), publicID
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func decodeJSON(r *http.Request, dest any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
