package relay

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"
)

// DefaultWait is how long a GET blocks for a proof to arrive before
// giving up.
const DefaultWait = 10 * time.Second

// Envelope is the wire form of a proof in transit between a prover and
// a verifier. PublicKey and Proof are hex-encoded.
type Envelope struct {
	Curve     string `json:"curve"`
	SessionID string `json:"session_id"`
	PartyID   uint64 `json:"party_id"`
	PublicKey string `json:"public_key"`
	Proof     string `json:"proof"`
}

// Server is an in-memory rendezvous point for proofs. Each session id
// names a one-shot mailbox: the prover deposits a single envelope with
// POST /proof/{sid}, and the verifier collects it with GET /proof/{sid},
// blocking until it arrives or the wait expires.
type Server struct {
	mu        sync.Mutex
	mailboxes map[string]chan Envelope
	wait      time.Duration
}

func NewServer(wait time.Duration) *Server {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Server{
		mailboxes: make(map[string]chan Envelope),
		wait:      wait,
	}
}

// caller must hold s.mu.
func (s *Server) boxLocked(sid string) chan Envelope {
	ch, ok := s.mailboxes[sid]
	if !ok {
		ch = make(chan Envelope, 1)
		s.mailboxes[sid] = ch
	}
	return ch
}

func (s *Server) box(sid string) chan Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boxLocked(sid)
}

// deposit places env in the session's mailbox, reporting false if an
// envelope is already waiting. An acknowledged envelope is always in
// the mailbox the map points at.
func (s *Server) deposit(sid string, env Envelope) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case s.boxLocked(sid) <- env:
		return true
	default:
		return false
	}
}

// drop removes the session's mailbox if it is empty. A mailbox that
// received a deposit since the collect stays for the next collector.
func (s *Server) drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.mailboxes[sid]; ok && len(ch) == 0 {
		delete(s.mailboxes, sid)
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, "/proof/") {
		http.NotFound(w, r)
		return
	}

	sid := r.URL.Path[len("/proof/"):]
	if sid == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPost:
		s.handlePut(w, r, sid)
	case http.MethodGet:
		s.handleGet(w, r, sid)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request, sid string) {
	defer r.Body.Close()

	var env Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !s.deposit(sid, env) {
		http.Error(w, "proof already deposited", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request, sid string) {
	timer := time.NewTimer(s.wait)
	defer timer.Stop()

	select {
	case env := <-s.box(sid):
		s.drop(sid)
		_ = json.NewEncoder(w).Encode(env)
	case <-timer.C:
		http.Error(w, "timed out waiting for proof", http.StatusRequestTimeout)
	case <-r.Context().Done():
	}
}
