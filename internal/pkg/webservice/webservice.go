// Package webservice exposes a completed run's result.Result over
// HTTP, and broadcasts new results to connected websocket clients as
// they land.
package webservice

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/ohowland/feems/internal/pkg/result"
)

// Store holds the latest result for each named run, guarded by a
// mutex since handlers and the broadcaster run concurrently with
// whatever goroutine calls Publish.
type Store struct {
	mux     sync.RWMutex
	results map[string]*result.Result

	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]bool
	clientMu sync.Mutex
}

// NewStore constructs an empty result Store.
func NewStore() *Store {
	return &Store{
		results: make(map[string]*result.Result),
		clients: make(map[*websocket.Conn]bool),
	}
}

// Publish records a run's result and pushes it to every connected
// websocket client, called once a batch Run() completes (spec §5:
// single-threaded deterministic batch, no async actor loop).
func (s *Store) Publish(runID string, res *result.Result) {
	s.mux.Lock()
	s.results[runID] = res
	s.mux.Unlock()

	body, err := json.Marshal(res)
	if err != nil {
		log.Println("malformed JSON:", err)
		return
	}

	s.clientMu.Lock()
	defer s.clientMu.Unlock()
	for c := range s.clients {
		if err := c.WriteMessage(websocket.TextMessage, body); err != nil {
			c.Close()
			delete(s.clients, c)
		}
	}
}

func (s *Store) ResultHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	s.mux.RLock()
	res, ok := s.results[vars["runID"]]
	s.mux.RUnlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	body, err := json.Marshal(res)
	if err != nil {
		log.Println("malformed JSON:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Store) StreamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade failed:", err)
		return
	}
	s.clientMu.Lock()
	s.clients[conn] = true
	s.clientMu.Unlock()
}

// Router builds the mux.Router serving a Store's results.
func Router(s *Store) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/runs/stream", s.StreamHandler)
	r.HandleFunc("/runs/{runID}", s.ResultHandler).Methods("GET")
	return r
}
