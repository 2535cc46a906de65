package testutils

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// CatalogServer is a scripted stand-in for the remote catalog. Paths that
// were never registered answer 404.
type CatalogServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	hits      map[string]int
}

type cannedResponse struct {
	status int
	body   string
	delay  time.Duration
}

// NewCatalogServer starts a catalog server that is closed with the test
func NewCatalogServer(t *testing.T) *CatalogServer {
	s := &CatalogServer{
		responses: make(map[string]cannedResponse),
		hits:      make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers a 200 response for a request URI such as "/pokemon/pikachu/"
func (s *CatalogServer) Handle(uri, body string) {
	s.HandleStatus(uri, http.StatusOK, body)
}

// HandleStatus registers a response with an explicit status code
func (s *CatalogServer) HandleStatus(uri string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[uri] = cannedResponse{status: status, body: body}
}

// HandleSlow registers a response that is only written after delay, or never
// if the client gives up first
func (s *CatalogServer) HandleSlow(uri string, delay time.Duration, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[uri] = cannedResponse{status: http.StatusOK, body: body, delay: delay}
}

// Hits returns how many times uri was requested
func (s *CatalogServer) Hits(uri string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[uri]
}

// TotalHits returns the number of requests served
func (s *CatalogServer) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

// BaseURL returns the root the catalog client should be configured with
func (s *CatalogServer) BaseURL() string {
	return s.URL + "/"
}

func (s *CatalogServer) serve(w http.ResponseWriter, r *http.Request) {
	uri := r.URL.RequestURI()

	s.mu.Lock()
	s.hits[uri]++
	resp, ok := s.responses[uri]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
