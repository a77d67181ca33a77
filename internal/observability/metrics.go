package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-process request and error counters, keyed by
// path|method|status (or error code). Enough for the /health surface and log
// correlation; an external metrics backend is deliberately out of scope.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]int64
	errors   map[string]int64
}

// NewMetrics returns empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]int64),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts one handled request.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	m.requests[key]++
	m.mu.Unlock()
}

// RecordError counts one failed request by error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	m.errors[key]++
	m.mu.Unlock()
}
