// Package tracker mirrors the browser extension's content script: it tracks
// time spent on gambling-like pages and reports events to the backend as
// best-effort telemetry.
package tracker

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/betshield/betshield-backend/internal/classifier"
)

const (
	DefaultBackendURL = "http://localhost:8080"

	defaultInterval = 5 * time.Second
)

type Option func(*Tracker)

func WithHTTPClient(client *http.Client) Option {
	return func(t *Tracker) { t.client = client }
}

func WithInterval(interval time.Duration) Option {
	return func(t *Tracker) { t.interval = interval }
}

func WithUserID(userID string) Option {
	return func(t *Tracker) { t.userID = userID }
}

type Tracker struct {
	backendURL string
	interval   time.Duration
	client     *http.Client
	userID     string
}

func New(backendURL string, opts ...Option) *Tracker {
	if backendURL == "" {
		backendURL = DefaultBackendURL
	}

	t := &Tracker{
		backendURL: backendURL,
		interval:   defaultInterval,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Session is one tracked page visit. It moves from running to stopped once;
// Stop is idempotent.
type Session struct {
	tracker   *Tracker
	sessionID string
	domain    string
	url       string

	mu      sync.Mutex
	seconds float64
	stopped bool

	ticker *time.Ticker
	done   chan struct{}
}

// Start begins a tracked session for the page. It returns nil when the page
// does not match a gambling keyword; no events are emitted in that case.
//
// On a match it emits visit_start immediately, a one-shot threat event if a
// structural heuristic fired on the initial page state, and then time_update
// every interval. The heuristics are not re-evaluated during the session.
func (t *Tracker) Start(page classifier.Page) *Session {
	result := classifier.Classify(page)
	if !result.IsMatch {
		return nil
	}

	s := &Session{
		tracker:   t,
		sessionID: newSessionID(),
		domain:    page.Hostname,
		url:       page.URL,
		ticker:    time.NewTicker(t.interval),
		done:      make(chan struct{}),
	}

	s.emit("visit_start", map[string]interface{}{})

	if result.Threat != nil {
		s.emit("threat", map[string]interface{}{
			"reason": result.Threat.Reason,
			"meta":   result.Threat,
		})
	}

	go s.loop()

	return s
}

// Stop cancels the timer and emits visit_end with the accumulated total.
// The send is fire-and-forget, so Stop never blocks on the network.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	total := s.seconds
	s.mu.Unlock()

	s.ticker.Stop()
	close(s.done)

	s.emit("visit_end", map[string]interface{}{"totalSeconds": total})
}

func (s *Session) loop() {
	increment := s.tracker.interval.Seconds()

	for {
		select {
		case <-s.ticker.C:
			s.mu.Lock()
			if s.stopped {
				s.mu.Unlock()
				return
			}
			s.seconds += increment
			s.mu.Unlock()

			// seconds carries the increment, not the running total
			s.emit("time_update", map[string]interface{}{"seconds": increment})
		case <-s.done:
			return
		}
	}
}

// emit posts one event to the log endpoint in a background goroutine.
// Failures are swallowed: these are best-effort telemetry records, not
// transactional writes, and they are never retried.
func (s *Session) emit(event string, payload map[string]interface{}) {
	body := map[string]interface{}{
		"event":     event,
		"sessionId": s.sessionID,
		"domain":    s.domain,
		"url":       s.url,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if s.tracker.userID != "" {
		body["userId"] = s.tracker.userID
	}
	for k, v := range payload {
		body[k] = v
	}

	go func() {
		data, err := json.Marshal(body)
		if err != nil {
			return
		}

		resp, err := s.tracker.client.Post(
			s.tracker.backendURL+"/api/extension/log",
			"application/json",
			bytes.NewReader(data),
		)
		if err != nil {
			return
		}
		resp.Body.Close()
	}()
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func newSessionID() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			suffix[i] = '0'
			continue
		}
		suffix[i] = base36[n.Int64()]
	}

	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + string(suffix)
}
