package entity

import "encoding/json"

// Event types emitted by the extension content script.
const (
	EventVisitStart = "visit_start"
	EventVisitEnd   = "visit_end"
	EventTimeUpdate = "time_update"
	EventThreat     = "threat"
)

// LogEntry is one append-only record in the extension event log. Known
// fields are extracted on decode; any other keys the client sends (for
// example totalSeconds on visit_end, or the type tag on eval records) are
// kept opaquely in Extra and written back verbatim.
type LogEntry struct {
	ID        string
	Timestamp string
	Event     string
	SessionID string
	Domain    string
	URL       string
	Seconds   *float64
	UserID    *string
	Meta      map[string]interface{}
	Extra     map[string]interface{}
}

func (e LogEntry) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(e.Extra)+9)
	for k, v := range e.Extra {
		m[k] = v
	}
	if e.ID != "" {
		m["id"] = e.ID
	}
	if e.Timestamp != "" {
		m["timestamp"] = e.Timestamp
	}
	if e.Event != "" {
		m["event"] = e.Event
	}
	if e.SessionID != "" {
		m["sessionId"] = e.SessionID
	}
	if e.Domain != "" {
		m["domain"] = e.Domain
	}
	if e.URL != "" {
		m["url"] = e.URL
	}
	if e.Seconds != nil {
		m["seconds"] = *e.Seconds
	}
	if e.UserID != nil {
		m["userId"] = *e.UserID
	}
	if e.Meta != nil {
		m["meta"] = e.Meta
	}
	return json.Marshal(m)
}

func (e *LogEntry) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	if v, ok := m["id"].(string); ok {
		e.ID = v
		delete(m, "id")
	}
	if v, ok := m["timestamp"].(string); ok {
		e.Timestamp = v
		delete(m, "timestamp")
	}
	if v, ok := m["event"].(string); ok {
		e.Event = v
		delete(m, "event")
	}
	if v, ok := m["sessionId"].(string); ok {
		e.SessionID = v
		delete(m, "sessionId")
	}
	if v, ok := m["domain"].(string); ok {
		e.Domain = v
		delete(m, "domain")
	}
	if v, ok := m["url"].(string); ok {
		e.URL = v
		delete(m, "url")
	}
	// seconds only counts toward aggregation when it is an actual number;
	// anything else stays in Extra untouched.
	if v, ok := m["seconds"].(float64); ok {
		e.Seconds = &v
		delete(m, "seconds")
	}
	if v, ok := m["userId"].(string); ok {
		e.UserID = &v
		delete(m, "userId")
	}
	if v, ok := m["meta"].(map[string]interface{}); ok {
		e.Meta = v
		delete(m, "meta")
	}
	if len(m) > 0 {
		e.Extra = m
	} else {
		e.Extra = nil
	}
	return nil
}

// DomainStats is the per-domain rollup computed on every stats read. It is
// derived, never stored.
type DomainStats struct {
	Visits    int     `json:"visits"`
	TimeSpent float64 `json:"timeSpent"`
}

type ExtensionStats struct {
	TotalTimeSeconds float64                `json:"totalTimeSeconds"`
	ThreatsDetected  int                    `json:"threatsDetected"`
	Domains          map[string]DomainStats `json:"domains"`
}

type ExtensionStatsMeta struct {
	TotalEntries int `json:"totalEntries"`
}
