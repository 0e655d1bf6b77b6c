package session

import (
	"github.com/abhisek/mathbuddy/internal/problemgen"
)

// DefaultHistoryLimit is the number of entries RecentHistory returns for a
// non-positive limit.
const DefaultHistoryLimit = 10

// RecentHistory returns up to limit entries, newest first.
func (s *Session) RecentHistory(limit int) []HistoryEntry {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(limit, len(s.history))
	out := make([]HistoryEntry, n)
	copy(out, s.history[:n])
	return out
}

// HistoryByTopic returns the entries for topic, newest first.
func (s *Session) HistoryByTopic(topic problemgen.Topic) []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []HistoryEntry
	for _, h := range s.history {
		if h.Problem.Topic == topic {
			out = append(out, h)
		}
	}
	return out
}

// ClearHistory drops every history entry.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}
