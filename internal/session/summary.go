package session

import (
	"time"

	"github.com/abhisek/mathbuddy/internal/curriculum"
	"github.com/abhisek/mathbuddy/internal/problemgen"
)

// TopicResult tracks per-topic performance within a session.
type TopicResult struct {
	Topic     problemgen.Topic
	Name      string
	Attempted int
	Correct   int
}

// Summary holds the data displayed at the end of a session.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       int // percent
	BestStreak     int
	TimeSpent      time.Duration
	TopicResults   []TopicResult
}

// Summary builds a Summary from the current stats and the retained history.
func (s *Session) Summary() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTopic := make(map[problemgen.Topic]*TopicResult)
	for _, h := range s.history {
		tr := byTopic[h.Problem.Topic]
		if tr == nil {
			tr = &TopicResult{Topic: h.Problem.Topic, Name: curriculum.TopicName(h.Problem.Topic)}
			byTopic[h.Problem.Topic] = tr
		}
		tr.Attempted++
		if h.Correct {
			tr.Correct++
		}
	}

	var results []TopicResult
	for _, t := range s.stats.TopicsStudied {
		if tr, ok := byTopic[t]; ok {
			results = append(results, *tr)
		}
	}

	return &Summary{
		SessionID:      s.ID,
		Duration:       s.now().Sub(s.startTime),
		TotalQuestions: s.stats.TotalProblems,
		TotalCorrect:   s.stats.CorrectAnswers,
		Accuracy:       accuracyPercent(s.stats.CorrectAnswers, s.stats.TotalProblems),
		BestStreak:     s.stats.BestStreak,
		TimeSpent:      s.stats.TimeSpent,
		TopicResults:   results,
	}
}
