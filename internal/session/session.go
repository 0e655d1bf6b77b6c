package session

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathbuddy/internal/curriculum"
	"github.com/abhisek/mathbuddy/internal/problemgen"
)

// ErrNoProblem is returned by Submit when no problem is being shown.
var ErrNoProblem = errors.New("session: no current problem")

// Session is an in-memory practice session: a navigable queue of problems,
// running stats and answer history. It is safe for concurrent use.
type Session struct {
	// ID is the UUID for this session.
	ID string

	mu sync.Mutex

	yearLevel   problemgen.YearLevel
	difficulty  problemgen.Difficulty
	topic       problemgen.Topic
	revealAfter int

	source Source
	rnd    *rand.Rand
	now    func() time.Time

	// queue holds every problem shown; index points at the current one.
	queue []problemgen.Problem
	index int

	// attempts and problemStart track the current problem.
	attempts     int
	problemStart time.Time

	startTime time.Time
	stats     Stats
	history   []HistoryEntry
}

// New creates a session. Out-of-range options are normalized: the year level
// is clamped and an unknown difficulty becomes easy.
func New(opts Options) (*Session, error) {
	if opts.Topic != "" && !opts.Topic.Valid() {
		return nil, fmt.Errorf("unknown topic %q", opts.Topic)
	}
	if opts.Difficulty == "" {
		opts.Difficulty = problemgen.DifficultyEasy
	}
	if !opts.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", opts.Difficulty)
	}
	if opts.RevealAfter == 0 {
		opts.RevealAfter = DefaultRevealAfter
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(opts.Now().UnixNano())
	}
	if opts.Source == nil {
		opts.Source = problemgen.New(problemgen.Config{Seed: seed})
	}

	return &Session{
		ID:          uuid.NewString(),
		yearLevel:   problemgen.ClampYearLevel(opts.YearLevel),
		difficulty:  opts.Difficulty,
		topic:       opts.Topic,
		revealAfter: opts.RevealAfter,
		source:      opts.Source,
		rnd:         rand.New(rand.NewPCG(seed, seed>>1|1)),
		now:         opts.Now,
		startTime:   opts.Now(),
	}, nil
}

// YearLevel returns the session's year level.
func (s *Session) YearLevel() problemgen.YearLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yearLevel
}

// SetYearLevel changes the level for new problems and clears a pinned topic.
func (s *Session) SetYearLevel(y problemgen.YearLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yearLevel = problemgen.ClampYearLevel(y)
	s.topic = ""
}

// SetDifficulty changes the difficulty for new problems.
func (s *Session) SetDifficulty(d problemgen.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("unknown difficulty %q", d)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.difficulty = d
	return nil
}

// SetTopic pins new problems to topic. Empty returns to random topics.
func (s *Session) SetTopic(t problemgen.Topic) error {
	if t != "" && !t.Valid() {
		return fmt.Errorf("unknown topic %q", t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topic = t
	return nil
}

// NewProblem generates a problem, drops any problems ahead of the current
// one and makes the new problem current.
func (s *Session) NewProblem() problemgen.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newProblemLocked()
}

func (s *Session) newProblemLocked() problemgen.Problem {
	topic := s.topic
	if topic == "" {
		topic = curriculum.PickTopic(s.yearLevel, s.rnd)
	}
	p := s.source.Generate(topic, s.yearLevel, s.difficulty)

	if len(s.queue) > 0 {
		s.queue = s.queue[:s.index+1]
	}
	s.queue = append(s.queue, p)
	s.index = len(s.queue) - 1
	s.resetAttemptLocked()
	return p
}

// Next moves to the following problem in the queue, generating one when the
// current problem is the last.
func (s *Session) Next() problemgen.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < len(s.queue)-1 {
		s.index++
		s.resetAttemptLocked()
		return s.queue[s.index]
	}
	return s.newProblemLocked()
}

// Previous moves back one problem. It reports false at the start of the queue.
func (s *Session) Previous() (problemgen.Problem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == 0 || len(s.queue) == 0 {
		return problemgen.Problem{}, false
	}
	s.index--
	s.resetAttemptLocked()
	return s.queue[s.index], true
}

// Skip moves on without revealing the answer.
func (s *Session) Skip() problemgen.Problem {
	return s.Next()
}

// Current returns the problem being shown.
func (s *Session) Current() (problemgen.Problem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return problemgen.Problem{}, false
	}
	return s.queue[s.index], true
}

// Position returns the 1-based index of the current problem and the queue length.
func (s *Session) Position() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return 0, 0
	}
	return s.index + 1, len(s.queue)
}

func (s *Session) resetAttemptLocked() {
	s.attempts = 0
	s.problemStart = s.now()
}

// Submit checks raw against the current problem, updates stats and records
// a history entry. Every submission counts toward the totals.
func (s *Session) Submit(raw string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return Result{}, ErrNoProblem
	}
	p := s.queue[s.index]
	correct := problemgen.CheckAnswer(&p, raw)

	now := s.now()
	spent := now.Sub(s.problemStart).Round(time.Second)
	if spent < 0 {
		spent = 0
	}
	s.attempts++

	st := &s.stats
	st.TotalProblems++
	if correct {
		st.CorrectAnswers++
		st.CurrentStreak++
	} else {
		st.CurrentStreak = 0
	}
	st.BestStreak = max(st.BestStreak, st.CurrentStreak)
	if !slices.Contains(st.TopicsStudied, p.Topic) {
		st.TopicsStudied = append(st.TopicsStudied, p.Topic)
	}
	st.TimeSpent += spent

	entry := HistoryEntry{
		ID:         uuid.NewString(),
		Problem:    p,
		UserAnswer: raw,
		Correct:    correct,
		Timestamp:  now,
		TimeSpent:  spent,
	}
	s.history = append([]HistoryEntry{entry}, s.history...)
	if len(s.history) > MaxHistory {
		s.history = s.history[:MaxHistory]
	}

	res := Result{
		Correct:  correct,
		Attempts: s.attempts,
		Streak:   st.CurrentStreak,
		Reveal:   !correct && s.revealAfter > 0 && s.attempts >= s.revealAfter,
	}
	if correct || res.Reveal {
		res.Answer = p.Answer.String()
	}
	return res, nil
}

// Stats returns a copy of the running totals.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stats
	st.TopicsStudied = slices.Clone(s.stats.TopicsStudied)
	return st
}

// Accuracy returns the percentage of correct answers, rounded, or 0 before
// any answer.
func (s *Session) Accuracy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return accuracyPercent(s.stats.CorrectAnswers, s.stats.TotalProblems)
}

func accuracyPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// ResetStats zeroes the running totals. History is kept.
func (s *Session) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = Stats{}
}

// Reset clears the queue and the stats, starting the session over.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = nil
	s.index = 0
	s.attempts = 0
	s.stats = Stats{}
	s.startTime = s.now()
}
