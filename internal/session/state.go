package session

import (
	"time"

	"github.com/abhisek/mathbuddy/internal/problemgen"
)

// MaxHistory is the number of history entries kept, newest first.
const MaxHistory = 100

// DefaultRevealAfter is the number of wrong attempts on one problem before
// its answer is revealed.
const DefaultRevealAfter = 3

// Source produces problems. *problemgen.Generator satisfies it.
type Source interface {
	Generate(topic problemgen.Topic, yearLevel problemgen.YearLevel, difficulty problemgen.Difficulty) problemgen.Problem
}

// Options configures a Session.
type Options struct {
	YearLevel  problemgen.YearLevel
	Difficulty problemgen.Difficulty

	// Topic pins every problem to one topic. Empty picks a random topic
	// from the level's menu for each new problem.
	Topic problemgen.Topic

	// RevealAfter is the number of wrong attempts before Result.Reveal is
	// set. Zero uses DefaultRevealAfter; negative never reveals.
	RevealAfter int

	// Source generates problems. Nil uses a clock-seeded generator.
	Source Source

	// Seed drives the random topic choice. Zero seeds from the clock.
	Seed uint64

	// Now is the clock used for timing. Nil uses time.Now.
	Now func() time.Time
}

// Stats are the running totals for a session.
type Stats struct {
	TotalProblems  int
	CorrectAnswers int
	CurrentStreak  int
	BestStreak     int
	TopicsStudied  []problemgen.Topic // in first-answered order
	TimeSpent      time.Duration
}

// HistoryEntry records one submitted answer.
type HistoryEntry struct {
	ID         string
	Problem    problemgen.Problem
	UserAnswer string
	Correct    bool
	Timestamp  time.Time
	TimeSpent  time.Duration
}

// Result is the outcome of a Submit.
type Result struct {
	Correct bool

	// Attempts is the number of submissions on the current problem,
	// including this one.
	Attempts int

	// Streak is the current run of correct answers after this submission.
	Streak int

	// Reveal is true when the learner has used up their attempts and the
	// answer and explanation should be shown.
	Reveal bool

	// Answer is the canonical answer, for display after a correct answer or
	// a reveal.
	Answer string
}
