package problemgen

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator produces math problems from random operand draws.
// It is safe for concurrent use.
type Generator struct {
	cfg Config

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a Generator. A zero Seed draws from the clock.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		cfg: cfg.withDefaults(),
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

var defaultGenerator = New(DefaultConfig())

// Generate produces a problem with the package default generator.
func Generate(topic Topic, yearLevel YearLevel, difficulty Difficulty) Problem {
	return defaultGenerator.Generate(topic, yearLevel, difficulty)
}

// Generate produces a problem for the topic, year level and difficulty.
// It never fails: the year level is clamped into 1-6, an unknown difficulty
// is treated as easy and an unknown topic falls back to addition.
func (g *Generator) Generate(topic Topic, yearLevel YearLevel, difficulty Difficulty) Problem {
	yearLevel = ClampYearLevel(yearLevel)
	difficulty = difficulty.orEasy()

	g.mu.Lock()
	p := g.dispatch(picker{g.rnd}, topic, yearLevel, difficulty)
	g.mu.Unlock()

	p.ID = uuid.NewString()
	p.YearLevel = yearLevel
	p.Difficulty = difficulty
	return p
}

func (g *Generator) dispatch(pk picker, topic Topic, y YearLevel, d Difficulty) Problem {
	switch topic {
	case TopicCounting:
		return g.counting(pk, y, d)
	case TopicAddition:
		return g.addition(pk, y, d)
	case TopicSubtraction:
		return g.subtraction(pk, y, d)
	case TopicMultiplication:
		return g.multiplication(pk, y, d)
	case TopicDivision:
		return g.division(pk, y, d)
	case TopicFractions:
		return fractions(pk, d)
	case TopicDecimals:
		return decimals(pk, d)
	case TopicPercentages:
		return percentages(pk, d)
	case TopicTime:
		return clockTime(pk, d)
	case TopicMoney:
		return money(pk, d)
	case TopicPatterns:
		return patterns(pk, d)
	case TopicAreaPerimeter:
		return areaPerimeter(pk, d)
	default:
		// Callers pick from a validated list; an unknown topic still gets
		// a well-formed problem instead of a panic.
		return g.addition(pk, y, d)
	}
}

// picker draws uniform random values.
type picker struct {
	rnd *rand.Rand
}

// intn returns a uniform integer in [lo, hi]. hi < lo returns lo.
func (p picker) intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rnd.IntN(hi-lo+1)
}

func (p picker) in(r Range) int {
	return p.intn(r.Min, r.Max)
}

func (p picker) choice(values []int) int {
	return values[p.rnd.IntN(len(values))]
}

func (p picker) word(values []string) string {
	return values[p.rnd.IntN(len(values))]
}

func (p picker) coin() bool {
	return p.rnd.IntN(2) == 1
}
