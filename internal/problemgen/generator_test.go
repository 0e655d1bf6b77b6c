package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
)

const samplesPerCase = 40

// forEachProblem generates samplesPerCase problems for every topic, year
// level and difficulty.
func forEachProblem(t *testing.T, fn func(t *testing.T, p Problem)) {
	t.Helper()
	g := New(Config{Seed: 42})
	for _, topic := range AllTopics() {
		for y := MinYearLevel; y <= MaxYearLevel; y++ {
			for _, d := range AllDifficulties() {
				for i := 0; i < samplesPerCase; i++ {
					p := g.Generate(topic, y, d)
					fn(t, p)
				}
			}
		}
	}
}

func TestGenerate_PassesValidators(t *testing.T) {
	forEachProblem(t, func(t *testing.T, p Problem) {
		if err := Validate(&p); err != nil {
			t.Fatalf("%s y%d %s %q: %v", p.Topic, p.YearLevel, p.Difficulty, p.Question, err)
		}
	})
}

func TestGenerate_EvaluatorReflexive(t *testing.T) {
	forEachProblem(t, func(t *testing.T, p Problem) {
		if !CheckAnswer(&p, p.Answer.String()) {
			t.Fatalf("%s: canonical answer %q rejected", p.Topic, p.Answer)
		}
		for _, alt := range p.AcceptableAnswers {
			if !CheckAnswer(&p, alt.String()) {
				t.Fatalf("%s: acceptable answer %q rejected", p.Topic, alt)
			}
		}
		shouted := "  " + strings.ToUpper(p.Answer.String()) + "  "
		if !CheckAnswer(&p, shouted) {
			t.Fatalf("%s: %q rejected", p.Topic, shouted)
		}
	})
}

func TestGenerate_SubtractionNonNegative(t *testing.T) {
	forEachProblem(t, func(t *testing.T, p Problem) {
		if p.Topic != TopicSubtraction {
			return
		}
		n := p.Numbers
		if n == nil || n.Num1 < n.Num2 {
			t.Fatalf("bad subtraction operands: %+v", n)
		}
		got, _ := p.Answer.Value()
		if got != float64(n.Num1-n.Num2) || got < 0 {
			t.Fatalf("answer %v for %d - %d", got, n.Num1, n.Num2)
		}
	})
}

func TestGenerate_DivisionExact(t *testing.T) {
	forEachProblem(t, func(t *testing.T, p Problem) {
		if p.Topic != TopicDivision {
			return
		}
		n := p.Numbers
		if n == nil || n.Num2 == 0 || n.Num1%n.Num2 != 0 {
			t.Fatalf("inexact division: %+v", n)
		}
		got, _ := p.Answer.Value()
		if got != float64(n.Num1/n.Num2) {
			t.Fatalf("answer %v for %d ÷ %d", got, n.Num1, n.Num2)
		}
	})
}

func TestGenerate_AdditionYear1Easy(t *testing.T) {
	g := New(Config{Seed: 7})
	for i := 0; i < 500; i++ {
		p := g.Generate(TopicAddition, 1, DifficultyEasy)
		n := p.Numbers
		if n.Num1 < 1 || n.Num1 > 5 || n.Num2 < 1 || n.Num2 > 5 {
			t.Fatalf("operands out of [1,5]: %+v", n)
		}
		want := fmt.Sprintf("%d + %d = ?", n.Num1, n.Num2)
		if p.Question != want {
			t.Fatalf("Question = %q, want %q", p.Question, want)
		}
		if p.Answer.String() != fmt.Sprint(n.Num1+n.Num2) {
			t.Fatalf("Answer = %q for %+v", p.Answer, n)
		}
	}
}

func TestGenerate_AdditionSecondOperandBounded(t *testing.T) {
	g := New(Config{Seed: 9})
	for i := 0; i < 500; i++ {
		p := g.Generate(TopicAddition, 6, DifficultyChallenge)
		n := p.Numbers
		if n.Num2 > n.Num1+20 {
			t.Fatalf("num2 %d exceeds num1+20 (%d)", n.Num2, n.Num1+20)
		}
	}
}

func TestGenerate_OperandsWithinRange(t *testing.T) {
	forEachProblem(t, func(t *testing.T, p Problem) {
		r := RangeFor(p.Topic, p.YearLevel, p.Difficulty)
		switch p.Topic {
		case TopicAddition, TopicMultiplication:
			if !r.Contains(p.Numbers.Num1) || !r.Contains(p.Numbers.Num2) {
				t.Fatalf("%s operands %+v outside %+v", p.Topic, p.Numbers, r)
			}
		case TopicSubtraction:
			if !r.Contains(p.Numbers.Num1) {
				t.Fatalf("minuend %d outside %+v", p.Numbers.Num1, r)
			}
		case TopicDivision:
			q, _ := p.Answer.Value()
			if !r.Contains(p.Numbers.Num2) || !r.Contains(int(q)) {
				t.Fatalf("divisor %d / quotient %v outside %+v", p.Numbers.Num2, q, r)
			}
		case TopicAreaPerimeter:
			if !r.Contains(p.Dimensions.Length) || !r.Contains(p.Dimensions.Width) {
				t.Fatalf("sides %+v outside %+v", p.Dimensions, r)
			}
		case TopicTime:
			if !r.Contains(p.ClockTime.Hours) {
				t.Fatalf("hours %d outside %+v", p.ClockTime.Hours, r)
			}
		}
	})
}

func TestGenerate_FractionsCanExceedDenominator(t *testing.T) {
	g := New(Config{Seed: 3})
	sawMixedOrWhole := false
	for i := 0; i < 1000; i++ {
		p := g.Generate(TopicFractions, 5, DifficultyHard)
		if !strings.Contains(p.Answer.String(), "/") || strings.Contains(p.Answer.String(), " ") {
			sawMixedOrWhole = true
		}
		if len(p.AcceptableAnswers) != 3 {
			t.Fatalf("want 3 acceptable answers, got %v", p.AcceptableAnswers)
		}
	}
	if !sawMixedOrWhole {
		t.Error("expected some sums to pass the denominator")
	}
}

func TestGenerate_CountingYear1NeverCountsByTwos(t *testing.T) {
	g := New(Config{Seed: 11})
	for i := 0; i < 500; i++ {
		p := g.Generate(TopicCounting, 1, DifficultyMedium)
		if strings.HasPrefix(p.Question, "Count by 2s") {
			t.Fatalf("year 1 got a count-by-twos problem: %q", p.Question)
		}
	}
}

func TestCountObjects_CapsIconsButNotAnswer(t *testing.T) {
	p := countObjectsProblem(40, "⭐", 15)

	if got := strings.Count(p.VisualContent, "⭐"); got != 15 {
		t.Errorf("icons = %d, want 15", got)
	}
	if !strings.HasSuffix(p.VisualContent, " (+25 more)") {
		t.Errorf("VisualContent = %q", p.VisualContent)
	}
	if p.Answer.String() != "40" {
		t.Errorf("Answer = %q, want 40", p.Answer)
	}
}

func TestCountByTwos(t *testing.T) {
	p := countByTwosProblem(3)
	if p.Question != "Count by 2s: 3, 5, 7, ?" {
		t.Errorf("Question = %q", p.Question)
	}
	if p.Answer.String() != "9" {
		t.Errorf("Answer = %q, want 9", p.Answer)
	}
}

func TestPatternProblem(t *testing.T) {
	p := patternProblem(4, 3)
	if p.Question != "What comes next? 4, 7, 10, 13, ?" {
		t.Errorf("Question = %q", p.Question)
	}
	if p.Answer.String() != "16" {
		t.Errorf("Answer = %q, want 16", p.Answer)
	}
	if p.Numbers != nil {
		t.Errorf("patterns should not expose Numbers")
	}
}

func TestPercentageProblem(t *testing.T) {
	tests := []struct {
		pct, base int
		want      string
	}{
		{5, 40, "2"},
		{10, 60, "6"},
		{20, 60, "12"},
		{75, 140, "105"},
	}
	for _, tc := range tests {
		p := percentageProblem(tc.pct, tc.base)
		if p.Answer.String() != tc.want {
			t.Errorf("%d%% of %d = %q, want %q", tc.pct, tc.base, p.Answer, tc.want)
		}
	}
}

func TestMoneyProblem(t *testing.T) {
	p := moneyProblem("🍎 apple", 5, "📚 book", 10)
	for _, in := range []string{"15", "$15", "15 dollars"} {
		if !CheckAnswer(&p, in) {
			t.Errorf("expected %q to be accepted", in)
		}
	}
	if p.Numbers == nil || p.Numbers.Operator != OpAdd {
		t.Errorf("Numbers = %+v", p.Numbers)
	}
}

func TestAreaAndPerimeter(t *testing.T) {
	area := areaProblem(4, 3)
	if !CheckAnswer(&area, "12 square units") || !CheckAnswer(&area, "12") {
		t.Error("area answers not accepted")
	}
	per := perimeterProblem(4, 3)
	if !CheckAnswer(&per, "14 units") || !CheckAnswer(&per, "14") {
		t.Error("perimeter answers not accepted")
	}
	if per.Numbers != nil {
		t.Error("perimeter should not expose Numbers")
	}
}

func TestHardTimeIsHalfHourLater(t *testing.T) {
	p := timeProblem(11, 0, DifficultyChallenge)
	if p.Question != "What time is 30 minutes after 11:00?" {
		t.Errorf("Question = %q", p.Question)
	}
	if !CheckAnswer(&p, "11:30") || !CheckAnswer(&p, "half past 11") {
		t.Error("expected 11:30 forms to be accepted")
	}
}

func TestClockTime_HardDrawsOnlyTheHour(t *testing.T) {
	for _, d := range []Difficulty{DifficultyHard, DifficultyChallenge} {
		used := picker{rnd: rand.New(rand.NewPCG(8, 9))}
		ref := picker{rnd: rand.New(rand.NewPCG(8, 9))}

		p := clockTime(used, d)
		hours := ref.intn(1, 12)
		if want := fmt.Sprintf("What time is 30 minutes after %d:00?", hours); p.Question != want {
			t.Errorf("%s: Question = %q, want %q", d, p.Question, want)
		}
		if p.ClockTime.Minutes != 0 {
			t.Errorf("%s: Minutes = %d, want 0", d, p.ClockTime.Minutes)
		}
		if used.intn(0, 1000) != ref.intn(0, 1000) {
			t.Errorf("%s: clockTime consumed more than the hour draw", d)
		}
	}
}

func TestGenerate_UnknownTopicFallsBackToAddition(t *testing.T) {
	g := New(Config{Seed: 5})
	p := g.Generate(Topic("geometry"), 2, DifficultyEasy)
	if p.Topic != TopicAddition {
		t.Errorf("Topic = %q, want addition", p.Topic)
	}
	if err := Validate(&p); err != nil {
		t.Errorf("fallback problem invalid: %v", err)
	}
}

func TestGenerate_ClampsBoundaryInputs(t *testing.T) {
	g := New(Config{Seed: 5})

	p := g.Generate(TopicAddition, 9, DifficultyEasy)
	if p.YearLevel != 6 {
		t.Errorf("YearLevel = %d, want 6", p.YearLevel)
	}
	p = g.Generate(TopicAddition, 0, DifficultyEasy)
	if p.YearLevel != 1 {
		t.Errorf("YearLevel = %d, want 1", p.YearLevel)
	}
	p = g.Generate(TopicAddition, 3, Difficulty("impossible"))
	if p.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %q, want easy", p.Difficulty)
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		p := Generate(TopicMoney, 4, DifficultyMedium)
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := New(Config{Seed: 99})
	b := New(Config{Seed: 99})
	for i := 0; i < 50; i++ {
		pa := a.Generate(TopicMultiplication, 4, DifficultyHard)
		pb := b.Generate(TopicMultiplication, 4, DifficultyHard)
		if pa.Question != pb.Question {
			t.Fatalf("sample %d: %q != %q", i, pa.Question, pb.Question)
		}
	}
}

func TestGenerate_ConcurrentUse(t *testing.T) {
	g := New(Config{Seed: 1})
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				p := g.Generate(TopicDivision, 6, DifficultyChallenge)
				if !CheckAnswer(&p, p.Answer.String()) {
					t.Errorf("answer %q rejected", p.Answer)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRangeFor_Monotonic(t *testing.T) {
	for _, topic := range AllTopics() {
		for _, d := range AllDifficulties() {
			lo := RangeFor(topic, 1, d)
			hi := RangeFor(topic, 6, d)
			if hi.Max < lo.Max || hi.Min < lo.Min {
				t.Errorf("%s/%s: year 6 %+v narrower than year 1 %+v", topic, d, hi, lo)
			}
		}
	}
}

func TestRangeFor_MultiplicationStaysSmall(t *testing.T) {
	for y := MinYearLevel; y <= MaxYearLevel; y++ {
		for _, d := range AllDifficulties() {
			if r := RangeFor(TopicMultiplication, y, d); r.Max > 15 {
				t.Errorf("year %d %s: max factor %d", y, d, r.Max)
			}
		}
	}
}
