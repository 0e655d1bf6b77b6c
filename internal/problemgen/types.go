package problemgen

import "fmt"

// Topic is a category of math problem.
type Topic string

const (
	TopicCounting       Topic = "counting"
	TopicAddition       Topic = "addition"
	TopicSubtraction    Topic = "subtraction"
	TopicMultiplication Topic = "multiplication"
	TopicDivision       Topic = "division"
	TopicFractions      Topic = "fractions"
	TopicDecimals       Topic = "decimals"
	TopicPercentages    Topic = "percentages"
	TopicTime           Topic = "time"
	TopicMoney          Topic = "money"
	TopicPatterns       Topic = "patterns"
	TopicAreaPerimeter  Topic = "area_perimeter"
)

// AllTopics returns every topic in curriculum order.
func AllTopics() []Topic {
	return []Topic{
		TopicCounting,
		TopicAddition,
		TopicSubtraction,
		TopicMultiplication,
		TopicDivision,
		TopicFractions,
		TopicDecimals,
		TopicPercentages,
		TopicTime,
		TopicMoney,
		TopicPatterns,
		TopicAreaPerimeter,
	}
}

// Valid reports whether t is one of the known topics.
func (t Topic) Valid() bool {
	for _, known := range AllTopics() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseTopic returns the topic named s.
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown topic %q", s)
	}
	return t, nil
}

// Difficulty is the second axis of the range tables, within a year level.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyChallenge Difficulty = "challenge"
)

// AllDifficulties returns the difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyChallenge}
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyChallenge:
		return true
	}
	return false
}

// ParseDifficulty returns the difficulty named s.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q: must be easy, medium, hard or challenge", s)
	}
	return d, nil
}

// orEasy maps unknown difficulties to easy.
func (d Difficulty) orEasy() Difficulty {
	if d.Valid() {
		return d
	}
	return DifficultyEasy
}

// YearLevel is the grade band, 1 through 6.
type YearLevel int

const (
	MinYearLevel YearLevel = 1
	MaxYearLevel YearLevel = 6
)

// ClampYearLevel forces y into [MinYearLevel, MaxYearLevel].
func ClampYearLevel(y YearLevel) YearLevel {
	if y < MinYearLevel {
		return MinYearLevel
	}
	if y > MaxYearLevel {
		return MaxYearLevel
	}
	return y
}

// VisualType tells a renderer which manipulative fits the problem.
type VisualType string

const (
	VisualBlocks      VisualType = "blocks"
	VisualNumberLine  VisualType = "number_line"
	VisualGrid        VisualType = "grid"
	VisualFractionBar VisualType = "fraction_bar"
	VisualPieChart    VisualType = "pie_chart"
	VisualClock       VisualType = "clock"
	VisualRectangle   VisualType = "rectangle"
)

// InteractiveType tells a renderer how the learner answers.
type InteractiveType string

const (
	InteractiveDragDrop InteractiveType = "drag_drop"
	InteractiveInput    InteractiveType = "input"
)

// Operator symbols used in question text and Operands.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "×"
	OpDivide   = "÷"
)

// Problem is a generated math problem ready for display and evaluation.
// A Problem is never mutated after Generate returns it.
type Problem struct {
	ID         string     `json:"id"`
	Topic      Topic      `json:"topic"`
	YearLevel  YearLevel  `json:"yearLevel"`
	Difficulty Difficulty `json:"difficulty"`

	// Question is the prompt shown to the learner, e.g. "3 + 4 = ?".
	Question string `json:"question"`

	// Answer is the canonical correct answer.
	Answer Answer `json:"answer"`

	// AcceptableAnswers lists other forms of the same answer
	// ("5/4", "1.25", "half past 3"). All are equally correct.
	AcceptableAnswers []Answer `json:"acceptableAnswers,omitempty"`

	Hint        string `json:"hint,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Steps       []Step `json:"steps,omitempty"`

	// Numbers exposes the operands of binary-operation problems. Nil for
	// fractions, decimals, percentages, time and patterns, whose operands
	// only appear in Question and Steps.
	Numbers *Operands `json:"numbers,omitempty"`

	Dimensions    *Dimensions `json:"dimensions,omitempty"`
	ClockTime     *ClockTime  `json:"clockTime,omitempty"`
	VisualContent string      `json:"visualContent,omitempty"`

	VisualType      VisualType      `json:"visualType,omitempty"`
	InteractiveType InteractiveType `json:"interactiveType,omitempty"`

	// Display is the scaled block layout for quantities too large to draw
	// one-to-one. Nil when no scaling is needed.
	Display *DisplayScale `json:"display,omitempty"`
}

// Step is one line of a worked solution.
type Step struct {
	Description string `json:"description"`
	Formula     string `json:"formula,omitempty"`
	Result      string `json:"result,omitempty"`
}

// Operands holds the two operands and the operator symbol.
type Operands struct {
	Num1     int    `json:"num1"`
	Num2     int    `json:"num2"`
	Operator string `json:"operator"`
}

// Dimensions are the side lengths of an area/perimeter rectangle.
type Dimensions struct {
	Length int `json:"length"`
	Width  int `json:"width"`
}

// ClockTime is the time a clock face should show.
type ClockTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}
