package curriculum

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/mathbuddy/internal/problemgen"
)

// Strand groups related topics for display.
type Strand string

const (
	StrandNumberPlace Strand = "number-and-place-value"
	StrandAddSub      Strand = "addition-and-subtraction"
	StrandMultDiv     Strand = "multiplication-and-division"
	StrandFractions   Strand = "fractions-decimals-percentages"
	StrandMeasurement Strand = "measurement"
)

// AllStrands returns all strands in display order.
func AllStrands() []Strand {
	return []Strand{
		StrandNumberPlace,
		StrandAddSub,
		StrandMultDiv,
		StrandFractions,
		StrandMeasurement,
	}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s Strand) string {
	switch s {
	case StrandNumberPlace:
		return "Number & Patterns"
	case StrandAddSub:
		return "Addition & Subtraction"
	case StrandMultDiv:
		return "Multiplication & Division"
	case StrandFractions:
		return "Fractions, Decimals & Percentages"
	case StrandMeasurement:
		return "Measurement"
	default:
		return string(s)
	}
}

// TopicInfo describes a topic in the curriculum.
type TopicInfo struct {
	Topic  problemgen.Topic
	Name   string
	Strand Strand
}

var topicInfo = map[problemgen.Topic]TopicInfo{
	problemgen.TopicCounting:       {problemgen.TopicCounting, "Counting", StrandNumberPlace},
	problemgen.TopicAddition:       {problemgen.TopicAddition, "Addition", StrandAddSub},
	problemgen.TopicSubtraction:    {problemgen.TopicSubtraction, "Subtraction", StrandAddSub},
	problemgen.TopicMultiplication: {problemgen.TopicMultiplication, "Multiplication", StrandMultDiv},
	problemgen.TopicDivision:       {problemgen.TopicDivision, "Division", StrandMultDiv},
	problemgen.TopicFractions:      {problemgen.TopicFractions, "Fractions", StrandFractions},
	problemgen.TopicDecimals:       {problemgen.TopicDecimals, "Decimals", StrandFractions},
	problemgen.TopicPercentages:    {problemgen.TopicPercentages, "Percentages", StrandFractions},
	problemgen.TopicAreaPerimeter:  {problemgen.TopicAreaPerimeter, "Area & Perimeter", StrandMeasurement},
	problemgen.TopicTime:           {problemgen.TopicTime, "Telling Time", StrandMeasurement},
	problemgen.TopicMoney:          {problemgen.TopicMoney, "Money", StrandMeasurement},
	problemgen.TopicPatterns:       {problemgen.TopicPatterns, "Patterns", StrandNumberPlace},
}

// yearTopics lists the topics offered at each level, in menu order.
var yearTopics = map[problemgen.YearLevel][]problemgen.Topic{
	1: {problemgen.TopicCounting, problemgen.TopicAddition, problemgen.TopicSubtraction},
	2: {problemgen.TopicAddition, problemgen.TopicSubtraction, problemgen.TopicCounting, problemgen.TopicPatterns},
	3: {problemgen.TopicAddition, problemgen.TopicSubtraction, problemgen.TopicMultiplication, problemgen.TopicTime},
	4: {problemgen.TopicMultiplication, problemgen.TopicDivision, problemgen.TopicFractions, problemgen.TopicMoney},
	5: {problemgen.TopicFractions, problemgen.TopicDecimals, problemgen.TopicMultiplication, problemgen.TopicDivision, problemgen.TopicAreaPerimeter},
	6: {problemgen.TopicDecimals, problemgen.TopicPercentages, problemgen.TopicFractions, problemgen.TopicAreaPerimeter, problemgen.TopicPatterns},
}

// TopicsFor returns the topics offered at a year level. Out-of-range levels
// are clamped into 1-6.
func TopicsFor(y problemgen.YearLevel) []problemgen.Topic {
	return slices.Clone(yearTopics[problemgen.ClampYearLevel(y)])
}

// Offers reports whether topic is part of the level's menu.
func Offers(y problemgen.YearLevel, topic problemgen.Topic) bool {
	return slices.Contains(yearTopics[problemgen.ClampYearLevel(y)], topic)
}

// LevelsFor returns the year levels that offer topic, ascending.
func LevelsFor(topic problemgen.Topic) []problemgen.YearLevel {
	var levels []problemgen.YearLevel
	for y := problemgen.MinYearLevel; y <= problemgen.MaxYearLevel; y++ {
		if slices.Contains(yearTopics[y], topic) {
			levels = append(levels, y)
		}
	}
	return levels
}

// Info returns the curriculum entry for topic, or error if not found.
func Info(topic problemgen.Topic) (TopicInfo, error) {
	info, ok := topicInfo[topic]
	if !ok {
		return TopicInfo{}, fmt.Errorf("topic not found: %q", topic)
	}
	return info, nil
}

// TopicName returns the display name for a topic, falling back to the raw
// topic string.
func TopicName(topic problemgen.Topic) string {
	if info, ok := topicInfo[topic]; ok {
		return info.Name
	}
	return string(topic)
}

// LevelName returns the short display name of a year level, e.g. "Lv.3".
func LevelName(y problemgen.YearLevel) string {
	return fmt.Sprintf("Lv.%d", problemgen.ClampYearLevel(y))
}

// ByStrand returns the topics in a strand in canonical topic order.
func ByStrand(s Strand) []problemgen.Topic {
	var result []problemgen.Topic
	for _, t := range problemgen.AllTopics() {
		if topicInfo[t].Strand == s {
			result = append(result, t)
		}
	}
	return result
}

// PickTopic returns a uniformly random topic from the level's menu.
func PickTopic(y problemgen.YearLevel, rnd *rand.Rand) problemgen.Topic {
	topics := yearTopics[problemgen.ClampYearLevel(y)]
	return topics[rnd.IntN(len(topics))]
}
