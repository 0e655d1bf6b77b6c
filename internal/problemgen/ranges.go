package problemgen

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n lies in r.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

type rangeTable map[YearLevel]map[Difficulty]Range

// operandRanges is shared by addition and subtraction.
var operandRanges = rangeTable{
	1: {DifficultyEasy: {1, 5}, DifficultyMedium: {1, 10}, DifficultyHard: {5, 15}, DifficultyChallenge: {10, 20}},
	2: {DifficultyEasy: {1, 10}, DifficultyMedium: {5, 20}, DifficultyHard: {10, 30}, DifficultyChallenge: {15, 50}},
	3: {DifficultyEasy: {1, 20}, DifficultyMedium: {10, 50}, DifficultyHard: {20, 100}, DifficultyChallenge: {50, 200}},
	4: {DifficultyEasy: {10, 50}, DifficultyMedium: {20, 100}, DifficultyHard: {50, 200}, DifficultyChallenge: {100, 500}},
	5: {DifficultyEasy: {10, 100}, DifficultyMedium: {50, 200}, DifficultyHard: {100, 500}, DifficultyChallenge: {200, 1000}},
	6: {DifficultyEasy: {50, 200}, DifficultyMedium: {100, 500}, DifficultyHard: {200, 1000}, DifficultyChallenge: {500, 2000}},
}

// multiplicationRanges stay small: grouping pictures stop working past 12-15.
var multiplicationRanges = rangeTable{
	1: {DifficultyEasy: {1, 2}, DifficultyMedium: {1, 3}, DifficultyHard: {2, 3}, DifficultyChallenge: {2, 5}},
	2: {DifficultyEasy: {1, 3}, DifficultyMedium: {2, 5}, DifficultyHard: {2, 5}, DifficultyChallenge: {3, 6}},
	3: {DifficultyEasy: {2, 5}, DifficultyMedium: {2, 6}, DifficultyHard: {3, 8}, DifficultyChallenge: {4, 10}},
	4: {DifficultyEasy: {2, 6}, DifficultyMedium: {3, 9}, DifficultyHard: {4, 10}, DifficultyChallenge: {5, 12}},
	5: {DifficultyEasy: {3, 9}, DifficultyMedium: {4, 10}, DifficultyHard: {6, 12}, DifficultyChallenge: {7, 12}},
	6: {DifficultyEasy: {4, 10}, DifficultyMedium: {5, 12}, DifficultyHard: {6, 12}, DifficultyChallenge: {7, 15}},
}

// divisionRanges bound both the divisor and the quotient.
var divisionRanges = rangeTable{
	1: {DifficultyEasy: {1, 2}, DifficultyMedium: {1, 3}, DifficultyHard: {2, 3}, DifficultyChallenge: {2, 4}},
	2: {DifficultyEasy: {1, 3}, DifficultyMedium: {2, 4}, DifficultyHard: {2, 5}, DifficultyChallenge: {2, 5}},
	3: {DifficultyEasy: {2, 4}, DifficultyMedium: {2, 5}, DifficultyHard: {2, 6}, DifficultyChallenge: {3, 8}},
	4: {DifficultyEasy: {2, 5}, DifficultyMedium: {2, 8}, DifficultyHard: {3, 10}, DifficultyChallenge: {4, 12}},
	5: {DifficultyEasy: {2, 8}, DifficultyMedium: {3, 10}, DifficultyHard: {4, 12}, DifficultyChallenge: {5, 12}},
	6: {DifficultyEasy: {2, 10}, DifficultyMedium: {3, 12}, DifficultyHard: {4, 12}, DifficultyChallenge: {5, 15}},
}

// countingRanges depend on difficulty only.
var countingRanges = map[Difficulty]Range{
	DifficultyEasy:      {1, 10},
	DifficultyMedium:    {5, 20},
	DifficultyHard:      {10, 50},
	DifficultyChallenge: {20, 100},
}

func (t rangeTable) lookup(y YearLevel, d Difficulty) Range {
	return t[ClampYearLevel(y)][d.orEasy()]
}

// byDifficulty picks the easy, medium or hard-and-above value.
func byDifficulty[T any](d Difficulty, easy, medium, hard T) T {
	switch d {
	case DifficultyEasy:
		return easy
	case DifficultyMedium:
		return medium
	default:
		return hard
	}
}

var (
	fractionDenominators = [3][]int{{2, 4}, {2, 3, 4}, {2, 3, 4, 5, 6}}
	percentageChoices    = [3][]int{{5, 10, 50}, {5, 10, 25, 50}, {5, 10, 20, 25, 50, 75}}
	moneyPrices          = [3][]int{{1, 2, 3, 5, 10}, {5, 10, 15, 20, 25}, {10, 15, 20, 25, 30, 50}}
	patternSteps         = [3]Range{{1, 3}, {2, 5}, {3, 10}}
	rectangleSides       = [3]Range{{2, 5}, {3, 8}, {5, 12}}
)

// tier maps a difficulty to the index of the easy/medium/hard lists above.
func tier(d Difficulty) int {
	return byDifficulty(d, 0, 1, 2)
}

// decimalTenths is the range of an operand in tenths (1.0 to 5.0 or 10.0).
func decimalTenths(d Difficulty) Range {
	return Range{10, byDifficulty(d, 50, 100, 100)}
}

// RangeFor reports the primary operand range a topic draws from at the
// given level and difficulty: operands for arithmetic, the denominator span
// for fractions, tenths for decimals, the base number for percentages,
// prices for money, the step for patterns, side lengths for rectangles and
// hours for time.
func RangeFor(topic Topic, y YearLevel, d Difficulty) Range {
	d = d.orEasy()
	switch topic {
	case TopicCounting:
		return countingRanges[d]
	case TopicSubtraction:
		return operandRanges.lookup(y, d)
	case TopicMultiplication:
		return multiplicationRanges.lookup(y, d)
	case TopicDivision:
		return divisionRanges.lookup(y, d)
	case TopicFractions:
		return spanOf(fractionDenominators[tier(d)])
	case TopicDecimals:
		return decimalTenths(d)
	case TopicPercentages:
		return Range{40, 200}
	case TopicTime:
		return Range{1, 12}
	case TopicMoney:
		return spanOf(moneyPrices[tier(d)])
	case TopicPatterns:
		return patternSteps[tier(d)]
	case TopicAreaPerimeter:
		return rectangleSides[tier(d)]
	default:
		return operandRanges.lookup(y, d)
	}
}

func spanOf(values []int) Range {
	r := Range{values[0], values[0]}
	for _, v := range values[1:] {
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}
	return r
}
