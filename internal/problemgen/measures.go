package problemgen

import (
	"fmt"
	"strconv"
)

func clockTime(pk picker, d Difficulty) Problem {
	hours := pk.intn(1, 12)
	minutes := 0
	if d == DifficultyMedium {
		minutes = pk.intn(0, 1) * 30
	}
	return timeProblem(hours, minutes, d)
}

// timeProblem reads an hour clock (easy), an hour and minute clock (medium)
// or asks for the time 30 minutes later (hard and challenge). The minutes
// argument is only used by the medium variant.
func timeProblem(hours, minutes int, d Difficulty) Problem {
	switch {
	case d == DifficultyEasy:
		return Problem{
			Topic:             TopicTime,
			Question:          "What time does this clock show?",
			Answer:            Numeric(float64(hours)),
			AcceptableAnswers: answers(hours, fmt.Sprintf("%d:00", hours), fmt.Sprintf("%d o'clock", hours)),
			Hint:              "Look at where the short hand (hour hand) is pointing!",
			Explanation:       fmt.Sprintf("When the short hand points to %d, it's %d o'clock!", hours, hours),
			VisualType:        VisualClock,
			InteractiveType:   InteractiveInput,
			ClockTime:         &ClockTime{Hours: hours},
			Steps: []Step{
				{Description: "Find the hour hand (short hand)"},
				{Description: "See what number it points to", Result: fmt.Sprintf("%d o'clock", hours)},
			},
		}

	case d == DifficultyMedium:
		shown := fmt.Sprintf("%d:%02d", hours, minutes)
		alts := answers(shown)
		hint := "Count by 5s from 12 to where the long hand points!"
		if minutes == 30 {
			alts = append(alts, Formatted(fmt.Sprintf("half past %d", hours)))
			hint = "30 minutes is half past the hour!"
		}
		return Problem{
			Topic:             TopicTime,
			Question:          "What time does this clock show?",
			Answer:            Formatted(shown),
			AcceptableAnswers: alts,
			Hint:              hint,
			Explanation:       fmt.Sprintf("The hour hand is on %d and the minute hand shows %d minutes.", hours, minutes),
			VisualType:        VisualClock,
			InteractiveType:   InteractiveInput,
			ClockTime:         &ClockTime{Hours: hours, Minutes: minutes},
			Steps: []Step{
				{Description: "Find the hour hand (short hand)", Result: strconv.Itoa(hours)},
				{Description: "Count the minutes (long hand)", Result: fmt.Sprintf("%d minutes", minutes)},
			},
		}

	default:
		later := fmt.Sprintf("%d:30", hours)
		return Problem{
			Topic:             TopicTime,
			Question:          fmt.Sprintf("What time is 30 minutes after %d:00?", hours),
			Answer:            Formatted(later),
			AcceptableAnswers: answers(later, fmt.Sprintf("half past %d", hours)),
			Hint:              "30 minutes is half an hour!",
			Explanation:       fmt.Sprintf("30 minutes after %d:00 is %s (half past %d)", hours, later, hours),
			VisualType:        VisualClock,
			InteractiveType:   InteractiveInput,
			ClockTime:         &ClockTime{Hours: hours},
			Steps: []Step{
				{Description: fmt.Sprintf("Start at %d:00", hours)},
				{Description: "Add 30 minutes", Result: later},
			},
		}
	}
}

var shopItems = []string{"🍎 apple", "🍌 banana", "🍕 pizza slice", "🧁 cupcake", "📚 book", "✏️ pencil", "🎈 balloon"}

func money(pk picker, d Difficulty) Problem {
	prices := moneyPrices[tier(d)]
	price1 := pk.choice(prices)
	price2 := pk.choice(prices)
	return moneyProblem(pk.word(shopItems), price1, pk.word(shopItems), price2)
}

func moneyProblem(item1 string, price1 int, item2 string, price2 int) Problem {
	total := price1 + price2
	return Problem{
		Topic:             TopicMoney,
		Question:          fmt.Sprintf("A %s costs $%d and a %s costs $%d. How much for both?", item1, price1, item2, price2),
		Answer:            Numeric(float64(total)),
		AcceptableAnswers: answers(total, fmt.Sprintf("$%d", total), fmt.Sprintf("%d dollars", total)),
		Hint:              "Add the two prices together!",
		Explanation:       fmt.Sprintf("$%d + $%d = $%d", price1, price2, total),
		VisualType:        VisualBlocks,
		InteractiveType:   InteractiveInput,
		Numbers:           &Operands{Num1: price1, Num2: price2, Operator: OpAdd},
		Steps: []Step{
			{Description: fmt.Sprintf("%s costs $%d", item1, price1)},
			{Description: fmt.Sprintf("%s costs $%d", item2, price2)},
			{Description: "Add them together", Formula: fmt.Sprintf("$%d + $%d", price1, price2), Result: fmt.Sprintf("$%d", total)},
		},
	}
}

func patterns(pk picker, d Difficulty) Problem {
	step := pk.in(patternSteps[tier(d)])
	start := pk.intn(1, 10)
	return patternProblem(start, step)
}

// patternProblem shows four terms of an arithmetic sequence and asks for
// the fifth.
func patternProblem(start, step int) Problem {
	seq := arithmeticSequence(start, step, 4)
	answer := start + step*4
	return Problem{
		Topic:           TopicPatterns,
		Question:        fmt.Sprintf("What comes next? %s, ?", joinInts(seq)),
		Answer:          Numeric(float64(answer)),
		Hint:            "Look at how much the numbers increase each time!",
		Explanation:     fmt.Sprintf("The pattern adds %d each time. %d + %d = %d", step, seq[3], step, answer),
		VisualType:      VisualNumberLine,
		InteractiveType: InteractiveDragDrop,
		Steps: []Step{
			{Description: "Find the pattern", Result: fmt.Sprintf("Adding %d each time", step)},
			{Description: "Continue the pattern", Formula: fmt.Sprintf("%d + %d", seq[3], step), Result: strconv.Itoa(answer)},
		},
	}
}

func areaPerimeter(pk picker, d Difficulty) Problem {
	isArea := pk.coin()
	sides := rectangleSides[tier(d)]
	length := pk.in(sides)
	width := pk.in(sides)
	if isArea {
		return areaProblem(length, width)
	}
	return perimeterProblem(length, width)
}

func areaProblem(length, width int) Problem {
	answer := length * width
	withUnit := fmt.Sprintf("%d square units", answer)
	return Problem{
		Topic:             TopicAreaPerimeter,
		Question:          "What is the area of this rectangle?",
		Answer:            Numeric(float64(answer)),
		AcceptableAnswers: answers(answer, withUnit),
		Hint:              "Area = length × width. Count all the squares inside!",
		Explanation:       fmt.Sprintf("Area = %d × %d = %s", length, width, withUnit),
		VisualType:        VisualRectangle,
		InteractiveType:   InteractiveInput,
		Dimensions:        &Dimensions{Length: length, Width: width},
		Numbers:           &Operands{Num1: length, Num2: width, Operator: OpMultiply},
		Steps: []Step{
			{Description: "Use the formula: Area = length × width"},
			{Description: "Calculate", Formula: fmt.Sprintf("%d × %d", length, width), Result: withUnit},
		},
	}
}

func perimeterProblem(length, width int) Problem {
	answer := 2 * (length + width)
	withUnit := fmt.Sprintf("%d units", answer)
	sides := fmt.Sprintf("%d + %d + %d + %d", length, width, length, width)
	return Problem{
		Topic:             TopicAreaPerimeter,
		Question:          "What is the perimeter of this rectangle?",
		Answer:            Numeric(float64(answer)),
		AcceptableAnswers: answers(answer, withUnit),
		Hint:              "Perimeter = add all sides together. Walk around the shape!",
		Explanation:       fmt.Sprintf("Perimeter = %s = %s", sides, withUnit),
		VisualType:        VisualRectangle,
		InteractiveType:   InteractiveInput,
		Dimensions:        &Dimensions{Length: length, Width: width},
		Steps: []Step{
			{Description: "Add all four sides"},
			{Description: "Calculate", Formula: sides, Result: withUnit},
		},
	}
}
