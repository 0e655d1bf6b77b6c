package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleForDisplay_SmallOperandsUnscaled(t *testing.T) {
	assert.Nil(t, ScaleForDisplay(OpAdd, 40, 60))
	assert.Nil(t, ScaleForDisplay(OpSubtract, 100, 30))
	assert.Nil(t, ScaleForDisplay(OpDivide, 96, 8))
	assert.Nil(t, ScaleForDisplay(OpMultiply, 12, 20))
	assert.Nil(t, ScaleForDisplay("?", 500, 500))
}

func TestScaleForDisplay_SumKeepsRatio(t *testing.T) {
	s := ScaleForDisplay(OpAdd, 60, 50)
	require.NotNil(t, s)

	assert.Equal(t, 54, s.Num1)
	assert.Equal(t, 45, s.Num2)
	assert.LessOrEqual(t, s.Num1+s.Num2, 100)
	assert.InDelta(t, 0.9, s.Factor, 1e-9)
}

func TestScaleForDisplay_SumCoprimeFallsBack(t *testing.T) {
	s := ScaleForDisplay(OpAdd, 97, 89)
	require.NotNil(t, s)

	assert.LessOrEqual(t, s.Num1+s.Num2, 100)
	assert.GreaterOrEqual(t, s.Num1, 1)
	assert.GreaterOrEqual(t, s.Num2, 1)
}

func TestScaleForDisplay_Difference(t *testing.T) {
	s := ScaleForDisplay(OpSubtract, 150, 30)
	require.NotNil(t, s)
	assert.Equal(t, 100, s.Num1)
	assert.Equal(t, 20, s.Num2)

	s = ScaleForDisplay(OpSubtract, 151, 2)
	require.NotNil(t, s)
	assert.Equal(t, 100, s.Num1)
	assert.Equal(t, 1, s.Num2, "at least one block is always taken away")
}

func TestScaleForDisplay_QuotientWholeGroups(t *testing.T) {
	s := ScaleForDisplay(OpDivide, 120, 6)
	require.NotNil(t, s)

	assert.Equal(t, 16, s.Groups)
	assert.Equal(t, 96, s.Num1)
	assert.Equal(t, 6, s.Num2)
	assert.Zero(t, s.Num1%s.Num2)
}

func TestScaleForDisplay_GroupsCapped(t *testing.T) {
	s := ScaleForDisplay(OpMultiply, 3, 25)
	require.NotNil(t, s)

	assert.Equal(t, 3, s.Num1)
	assert.Equal(t, 20, s.Num2)
	assert.InDelta(t, 0.8, s.Factor, 1e-9)
}

func TestScaleForDisplay_CustomLimits(t *testing.T) {
	g := New(Config{Seed: 1, MaxDisplayBlocks: 10})
	p := g.additionProblem(12, 8, 3)

	require.NotNil(t, p.Display)
	assert.Equal(t, 6, p.Display.Num1)
	assert.Equal(t, 4, p.Display.Num2)
	assert.Equal(t, "20", p.Answer.String(), "scaling never changes the answer")
}

func TestGenerate_DisplayWithinLimits(t *testing.T) {
	forEachProblem(t, func(t *testing.T, p Problem) {
		s := p.Display
		if s == nil {
			return
		}
		switch p.Numbers.Operator {
		case OpAdd:
			assert.LessOrEqual(t, s.Num1+s.Num2, 100, p.Question)
		case OpSubtract, OpDivide:
			assert.LessOrEqual(t, s.Num1, 100, p.Question)
		case OpMultiply:
			assert.LessOrEqual(t, s.Num2, 20, p.Question)
		}
	})
}

func TestReduceRatio(t *testing.T) {
	a, b := reduceRatio(60, 45)
	assert.Equal(t, 4, a)
	assert.Equal(t, 3, b)

	a, b = reduceRatio(0, 0)
	assert.Equal(t, 0, a)
	assert.Equal(t, 0, b)
}
