package problemgen

import "math"

// DisplayScale is a reduced block layout for quantities too large to draw
// one unit per block. It never changes the problem's answer.
type DisplayScale struct {
	// Num1 and Num2 are the block counts to draw in place of the operands.
	// For division Num1 is the scaled dividend and Num2 the divisor; for
	// multiplication Num2 is the items drawn per group.
	Num1 int `json:"num1"`
	Num2 int `json:"num2"`

	// Groups is the number of groups shown for division.
	Groups int `json:"groups,omitempty"`

	// Factor is drawn units per real unit.
	Factor float64 `json:"factor"`
}

// ScaleForDisplay computes the scaled layout for an operation with the
// default display limits. It returns nil when the operands fit as they are.
func ScaleForDisplay(op string, num1, num2 int) *DisplayScale {
	return scaleForDisplay(op, num1, num2, DefaultConfig())
}

func scaleForDisplay(op string, num1, num2 int, cfg Config) *DisplayScale {
	switch op {
	case OpAdd:
		return scaleSum(num1, num2, cfg.MaxDisplayBlocks)
	case OpSubtract:
		return scaleDifference(num1, num2, cfg.MaxDisplayBlocks)
	case OpDivide:
		return scaleQuotient(num1, num2, cfg.MaxDisplayBlocks)
	case OpMultiply:
		return scaleGroups(num1, num2, cfg.MaxGroupItems)
	}
	return nil
}

// scaleSum fits num1+num2 blocks under maxBlocks keeping num1:num2 exact.
func scaleSum(num1, num2, maxBlocks int) *DisplayScale {
	if num1+num2 <= maxBlocks || num1 <= 0 {
		return nil
	}
	r1, r2 := reduceRatio(num1, num2)
	var d1, d2 int
	if m := maxBlocks / (r1 + r2); m >= 1 {
		d1, d2 = r1*m, r2*m
	} else {
		// The reduced ratio alone is too big; draw the smallest layout.
		d1 = max(1, min(r1, maxBlocks-1))
		d2 = max(1, min(r2, maxBlocks-d1))
	}
	return &DisplayScale{Num1: d1, Num2: d2, Factor: float64(d1) / float64(num1)}
}

// scaleDifference fits num1 blocks under maxBlocks. When the reduced ratio
// cannot fit it falls back to proportional rounding with at least one block
// taken away.
func scaleDifference(num1, num2, maxBlocks int) *DisplayScale {
	if num1 <= maxBlocks {
		return nil
	}
	r1, r2 := reduceRatio(num1, num2)
	if m := maxBlocks / r1; m >= 1 {
		d1 := r1 * m
		return &DisplayScale{Num1: d1, Num2: r2 * m, Factor: float64(d1) / float64(num1)}
	}
	factor := float64(maxBlocks) / float64(num1)
	return &DisplayScale{
		Num1:   roundHalfUp(float64(num1) * factor),
		Num2:   max(1, roundHalfUp(float64(num2)*factor)),
		Factor: factor,
	}
}

// scaleQuotient shows as many whole groups of the divisor as fit.
func scaleQuotient(dividend, divisor, maxBlocks int) *DisplayScale {
	if dividend <= maxBlocks || divisor <= 0 {
		return nil
	}
	groups := min(maxBlocks/divisor, dividend/divisor)
	shown := groups * divisor
	if shown == 0 {
		return nil
	}
	return &DisplayScale{
		Num1:   shown,
		Num2:   divisor,
		Groups: groups,
		Factor: float64(shown) / float64(dividend),
	}
}

// scaleGroups caps the items drawn in each multiplication group.
func scaleGroups(groups, perGroup, maxItems int) *DisplayScale {
	if perGroup <= maxItems {
		return nil
	}
	return &DisplayScale{
		Num1:   groups,
		Num2:   maxItems,
		Factor: float64(maxItems) / float64(perGroup),
	}
}

// reduceRatio divides a and b by their greatest common divisor.
func reduceRatio(a, b int) (int, int) {
	g := int(gcd(abs(int64(a)), abs(int64(b))))
	if g == 0 {
		return a, b
	}
	return a / g, b / g
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
