package problemgen

import (
	"encoding/json"
	"testing"
)

func TestFormatFractionSum(t *testing.T) {
	tests := []struct {
		num, den int
		want     string
	}{
		{3, 4, "3/4"},
		{4, 4, "1"},
		{5, 4, "1 1/4"},
		{6, 3, "2"},
		{7, 3, "2 1/3"},
		{2, 4, "2/4"},
	}

	for _, tc := range tests {
		got := formatFractionSum(tc.num, tc.den)
		if got != tc.want {
			t.Errorf("formatFractionSum(%d, %d) = %q, want %q", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestRoundTenths(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.1 + 2.2, 3.3},
		{0.1 + 0.2, 0.3},
		{4.25, 4.3},
		{-4.25, -4.3},
	}

	for _, tc := range tests {
		if got := roundTenths(tc.in); got != tc.want {
			t.Errorf("roundTenths(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAnswerString(t *testing.T) {
	tests := []struct {
		a    Answer
		want string
	}{
		{Numeric(7), "7"},
		{Numeric(4.3), "4.3"},
		{Numeric(2.0 / 3.0), "0.6666666666666666"},
		{Formatted("1 1/4"), "1 1/4"},
		{Answer{}, "0"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestAnswerJSON(t *testing.T) {
	in := []Answer{Numeric(15), Formatted("$15"), Numeric(4.3)}

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `[15,"$15",4.3]` {
		t.Errorf("marshal = %s", raw)
	}

	var out []Answer
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out[0].Kind() != AnswerNumeric || out[1].Kind() != AnswerFormatted {
		t.Errorf("kinds not preserved: %v", out)
	}
	if out[1].String() != "$15" {
		t.Errorf("out[1] = %q", out[1])
	}
}

func TestAnswerJSON_RejectsObjects(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"x":1}`), &a); err == nil {
		t.Error("expected error for object answer")
	}
}
