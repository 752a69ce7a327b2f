package money

import (
	"math"
	"strings"
	"testing"
)

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		306.90000000000003: 306.9,
		33.93333333:        33.93,
		2659.1666666:       2659.17,
		0.005:              0.01,
		-2.345:             -2.35,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestFixed2(t *testing.T) {
	if got := Fixed2(3000); got != "3000.00" {
		t.Fatalf("expected 3000.00, got %q", got)
	}
	if got := Fixed2(33.9333333); got != "33.93" {
		t.Fatalf("expected 33.93, got %q", got)
	}
}

func TestFormat(t *testing.T) {
	got := Format(3000)
	if !strings.HasPrefix(got, "S/ ") || !strings.HasSuffix(got, "000.00") {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(10.23); got != "10.23%" {
		t.Fatalf("expected 10.23%%, got %q", got)
	}
	if got := Percent(13); got != "13%" {
		t.Fatalf("expected 13%%, got %q", got)
	}
}

func TestNonFiniteDoesNotPanic(t *testing.T) {
	if got := Round2(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf back, got %v", got)
	}
	if got := Fixed2(math.NaN()); got != "NaN" {
		t.Fatalf("expected NaN, got %q", got)
	}
	if got := Format(math.Inf(1)); got != "S/ +Inf" {
		t.Fatalf("expected S/ +Inf, got %q", got)
	}
	if got := Format(math.Inf(-1)); got != "S/ -Inf" {
		t.Fatalf("expected S/ -Inf, got %q", got)
	}
	if got := Percent(math.NaN()); got != "NaN%" {
		t.Fatalf("expected NaN%%, got %q", got)
	}
}
