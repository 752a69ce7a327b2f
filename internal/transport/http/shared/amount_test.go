package shared

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"3000", 3000, true},
		{"  3000.50 ", 3000.5, true},
		{"S/ 3,000.00", 3000, true},
		{"-500", -500, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"S/", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseAmount(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseAmount(%q): expected (%v, %v), got (%v, %v)", tc.raw, tc.want, tc.ok, got, ok)
		}
	}
}

func TestValidatorAmountAndRange(t *testing.T) {
	v := NewValidator()
	if got := v.Amount("months", "", 12); got != 12 {
		t.Fatalf("expected fallback 12, got %v", got)
	}
	if got := v.Amount("months", "6", 12); got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %+v", v.Issues())
	}

	v.Amount("salary", "lots", 0)
	v.Range("months", 13, 0, 12)
	v.Positive("bonus", -1)
	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", issues)
	}
	if issues[0].Field != "bonus" || issues[1].Field != "months" || issues[2].Field != "salary" {
		t.Fatalf("expected issues sorted by field, got %+v", issues)
	}
	if issues[1].Reason != "must be between 0 and 12" {
		t.Fatalf("unexpected reason %q", issues[1].Reason)
	}
}

func TestValidatorEnum(t *testing.T) {
	v := NewValidator()
	v.Enum("scheme", "AFP", []string{"afp", "onp"}, "must be afp or onp")
	v.Enum("scheme", "", []string{"afp", "onp"}, "must be afp or onp")
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %+v", v.Issues())
	}
	v.Enum("scheme", "sis", []string{"afp", "onp"}, "must be afp or onp")
	if !v.HasIssues() {
		t.Fatal("expected an issue for unknown scheme")
	}
}
