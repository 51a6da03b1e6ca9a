package components

import (
	"strings"
	"testing"
)

func TestLayoutRow_SumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{80, 4}, {81, 4}, {83, 4}, {10, 3}} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Fatalf("LayoutRow(%d, %d) widths sum to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(80, 0) != nil {
		t.Fatal("LayoutRow with n=0 should return nil")
	}
}

func TestHBarChart_IncludesLabelsAndAmounts(t *testing.T) {
	out := HBarChart([]string{"Rent", "Groceries"}, []float64{1200, 300}, 60)
	if !strings.Contains(out, "Rent") || !strings.Contains(out, "Groceries") {
		t.Fatalf("chart missing labels:\n%s", out)
	}
	if !strings.Contains(out, "$1,200.00") || !strings.Contains(out, "$300.00") {
		t.Fatalf("chart missing amounts:\n%s", out)
	}
}

func TestHBarChart_EmptyInput(t *testing.T) {
	out := HBarChart(nil, nil, 60)
	if !strings.Contains(out, "no expenses yet") {
		t.Fatalf("empty chart output = %q", out)
	}
}
