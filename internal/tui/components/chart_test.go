package components

import (
	"strings"
	"testing"
)

func TestSparkline_ScalesToPeak(t *testing.T) {
	out := Sparkline([]float64{0, 50, 100})
	if !strings.Contains(out, "▁") {
		t.Fatalf("sparkline missing low block: %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Fatalf("sparkline missing peak block: %q", out)
	}
}

func TestSparkline_Empty(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("Sparkline(nil) = %q, want empty", got)
	}
}

func TestSparkline_AllZeroDoesNotDivideByZero(t *testing.T) {
	out := Sparkline([]float64{0, 0, 0})
	if !strings.Contains(out, "▁▁▁") {
		t.Fatalf("all-zero sparkline = %q, want three low blocks", out)
	}
}
