package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/models"
)

func TestResolveDay(t *testing.T) {
	t.Run("empty means today", func(t *testing.T) {
		day, err := ResolveDay("")
		if err != nil {
			t.Fatal(err)
		}
		if day != time.Now().Format(constants.DateFormat) {
			t.Errorf("ResolveDay(\"\") = %q, want today", day)
		}
	})

	t.Run("valid date passes through", func(t *testing.T) {
		day, err := ResolveDay("2026-08-29")
		if err != nil {
			t.Fatal(err)
		}
		if day != "2026-08-29" {
			t.Errorf("ResolveDay = %q", day)
		}
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		day, err := ResolveDay("  2026-08-29 ")
		if err != nil {
			t.Fatal(err)
		}
		if day != "2026-08-29" {
			t.Errorf("ResolveDay = %q", day)
		}
	})

	t.Run("invalid dates are rejected", func(t *testing.T) {
		// The first two fail the shape check, the third is well-shaped but
		// not a calendar day.
		for _, s := range []string{"2026-8-29", "29/08/2026", "2026-02-30", "garbage"} {
			if _, err := ResolveDay(s); err == nil {
				t.Errorf("ResolveDay(%q) = nil error, want failure", s)
			}
		}
	})
}

func TestSpark(t *testing.T) {
	history := []models.CompletionStats{
		{Day: "2026-08-26", Pct: 0},
		{Day: "2026-08-27", Pct: 50},
		{Day: "2026-08-28", Pct: 100},
		{Day: "2026-08-29", Pct: 33.3},
	}

	got := Spark(history)
	runes := []rune(got)
	if len(runes) != len(history) {
		t.Fatalf("Spark rendered %d cells for %d entries", len(runes), len(history))
	}
	if runes[0] != ' ' {
		t.Errorf("0%% cell = %q, want blank", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("100%% cell = %q, want full block", runes[2])
	}
	if runes[1] == ' ' || runes[1] == '█' {
		t.Errorf("50%% cell = %q, want a partial block", runes[1])
	}

	if Spark(nil) != "" {
		t.Error("Spark(nil) should render nothing")
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		pct    float64
		width  int
		filled int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{33.3, 20, 6},
		{150, 10, 10},
		{-5, 10, 0},
	}
	for _, tt := range tests {
		got := Bar(tt.pct, tt.width)
		filled := strings.Count(got, "█")
		if filled != tt.filled {
			t.Errorf("Bar(%v, %d) filled %d cells, want %d", tt.pct, tt.width, filled, tt.filled)
		}
		if total := strings.Count(got, "█") + strings.Count(got, "░"); total != tt.width {
			t.Errorf("Bar(%v, %d) has %d cells, want %d", tt.pct, tt.width, total, tt.width)
		}
	}
}
