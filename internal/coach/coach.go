// Package coach turns the day's completion and metrics into canned,
// deterministic recommendations. There is no randomness and no external call;
// the same inputs always produce the same advice.
package coach

import (
	"fmt"
	"strings"

	"github.com/mkhurana/reset/internal/models"
)

// Inputs are the decision variables for one advice generation. Callers are
// responsible for defaulting missing metrics before calling Generate; see
// DefaultInputs.
type Inputs struct {
	CompletionPct float64
	SleepHours    float64
	Energy        int
	TimeAvailable int
	Notes         string
}

// Advice is the structured recommendation for one day.
type Advice struct {
	Food         []string
	Exercise     string
	Improvements []string
	Fallback     string
}

// DefaultInputs returns the fallback decision variables used when a day has
// no recorded metrics.
func DefaultInputs(completionPct float64) Inputs {
	return Inputs{
		CompletionPct: completionPct,
		SleepHours:    7,
		Energy:        5,
		TimeAvailable: 45,
	}
}

// InputsFromMetrics builds decision variables from a day's recorded metrics.
// Fallbacks apply per field: a missing row, a NULL column, or a zero value
// each yield that field's default, so rows written by other tools still
// produce usable advice. Notes carry through as recorded.
func InputsFromMetrics(completionPct float64, m *models.DailyMetrics) Inputs {
	in := DefaultInputs(completionPct)
	if m == nil {
		return in
	}
	if m.SleepHours != 0 {
		in.SleepHours = m.SleepHours
	}
	if m.Energy != 0 {
		in.Energy = m.Energy
	}
	if m.TimeAvailable != 0 {
		in.TimeAvailable = m.TimeAvailable
	}
	in.Notes = m.Notes
	return in
}

// Generate evaluates the advice decision table. Branch order matters: within
// each category the first matching branch wins, and the Improvements list is
// built in a fixed evaluation order and truncated to three entries.
func Generate(in Inputs) Advice {
	sore := hasKeyword(in.Notes, "sore")
	busy := hasKeyword(in.Notes, "busy")
	craving := hasKeyword(in.Notes, "craving")

	shortOnTime := in.TimeAvailable < 30
	lowEnergy := in.Energy <= 4
	lowSleep := in.SleepHours < 6
	lowCompletion := in.CompletionPct < 50

	food := []string{
		"Greek yogurt bowl (2% Greek yogurt, frozen berries, oats, chia) + 2 boiled eggs",
		"Rotisserie chicken wrap (whole wheat tortilla, bagged salad, hummus) + apple",
	}
	if craving {
		food[1] = "Protein snack swap: skyr or cottage cheese + banana + small handful of almonds"
	}

	var exercise string
	switch {
	case lowEnergy || lowSleep || sore:
		exercise = "Walk + mobility: 20-30 min brisk walk + 10 min hips/shoulders mobility."
	case shortOnTime || busy:
		exercise = "Short gym circuit (20-25 min): 3 rounds - goblet squat x10, push-ups x8-12, row x10, plank 30s."
	default:
		exercise = "Gym full session (45-60 min): squat 3x5, bench 3x6-8, row 3x8-10, RDL 3x8, incline walk 10 min."
	}

	var improvements []string
	if lowCompletion {
		improvements = append(improvements, "Pick only 3 non-negotiables today: hydration, protein at 2 meals, bedtime target.")
	}
	if lowSleep {
		improvements = append(improvements, "Shift bedtime 30 minutes earlier tonight and stop caffeine after lunch.")
	}
	if lowEnergy {
		improvements = append(improvements, "Front-load water + protein in the first 2 hours after waking.")
	}
	if busy {
		improvements = append(improvements, "Use a minimum viable day: one workout block, one protein prep, one evening reset.")
	}
	if sore {
		improvements = append(improvements, "Reduce training intensity by 20-30% and prioritize mobility and steps.")
	}
	if craving {
		improvements = append(improvements, "Pre-empt cravings with a protein snack before the usual trigger window.")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Prep tomorrow's gym clothes and breakfast tonight to reduce friction.")
	}
	if len(improvements) > 3 {
		improvements = improvements[:3]
	}

	var fallback string
	if lowEnergy || lowSleep || busy || shortOnTime {
		fallback = "12-15 min plan: 8 min brisk walk + 2 rounds of bodyweight squats x12, incline push-ups x10, plank 30s."
	} else {
		fallback = "15-20 min plan: incline treadmill walk 10 min + dumbbell circuit (squat/press/row) 2 rounds."
	}

	return Advice{
		Food:         food,
		Exercise:     exercise,
		Improvements: improvements,
		Fallback:     fallback,
	}
}

// Markdown renders the advice as the four-section document shown by the
// coach views.
func (a Advice) Markdown() string {
	var b strings.Builder

	b.WriteString("### 🥗 Food\n")
	for _, item := range a.Food {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString("\n### 🏋️ Exercise\n")
	b.WriteString(a.Exercise)
	b.WriteString("\n\n### 🔧 Improvements\n")
	for _, item := range a.Improvements {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString("\n### 🚑 Fallback Plan\n")
	b.WriteString(a.Fallback)

	return b.String()
}

func hasKeyword(notes, keyword string) bool {
	return strings.Contains(strings.ToLower(notes), strings.ToLower(keyword))
}
