package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/models"
	"github.com/mkhurana/reset/internal/validation"
)

type MetricsCmd struct {
	Show bool `help:"Show recorded metrics instead of editing."`

	Sleep  *float64 `help:"Hours slept last night."`
	Energy *int     `help:"Energy level (1-10)."`
	Time   *int     `help:"Minutes available for training."`
	Notes  *string  `help:"Free-form notes (soreness, cravings, schedule)."`

	Day string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MetricsCmd) Run(ctx *Context) error {
	day, err := ResolveDay(c.Day)
	if err != nil {
		return err
	}

	if c.Show {
		return c.show(ctx, day)
	}

	existing, err := ctx.Store.GetMetrics(day)
	if err != nil {
		return err
	}

	m := models.DailyMetrics{
		Day:           day,
		SleepHours:    constants.DefaultSleepHours,
		Energy:        constants.DefaultEnergy,
		TimeAvailable: constants.DefaultTimeAvailable,
	}
	if existing != nil {
		m = *existing
	}

	if c.Sleep == nil && c.Energy == nil && c.Time == nil && c.Notes == nil {
		if err := metricsForm(&m).Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
	} else {
		if c.Sleep != nil {
			m.SleepHours = *c.Sleep
		}
		if c.Energy != nil {
			m.Energy = *c.Energy
		}
		if c.Time != nil {
			m.TimeAvailable = *c.Time
		}
		if c.Notes != nil {
			m.Notes = *c.Notes
		}
	}

	if err := validation.SleepHours(m.SleepHours); err != nil {
		return err
	}
	if err := validation.Energy(m.Energy); err != nil {
		return err
	}
	if err := validation.TimeAvailable(m.TimeAvailable); err != nil {
		return err
	}

	if err := ctx.Store.UpsertMetrics(m); err != nil {
		return err
	}

	fmt.Printf("Saved metrics for %s\n", day)
	return nil
}

func (c *MetricsCmd) show(ctx *Context, day string) error {
	m, err := ctx.Store.GetMetrics(day)
	if err != nil {
		return err
	}
	if m == nil {
		fmt.Printf("No metrics recorded for %s\n", day)
		return nil
	}

	fmt.Printf("Metrics for %s:\n", day)
	fmt.Printf("  Sleep:          %.1f h\n", m.SleepHours)
	fmt.Printf("  Energy:         %d/10\n", m.Energy)
	fmt.Printf("  Time available: %d min\n", m.TimeAvailable)
	if m.Notes != "" {
		fmt.Printf("  Notes:          %s\n", m.Notes)
	}
	return nil
}

// metricsForm edits the metrics in place through string-backed inputs.
func metricsForm(m *models.DailyMetrics) *huh.Form {
	sleep := strconv.FormatFloat(m.SleepHours, 'f', -1, 64)
	energy := strconv.Itoa(m.Energy)
	timeAvail := strconv.Itoa(m.TimeAvailable)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep (hours)").
				Value(&sleep).
				Validate(func(s string) error {
					f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return err
					}
					if err := validation.SleepHours(f); err != nil {
						return err
					}
					m.SleepHours = f
					return nil
				}),
			huh.NewInput().
				Title("Energy (1-10)").
				Value(&energy).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if err := validation.Energy(i); err != nil {
						return err
					}
					m.Energy = i
					return nil
				}),
			huh.NewInput().
				Title("Time available (minutes)").
				Value(&timeAvail).
				Validate(func(s string) error {
					i, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return err
					}
					if err := validation.TimeAvailable(i); err != nil {
						return err
					}
					m.TimeAvailable = i
					return nil
				}),
			huh.NewInput().
				Title("Notes").
				Description("Soreness, cravings, schedule pressure.").
				Value(&m.Notes),
		),
	)
}
