package cli

import (
	"fmt"

	"github.com/mkhurana/reset/internal/coach"
	"github.com/mkhurana/reset/internal/stats"
)

type CoachCmd struct {
	Day string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CoachCmd) Run(ctx *Context) error {
	day, err := ResolveDay(c.Day)
	if err != nil {
		return err
	}

	summary, err := stats.CompletionForDay(ctx.Store, ctx.Proto, day)
	if err != nil {
		return err
	}

	metrics, err := ctx.Store.GetMetrics(day)
	if err != nil {
		return err
	}
	in := coach.InputsFromMetrics(summary.Pct, metrics)

	fmt.Printf("Coach advice for %s (%.1f%% complete)\n\n", day, summary.Pct)
	fmt.Println(coach.Generate(in).Markdown())
	return nil
}
