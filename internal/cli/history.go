package cli

import (
	"fmt"
	"time"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/stats"
)

type HistoryCmd struct {
	Days  int  `help:"Number of days to show." default:"14"`
	Chart bool `help:"Show a condensed 60-day trend instead of the per-day table."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive")
	}

	if c.Chart {
		return c.chart(ctx)
	}

	history, err := stats.CompletionHistory(ctx.Store, ctx.Proto, c.Days, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Completion, last %d day(s):\n\n", c.Days)
	for _, entry := range history {
		fmt.Printf("%s  %s %5.1f%%  (%d/%d)\n", entry.Day, Bar(entry.Pct, 20), entry.Pct, entry.Done, entry.Total)
	}

	streak, err := stats.CurrentStreak(ctx.Store, ctx.Proto, constants.StreakThresholdPct, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("\nCurrent streak (>= %.0f%%): %d day(s)\n", constants.StreakThresholdPct, streak)
	return nil
}

func (c *HistoryCmd) chart(ctx *Context) error {
	history, err := stats.CompletionHistory(ctx.Store, ctx.Proto, constants.HistoryChartDays, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Completion trend, last %d day(s):\n\n", constants.HistoryChartDays)
	fmt.Println(Spark(history))
	fmt.Printf("%s .. %s\n", history[0].Day, history[len(history)-1].Day)
	return nil
}
