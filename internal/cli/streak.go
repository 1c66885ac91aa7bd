package cli

import (
	"fmt"
	"time"

	"github.com/mkhurana/reset/internal/stats"
)

type StreakCmd struct {
	Threshold float64 `help:"Minimum completion percentage for a day to count." default:"70"`
}

func (c *StreakCmd) Run(ctx *Context) error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100")
	}

	streak, err := stats.CurrentStreak(ctx.Store, ctx.Proto, c.Threshold, time.Now())
	if err != nil {
		return err
	}

	today, err := stats.CompletionForDay(ctx.Store, ctx.Proto, Today())
	if err != nil {
		return err
	}

	fmt.Printf("Current streak: %d day(s) at >= %.0f%%\n", streak, c.Threshold)
	fmt.Printf("Today so far:   %d/%d (%.1f%%)\n", today.Done, today.Total, today.Pct)
	if today.Total > 0 && today.Pct < c.Threshold {
		remaining := 0
		for need := today.Done; need <= today.Total; need++ {
			pct := float64(need) / float64(today.Total) * 100.0
			if pct >= c.Threshold {
				remaining = need - today.Done
				break
			}
		}
		fmt.Printf("Items needed to keep the streak today: %d\n", remaining)
	}
	return nil
}
