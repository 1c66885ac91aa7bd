package cli

import (
	"fmt"

	"github.com/mkhurana/reset/internal/models"
	"github.com/mkhurana/reset/internal/stats"
)

type TodayCmd struct {
	Day string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *TodayCmd) Run(ctx *Context) error {
	day, err := ResolveDay(c.Day)
	if err != nil {
		return err
	}

	checks, err := ctx.Store.GetChecksForDay(day)
	if err != nil {
		return err
	}

	fmt.Printf("Reset protocol for %s\n\n", day)
	for _, section := range ctx.Proto {
		fmt.Printf("%s\n", section.Name)
		for i, item := range section.Items {
			mark := "[ ]"
			if checks[models.CheckKey{Section: section.Name, Item: item}] {
				mark = "[x]"
			}
			fmt.Printf("  %s %d. %s\n", mark, i+1, item)
		}
		fmt.Println()
	}

	summary, err := stats.CompletionForDay(ctx.Store, ctx.Proto, day)
	if err != nil {
		return err
	}
	fmt.Printf("Completed: %d/%d (%.1f%%)\n", summary.Done, summary.Total, summary.Pct)
	return nil
}
