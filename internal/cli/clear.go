package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ClearCmd struct {
	Day   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	day, err := ResolveDay(c.Day)
	if err != nil {
		return err
	}

	if !c.Force {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete all checks and metrics for %s?", day)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.ResetDay(day); err != nil {
		return err
	}

	fmt.Printf("Cleared %s\n", day)
	return nil
}
