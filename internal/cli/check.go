package cli

import (
	"fmt"

	"github.com/mkhurana/reset/internal/models"
)

type CheckCmd struct {
	Section string `arg:"" help:"Protocol section name."`
	Item    int    `arg:"" help:"1-based item number within the section."`

	Day string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	On  bool   `help:"Force the item to checked instead of toggling."`
	Off bool   `help:"Force the item to unchecked instead of toggling."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	if c.On && c.Off {
		return fmt.Errorf("--on and --off are mutually exclusive")
	}

	day, err := ResolveDay(c.Day)
	if err != nil {
		return err
	}

	section, ok := ctx.Proto.Find(c.Section)
	if !ok {
		return fmt.Errorf("unknown section %q", c.Section)
	}
	if c.Item < 1 || c.Item > len(section.Items) {
		return fmt.Errorf("item number %d out of range for %q (1-%d)", c.Item, section.Name, len(section.Items))
	}
	item := section.Items[c.Item-1]

	checks, err := ctx.Store.GetChecksForDay(day)
	if err != nil {
		return err
	}

	checked := !checks[models.CheckKey{Section: section.Name, Item: item}]
	if c.On {
		checked = true
	}
	if c.Off {
		checked = false
	}

	if err := ctx.Store.UpsertCheck(day, section.Name, item, checked); err != nil {
		return err
	}

	state := "Unchecked"
	if checked {
		state = "Checked"
	}
	fmt.Printf("%s %q for %s\n", state, item, day)
	return nil
}
