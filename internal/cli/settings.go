package cli

import (
	"fmt"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Key   string `arg:"" optional:"" help:"Setting key to read or write."`
	Value string `arg:"" optional:"" help:"New value for the key."`
}

// settingKeys are the keys exposed through the settings command. Bookkeeping
// keys (last sent day, last error) are readable but not listed for writing.
var settingKeys = []string{
	constants.SettingTelegramEnabled,
	constants.SettingTelegramChatID,
	constants.SettingTelegramReminderTime,
	constants.SettingTelegramReminderMessage,
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if c.List || c.Key == "" {
		return c.list(ctx)
	}

	if c.Value == "" {
		value, err := ctx.Store.GetSetting(c.Key, "")
		if err != nil {
			return err
		}
		fmt.Printf("%s = %q\n", c.Key, value)
		return nil
	}

	if c.Key == constants.SettingTelegramReminderTime {
		if err := validation.ReminderTime(c.Value); err != nil {
			return err
		}
	}
	if c.Key == constants.SettingTelegramEnabled && c.Value != "0" && c.Value != "1" {
		return fmt.Errorf("%s must be 0 or 1", constants.SettingTelegramEnabled)
	}

	if err := ctx.Store.SetSetting(c.Key, c.Value); err != nil {
		return err
	}
	fmt.Printf("Set %s\n", c.Key)
	return nil
}

func (c *SettingsCmd) list(ctx *Context) error {
	fmt.Println("Current Settings:")
	for _, key := range settingKeys {
		value, err := ctx.Store.GetSetting(key, "")
		if err != nil {
			return err
		}
		fmt.Printf("  %-26s %q\n", key, value)
	}
	return nil
}
