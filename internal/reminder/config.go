package reminder

import (
	"fmt"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/storage"
	"github.com/mkhurana/reset/internal/validation"
)

// Config is the user-editable reminder configuration.
type Config struct {
	Enabled bool
	Token   string // empty when the token lives in the keyring or environment
	ChatID  string
	Time    string // HH:MM cutoff
	Message string // empty means "use the generated default"
}

// Status is the send bookkeeping persisted by Run.
type Status struct {
	LastSentDay string
	LastSentAt  string
	LastError   string
}

// LoadConfig reads the reminder configuration from the settings table.
func LoadConfig(store storage.Provider) (Config, error) {
	var cfg Config

	enabled, err := store.GetSetting(constants.SettingTelegramEnabled, constants.DefaultTelegramEnabled)
	if err != nil {
		return Config{}, err
	}
	cfg.Enabled = enabled == "1"

	if cfg.Token, err = store.GetSetting(constants.SettingTelegramBotToken, ""); err != nil {
		return Config{}, err
	}
	if cfg.ChatID, err = store.GetSetting(constants.SettingTelegramChatID, ""); err != nil {
		return Config{}, err
	}
	if cfg.Time, err = store.GetSetting(constants.SettingTelegramReminderTime, constants.DefaultTelegramReminderTime); err != nil {
		return Config{}, err
	}
	if cfg.Message, err = store.GetSetting(constants.SettingTelegramReminderMessage, ""); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SaveConfig validates and persists the reminder configuration. Validation
// runs before any write so an invalid cutoff never results in a partial save.
func SaveConfig(store storage.Provider, cfg Config) error {
	if err := validation.ReminderTime(cfg.Time); err != nil {
		return fmt.Errorf("reminder time: %w", err)
	}

	enabled := "0"
	if cfg.Enabled {
		enabled = "1"
	}

	pairs := [][2]string{
		{constants.SettingTelegramEnabled, enabled},
		{constants.SettingTelegramBotToken, cfg.Token},
		{constants.SettingTelegramChatID, cfg.ChatID},
		{constants.SettingTelegramReminderTime, cfg.Time},
		{constants.SettingTelegramReminderMessage, cfg.Message},
	}
	for _, kv := range pairs {
		if err := store.SetSetting(kv[0], kv[1]); err != nil {
			return err
		}
	}

	return nil
}

// LoadStatus reads the send bookkeeping written by Run.
func LoadStatus(store storage.Provider) (Status, error) {
	var st Status
	var err error

	if st.LastSentDay, err = store.GetSetting(constants.SettingTelegramLastSentDay, ""); err != nil {
		return Status{}, err
	}
	if st.LastSentAt, err = store.GetSetting(constants.SettingTelegramLastSentAt, ""); err != nil {
		return Status{}, err
	}
	if st.LastError, err = store.GetSetting(constants.SettingTelegramLastError, ""); err != nil {
		return Status{}, err
	}

	return st, nil
}
