package constants

const (
	// Telegram reminder settings
	SettingTelegramEnabled         = "telegram_enabled"
	SettingTelegramBotToken        = "telegram_bot_token"
	SettingTelegramChatID          = "telegram_chat_id"
	SettingTelegramReminderTime    = "telegram_reminder_time"
	SettingTelegramReminderMessage = "telegram_reminder_message"
	SettingTelegramLastSentDay     = "telegram_last_sent_day"
	SettingTelegramLastSentAt      = "telegram_last_sent_at"
	SettingTelegramLastError       = "telegram_last_error"

	// Default Settings Values
	DefaultTelegramEnabled      = "0"
	DefaultTelegramReminderTime = "09:00"

	// EnvBotToken overrides the stored bot token when set.
	EnvBotToken = "TELEGRAM_BOT_TOKEN"
)
