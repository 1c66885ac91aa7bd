// Package reminder implements the once-per-day Telegram check-in nudge. The
// gate is re-evaluated on every invocation by comparing the persisted
// last-sent day against the clock; there is no timer loop, so the persisted
// marker is what guarantees at most one send per day.
package reminder

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/keyring"
	"github.com/mkhurana/reset/internal/logger"
	"github.com/mkhurana/reset/internal/protocol"
	"github.com/mkhurana/reset/internal/stats"
	"github.com/mkhurana/reset/internal/storage"
	"github.com/mkhurana/reset/internal/validation"
)

// SendFunc delivers one message and reports (ok, detail).
type SendFunc func(botToken, chatID, text string) (bool, string)

// Service evaluates the reminder gate against the store.
type Service struct {
	Store storage.Provider
	Proto protocol.Protocol
	Send  SendFunc
	Now   func() time.Time
}

func NewService(store storage.Provider, proto protocol.Protocol, send SendFunc) *Service {
	return &Service{
		Store: store,
		Proto: proto,
		Send:  send,
		Now:   time.Now,
	}
}

// Outcome describes one gate evaluation.
type Outcome struct {
	Sent   bool
	Detail string
}

// Run evaluates the gate and sends at most one message. Missing credentials
// skip silently; send failures are persisted as telegram_last_error and are
// never fatal. Retries happen only via the next invocation.
func (s *Service) Run() (Outcome, error) {
	enabled, err := s.Store.GetSetting(constants.SettingTelegramEnabled, constants.DefaultTelegramEnabled)
	if err != nil {
		return Outcome{}, err
	}
	if enabled != "1" {
		return Outcome{Detail: "reminders disabled"}, nil
	}

	token, err := s.ResolveToken()
	if err != nil {
		return Outcome{}, err
	}
	chatID, err := s.Store.GetSetting(constants.SettingTelegramChatID, "")
	if err != nil {
		return Outcome{}, err
	}
	if strings.TrimSpace(token) == "" || strings.TrimSpace(chatID) == "" {
		logger.Debug("Reminder skipped: credentials not configured")
		return Outcome{Detail: "credentials not configured"}, nil
	}

	cutoff, err := s.Store.GetSetting(constants.SettingTelegramReminderTime, constants.DefaultTelegramReminderTime)
	if err != nil {
		return Outcome{}, err
	}
	if err := validation.ReminderTime(cutoff); err != nil {
		return Outcome{Detail: fmt.Sprintf("invalid reminder time: %v", err)}, nil
	}

	now := s.Now()
	today := now.Format(constants.DateFormat)

	lastSent, err := s.Store.GetSetting(constants.SettingTelegramLastSentDay, "")
	if err != nil {
		return Outcome{}, err
	}
	if lastSent == today {
		return Outcome{Detail: "already sent today"}, nil
	}

	if now.Format(constants.TimeFormat) < cutoff {
		return Outcome{Detail: fmt.Sprintf("before cutoff %s", cutoff)}, nil
	}

	text, err := s.Store.GetSetting(constants.SettingTelegramReminderMessage, "")
	if err != nil {
		return Outcome{}, err
	}
	if strings.TrimSpace(text) == "" {
		text, err = s.DefaultMessage(today)
		if err != nil {
			return Outcome{}, err
		}
	}

	ok, detail := s.Send(token, chatID, text)
	if !ok {
		logger.Warn("Reminder send failed", "detail", detail)
		if err := s.Store.SetSetting(constants.SettingTelegramLastError, detail); err != nil {
			return Outcome{}, err
		}
		return Outcome{Detail: detail}, nil
	}

	if err := s.Store.SetSetting(constants.SettingTelegramLastSentDay, today); err != nil {
		return Outcome{}, err
	}
	if err := s.Store.SetSetting(constants.SettingTelegramLastSentAt, now.Format(time.RFC3339)); err != nil {
		return Outcome{}, err
	}
	if err := s.Store.SetSetting(constants.SettingTelegramLastError, ""); err != nil {
		return Outcome{}, err
	}

	logger.Info("Reminder sent", "day", today)
	return Outcome{Sent: true, Detail: detail}, nil
}

// ResolveToken looks up the bot token: OS keyring first, then the settings
// table, then the environment.
func (s *Service) ResolveToken() (string, error) {
	if token, err := keyring.GetBotToken(); err == nil && token != "" {
		return token, nil
	}

	token, err := s.Store.GetSetting(constants.SettingTelegramBotToken, "")
	if err != nil {
		return "", err
	}
	if token != "" {
		return token, nil
	}

	return os.Getenv(constants.EnvBotToken), nil
}

// DefaultMessage builds the generated reminder used when no custom message is
// configured.
func (s *Service) DefaultMessage(day string) (string, error) {
	today, err := stats.CompletionForDay(s.Store, s.Proto, day)
	if err != nil {
		return "", err
	}
	streak, err := stats.CurrentStreak(s.Store, s.Proto, constants.StreakThresholdPct, s.Now())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Daily Reset check-in: %d/%d items done (%.1f%%). Current streak: %d day(s). Close out your protocol before bed.",
		today.Done, today.Total, today.Pct, streak), nil
}
