package reminder

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/protocol"
	"github.com/mkhurana/reset/internal/storage"
)

var testProto = protocol.Protocol{
	{Name: "Morning", Items: []string{"water", "stretch"}},
}

type fakeSender struct {
	calls []string
	ok    bool
	fail  string
}

func (f *fakeSender) send(botToken, chatID, text string) (bool, string) {
	f.calls = append(f.calls, text)
	if f.ok {
		return true, "Sent"
	}
	return false, f.fail
}

func setupService(t *testing.T) (*Service, storage.Provider, *fakeSender) {
	t.Helper()

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sender := &fakeSender{ok: true}
	svc := NewService(store, testProto, sender.send)
	svc.Now = func() time.Time {
		return time.Date(2026, 8, 29, 20, 15, 0, 0, time.UTC)
	}

	return svc, store, sender
}

// enable configures working credentials through the settings table so the
// keyring is never consulted successfully.
func enable(t *testing.T, store storage.Provider) {
	t.Helper()
	for key, value := range map[string]string{
		constants.SettingTelegramEnabled:      "1",
		constants.SettingTelegramBotToken:     "test-token",
		constants.SettingTelegramChatID:       "12345",
		constants.SettingTelegramReminderTime: "20:00",
	} {
		if err := store.SetSetting(key, value); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunDisabled(t *testing.T) {
	svc, _, sender := setupService(t)

	outcome, err := svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Sent {
		t.Error("Sent = true while disabled")
	}
	if outcome.Detail != "reminders disabled" {
		t.Errorf("detail = %q", outcome.Detail)
	}
	if len(sender.calls) != 0 {
		t.Errorf("send called %d times, want 0", len(sender.calls))
	}
}

func TestRunMissingCredentials(t *testing.T) {
	svc, store, sender := setupService(t)
	if err := store.SetSetting(constants.SettingTelegramEnabled, "1"); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Sent || outcome.Detail != "credentials not configured" {
		t.Errorf("outcome = %+v", outcome)
	}
	if len(sender.calls) != 0 {
		t.Error("send called without credentials")
	}
}

func TestRunBeforeCutoff(t *testing.T) {
	svc, store, sender := setupService(t)
	enable(t, store)
	if err := store.SetSetting(constants.SettingTelegramReminderTime, "22:30"); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Sent {
		t.Error("sent before cutoff")
	}
	if !strings.Contains(outcome.Detail, "before cutoff") {
		t.Errorf("detail = %q", outcome.Detail)
	}
	if len(sender.calls) != 0 {
		t.Error("send called before cutoff")
	}
}

func TestRunSendsOncePerDay(t *testing.T) {
	svc, store, sender := setupService(t)
	enable(t, store)

	outcome, err := svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Sent {
		t.Fatalf("first run not sent: %+v", outcome)
	}
	if len(sender.calls) != 1 {
		t.Fatalf("send called %d times, want 1", len(sender.calls))
	}

	lastDay, err := store.GetSetting(constants.SettingTelegramLastSentDay, "")
	if err != nil {
		t.Fatal(err)
	}
	if lastDay != "2026-08-29" {
		t.Errorf("last sent day = %q, want 2026-08-29", lastDay)
	}
	lastAt, err := store.GetSetting(constants.SettingTelegramLastSentAt, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := time.Parse(time.RFC3339, lastAt); err != nil {
		t.Errorf("last sent at %q is not RFC3339: %v", lastAt, err)
	}

	outcome, err = svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Sent {
		t.Error("second run sent again on the same day")
	}
	if outcome.Detail != "already sent today" {
		t.Errorf("detail = %q", outcome.Detail)
	}
	if len(sender.calls) != 1 {
		t.Errorf("send called %d times after second run, want 1", len(sender.calls))
	}
}

func TestRunNextDaySendsAgain(t *testing.T) {
	svc, store, sender := setupService(t)
	enable(t, store)
	if err := store.SetSetting(constants.SettingTelegramLastSentDay, "2026-08-28"); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Sent {
		t.Errorf("outcome = %+v, want sent", outcome)
	}
	if len(sender.calls) != 1 {
		t.Errorf("send called %d times, want 1", len(sender.calls))
	}
}

func TestRunSendFailure(t *testing.T) {
	svc, store, sender := setupService(t)
	enable(t, store)
	sender.ok = false
	sender.fail = "HTTP 401: unauthorized"

	outcome, err := svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Sent {
		t.Error("Sent = true on failure")
	}

	lastErr, err := store.GetSetting(constants.SettingTelegramLastError, "")
	if err != nil {
		t.Fatal(err)
	}
	if lastErr != "HTTP 401: unauthorized" {
		t.Errorf("last error = %q", lastErr)
	}

	lastDay, err := store.GetSetting(constants.SettingTelegramLastSentDay, "")
	if err != nil {
		t.Fatal(err)
	}
	if lastDay != "" {
		t.Errorf("last sent day = %q after failure, want empty so the next run retries", lastDay)
	}

	// The next invocation retries and clears the error.
	sender.ok = true
	outcome, err = svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Sent {
		t.Errorf("retry outcome = %+v, want sent", outcome)
	}
	lastErr, err = store.GetSetting(constants.SettingTelegramLastError, "")
	if err != nil {
		t.Fatal(err)
	}
	if lastErr != "" {
		t.Errorf("last error = %q after successful retry, want empty", lastErr)
	}
}

func TestRunCustomMessage(t *testing.T) {
	svc, store, sender := setupService(t)
	enable(t, store)
	if err := store.SetSetting(constants.SettingTelegramReminderMessage, "Go close your rings."); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Run(); err != nil {
		t.Fatal(err)
	}
	if len(sender.calls) != 1 || sender.calls[0] != "Go close your rings." {
		t.Errorf("sent %v, want the custom message", sender.calls)
	}
}

func TestRunDefaultMessage(t *testing.T) {
	svc, store, sender := setupService(t)
	enable(t, store)
	if err := store.UpsertCheck("2026-08-29", "Morning", "water", true); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Run(); err != nil {
		t.Fatal(err)
	}
	if len(sender.calls) != 1 {
		t.Fatalf("send called %d times, want 1", len(sender.calls))
	}
	msg := sender.calls[0]
	if !strings.Contains(msg, "1/2 items done (50.0%)") {
		t.Errorf("default message = %q, want completion summary", msg)
	}
	if !strings.Contains(msg, "streak") {
		t.Errorf("default message = %q, want streak mention", msg)
	}
}

func TestRunInvalidCutoff(t *testing.T) {
	svc, store, sender := setupService(t)
	enable(t, store)
	if err := store.SetSetting(constants.SettingTelegramReminderTime, "25:00"); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Sent {
		t.Error("sent with an invalid cutoff")
	}
	if !strings.Contains(outcome.Detail, "invalid reminder time") {
		t.Errorf("detail = %q", outcome.Detail)
	}
	if len(sender.calls) != 0 {
		t.Error("send called with an invalid cutoff")
	}
}

func TestSaveConfigRejectsInvalidTime(t *testing.T) {
	_, store, _ := setupService(t)

	err := SaveConfig(store, Config{Enabled: true, ChatID: "1", Time: "24:00"})
	if err == nil {
		t.Fatal("SaveConfig accepted an invalid time")
	}

	// Nothing was written.
	enabled, gerr := store.GetSetting(constants.SettingTelegramEnabled, "0")
	if gerr != nil {
		t.Fatal(gerr)
	}
	if enabled != "0" {
		t.Error("SaveConfig wrote settings before validation failed")
	}
}

func TestLoadConfigRoundTrip(t *testing.T) {
	_, store, _ := setupService(t)

	in := Config{Enabled: true, Token: "tok", ChatID: "42", Time: "21:15", Message: "hi"}
	if err := SaveConfig(store, in); err != nil {
		t.Fatal(err)
	}

	out, err := LoadConfig(store)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("LoadConfig = %+v, want %+v", out, in)
	}
}
