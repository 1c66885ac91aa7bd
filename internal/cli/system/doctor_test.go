package system

import (
	"path/filepath"
	"testing"

	"github.com/mkhurana/reset/internal/cli"
	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/protocol"
	"github.com/mkhurana/reset/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return &cli.Context{Store: store, Proto: protocol.Default()}
}

func TestCheckClockTimezone(t *testing.T) {
	if err := checkClockTimezone(); err != nil {
		t.Errorf("checkClockTimezone() = %v, want nil on a sane system", err)
	}
}

func TestCheckSchema(t *testing.T) {
	ctx := setupTestContext(t)

	if err := checkSchema(ctx); err != nil {
		t.Errorf("checkSchema() = %v, want nil on a fresh store", err)
	}
}

func TestCheckReminderTimeSetting(t *testing.T) {
	ctx := setupTestContext(t)

	t.Run("seeded default is valid", func(t *testing.T) {
		if err := checkReminderTimeSetting(ctx); err != nil {
			t.Errorf("checkReminderTimeSetting() = %v, want nil", err)
		}
	})

	t.Run("corrupt value fails", func(t *testing.T) {
		if err := ctx.Store.SetSetting(constants.SettingTelegramReminderTime, "25:99"); err != nil {
			t.Fatal(err)
		}
		if err := checkReminderTimeSetting(ctx); err == nil {
			t.Error("checkReminderTimeSetting() = nil for corrupt value, want error")
		}
	})
}

func TestCheckCheckRowsValid(t *testing.T) {
	ctx := setupTestContext(t)
	proto := ctx.Proto
	today := cli.Today()

	t.Run("protocol items pass", func(t *testing.T) {
		if err := ctx.Store.UpsertCheck(today, proto[0].Name, proto[0].Items[0], true); err != nil {
			t.Fatal(err)
		}
		if err := checkCheckRowsValid(ctx); err != nil {
			t.Errorf("checkCheckRowsValid() = %v, want nil", err)
		}
	})

	t.Run("orphan rows are reported", func(t *testing.T) {
		if err := ctx.Store.UpsertCheck(today, "Retired Section", "old item", true); err != nil {
			t.Fatal(err)
		}
		if err := checkCheckRowsValid(ctx); err == nil {
			t.Error("checkCheckRowsValid() = nil for orphan row, want error")
		}
	})
}
