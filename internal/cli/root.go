package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkhurana/reset/internal/constants"
	"github.com/mkhurana/reset/internal/models"
	"github.com/mkhurana/reset/internal/protocol"
	"github.com/mkhurana/reset/internal/storage"
	"github.com/mkhurana/reset/internal/validation"
)

type Context struct {
	Store storage.Provider
	Proto protocol.Protocol
}

// Today returns the current calendar day in the storage date format.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ResolveDay maps an optional --day flag value to a concrete day. An empty
// value means today; anything else must be a valid YYYY-MM-DD date.
func ResolveDay(day string) (string, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return Today(), nil
	}
	if err := validation.Day(day); err != nil {
		return "", err
	}
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return "", fmt.Errorf("invalid date %q (not a calendar day)", day)
	}
	return day, nil
}

// Bar renders an ASCII completion bar of the given width for pct in [0,100].
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(pct / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

var sparkLevels = []rune(" ▁▂▃▄▅▆▇█")

// Spark renders one cell per history entry, mapping completion percentage to
// block height. Days without data render as a blank cell.
func Spark(history []models.CompletionStats) string {
	var b strings.Builder
	for _, entry := range history {
		idx := int(entry.Pct / 100.0 * float64(len(sparkLevels)-1))
		if idx < 0 {
			idx = 0
		}
		if idx > len(sparkLevels)-1 {
			idx = len(sparkLevels) - 1
		}
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}
