// Package validation holds input checks shared by the CLI and TUI. Invalid
// values are rejected before anything is persisted.
package validation

import (
	"fmt"
	"strconv"

	"github.com/mkhurana/reset/internal/constants"
)

// ReminderTime validates an "HH:MM" reminder cutoff: exactly five characters,
// a colon at index 2, numeric hour 0-23 and minute 0-59.
func ReminderTime(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil {
		return fmt.Errorf("invalid minute in %q", s)
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d out of range (0-23)", hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("minute %d out of range (0-59)", minute)
	}
	return nil
}

// SleepHours validates a sleep duration in hours.
func SleepHours(f float64) error {
	if f < 0 || f > constants.SleepHoursMax {
		return fmt.Errorf("sleep hours %.1f out of range (0-%.0f)", f, constants.SleepHoursMax)
	}
	return nil
}

// Energy validates a 1-10 energy rating.
func Energy(n int) error {
	if n < constants.EnergyMin || n > constants.EnergyMax {
		return fmt.Errorf("energy %d out of range (%d-%d)", n, constants.EnergyMin, constants.EnergyMax)
	}
	return nil
}

// TimeAvailable validates available minutes.
func TimeAvailable(n int) error {
	if n < 0 || n > constants.TimeAvailableMax {
		return fmt.Errorf("time available %d out of range (0-%d)", n, constants.TimeAvailableMax)
	}
	return nil
}

// Day validates a YYYY-MM-DD date string. It checks shape only; the time
// package handles calendar validity where days are parsed.
func Day(s string) error {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return nil
}
