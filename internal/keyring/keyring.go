// Package keyring stores the Telegram bot token in the OS keyring so it does
// not have to live in the settings table in plain text.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/mkhurana/reset/internal/constants"
)

var (
	// ErrNotFound is returned when no token is stored in the keyring
	ErrNotFound = errors.New("bot token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetBotToken retrieves the Telegram bot token from the OS keyring.
// Returns ErrNotFound if no token is stored.
func GetBotToken() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetBotToken stores the Telegram bot token in the OS keyring.
func SetBotToken(token string) error {
	if token == "" {
		return errors.New("bot token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store bot token in keyring: %w", err)
	}
	return nil
}

// DeleteBotToken removes the Telegram bot token from the OS keyring.
func DeleteBotToken() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete bot token from keyring: %w", err)
	}
	return nil
}
