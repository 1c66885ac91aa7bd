// Package notify holds the Telegram reminder command group.
package notify

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mkhurana/reset/internal/cli"
	"github.com/mkhurana/reset/internal/keyring"
	"github.com/mkhurana/reset/internal/reminder"
	"github.com/mkhurana/reset/internal/telegram"
	"github.com/mkhurana/reset/internal/validation"
)

type NotifyCmd struct {
	Setup  SetupCmd  `cmd:"" help:"Interactively configure the daily reminder."`
	Token  TokenCmd  `cmd:"" help:"Store or clear the bot token in the OS keyring."`
	Send   SendCmd   `cmd:"" help:"Send the reminder now, ignoring the once-per-day gate."`
	Run    RunCmd    `cmd:"" help:"Evaluate the reminder gate once and send if due."`
	Status StatusCmd `cmd:"" help:"Show reminder configuration and send bookkeeping."`
}

type SetupCmd struct{}

func (c *SetupCmd) Run(ctx *cli.Context) error {
	cfg, err := reminder.LoadConfig(ctx.Store)
	if err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable daily Telegram reminder").
				Value(&cfg.Enabled),
			huh.NewInput().
				Title("Bot token").
				Description("Leave empty to use the OS keyring or TELEGRAM_BOT_TOKEN.").
				Value(&cfg.Token),
			huh.NewInput().
				Title("Chat ID").
				Value(&cfg.ChatID),
			huh.NewInput().
				Title("Reminder time (HH:MM)").
				Value(&cfg.Time).
				Validate(validation.ReminderTime),
			huh.NewInput().
				Title("Custom message").
				Description("Leave empty to send the generated daily summary.").
				Value(&cfg.Message),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	if err := reminder.SaveConfig(ctx.Store, cfg); err != nil {
		return err
	}

	fmt.Println("Reminder configuration saved.")
	return nil
}

type TokenCmd struct {
	Token string `arg:"" optional:"" help:"Bot token to store. Omit with --clear to remove."`
	Clear bool   `help:"Remove the stored token from the keyring."`
}

func (c *TokenCmd) Run(ctx *cli.Context) error {
	if c.Clear {
		if err := keyring.DeleteBotToken(); err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return errors.New("no bot token stored in keyring")
			}
			return err
		}
		fmt.Println("✓ Bot token deleted from OS keyring")
		return nil
	}

	if c.Token == "" {
		return errors.New("provide a token to store, or --clear to remove the stored one")
	}
	if err := keyring.SetBotToken(c.Token); err != nil {
		return err
	}
	fmt.Println("✓ Bot token stored in OS keyring")
	return nil
}

type SendCmd struct {
	Message string `help:"Message text. Omit to send the generated daily summary." default:""`
}

func (c *SendCmd) Run(ctx *cli.Context) error {
	svc := newService(ctx)

	token, err := svc.ResolveToken()
	if err != nil {
		return err
	}
	cfg, err := reminder.LoadConfig(ctx.Store)
	if err != nil {
		return err
	}

	text := c.Message
	if text == "" {
		if text, err = svc.DefaultMessage(cli.Today()); err != nil {
			return err
		}
	}

	ok, detail := svc.Send(token, cfg.ChatID, text)
	if !ok {
		return fmt.Errorf("send failed: %s", detail)
	}
	fmt.Println(detail)
	return nil
}

type RunCmd struct{}

func (c *RunCmd) Run(ctx *cli.Context) error {
	outcome, err := newService(ctx).Run()
	if err != nil {
		return err
	}

	if outcome.Sent {
		fmt.Println("Reminder sent.")
	} else {
		fmt.Printf("Not sent: %s\n", outcome.Detail)
	}
	return nil
}

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	cfg, err := reminder.LoadConfig(ctx.Store)
	if err != nil {
		return err
	}
	st, err := reminder.LoadStatus(ctx.Store)
	if err != nil {
		return err
	}

	fmt.Println("Reminder configuration:")
	fmt.Printf("  Enabled:      %v\n", cfg.Enabled)
	fmt.Printf("  Chat ID:      %s\n", orUnset(cfg.ChatID))
	fmt.Printf("  Time:         %s\n", cfg.Time)
	fmt.Printf("  Message:      %s\n", orDefault(cfg.Message))
	fmt.Println("\nSend status:")
	fmt.Printf("  Last sent day: %s\n", orUnset(st.LastSentDay))
	fmt.Printf("  Last sent at:  %s\n", orUnset(st.LastSentAt))
	fmt.Printf("  Last error:    %s\n", orUnset(st.LastError))
	return nil
}

func newService(ctx *cli.Context) *reminder.Service {
	client := telegram.New()
	return reminder.NewService(ctx.Store, ctx.Proto, client.Send)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func orDefault(s string) string {
	if s == "" {
		return "(generated daily summary)"
	}
	return s
}
