// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-identity/internal/adapter"
	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/tui"
	"github.com/MKhiriev/go-identity/models"
	"github.com/atotto/clipboard"
)

const (
	commandRegister = "register"
	commandLogin    = "login"
	commandMe       = "me"
)

type App struct {
	adapter  adapter.ServerAdapter
	prompter CredentialsPrompter

	token string
	out   io.Writer

	copyToClipboard func(text string) error

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, prompter CredentialsPrompter, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:         serverAdapter,
		prompter:        prompter,
		token:           cfg.Token,
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}
}

// Run executes one command: register, login or me, followed by its flags.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Info().Str("command", command).Msg("running client command")

	switch command {
	case commandRegister:
		return a.runTokenCommand(ctx, command, rest, a.adapter.Register)
	case commandLogin:
		return a.runTokenCommand(ctx, command, rest, a.adapter.Login)
	case commandMe:
		return a.runMe(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

type tokenRequest func(ctx context.Context, creds models.Credentials) (models.AccessToken, error)

func (a *App) runTokenCommand(ctx context.Context, command string, args []string, request tokenRequest) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password (prompted when empty)")
	copyToken := fs.Bool("copy", false, "Copy the token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	creds := models.Credentials{Email: strings.TrimSpace(*email), Password: *password}
	if creds.Email == "" || creds.Password == "" {
		prompted, err := a.prompter.PromptCredentials(ctx, strings.ToUpper(command), creds.Email)
		if err != nil {
			return err
		}
		creds = prompted
	}

	token, err := request(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("command", command).Msg("request failed")
		return fmt.Errorf("%s: %w", command, err)
	}

	fmt.Fprintln(a.out, token.AccessToken)

	if *copyToken {
		if err = a.copyToClipboard(token.AccessToken); err != nil {
			a.logger.Warn().Err(err).Msg("copy token to clipboard")
			return fmt.Errorf("copy token to clipboard: %w", err)
		}
		fmt.Fprintln(a.out, "token copied to clipboard")
	}

	return nil
}

func (a *App) runMe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(commandMe, flag.ContinueOnError)
	fs.SetOutput(a.out)
	token := fs.String("token", a.token, "Bearer token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*token) == "" {
		return ErrNoToken
	}

	profile, err := a.adapter.Me(ctx, *token)
	if err != nil {
		a.logger.Err(err).Msg("me request failed")
		return fmt.Errorf("%s: %w", commandMe, err)
	}

	fmt.Fprintln(a.out, tui.RenderProfile(profile))
	return nil
}
