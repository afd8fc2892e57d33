// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the interactive terminal screens of the command-line
// client.
package tui

import (
	"context"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	options []tea.ProgramOption

	logger *logger.Logger
}

// New returns a TUI. Extra program options are passed to every Bubble Tea
// program it starts; tests use them to replace the terminal.
func New(logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{options: options, logger: logger}
}

// PromptCredentials shows the credentials form and returns what the user
// submitted. email pre-fills the email field. Returns [ErrUserQuit] when the
// form is cancelled.
func (t *TUI) PromptCredentials(ctx context.Context, title, email string) (models.Credentials, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	finalModel, err := tea.NewProgram(NewCredentialsForm(title, email), options...).Run()
	if err != nil {
		return models.Credentials{}, err
	}

	form, ok := finalModel.(*CredentialsForm)
	if !ok {
		return models.Credentials{}, tea.ErrProgramKilled
	}
	if !form.Submitted() {
		t.logger.Debug().Msg("credentials form cancelled")
		return models.Credentials{}, ErrUserQuit
	}

	return form.Credentials(), nil
}
