// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	emailField = iota
	passwordField
)

// CredentialsForm is the Bubble Tea model that reads an email and a
// password. The password input is masked. Enter on the last field submits,
// esc and ctrl+c cancel.
type CredentialsForm struct {
	title string

	inputs    []textinput.Model
	focus     int
	errMsg    string
	submitted bool
	cancelled bool
}

func NewCredentialsForm(title, email string) *CredentialsForm {
	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.SetValue(email)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = crypto.MaxPasswordBytes
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	f := &CredentialsForm{
		title:  title,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
	if email != "" {
		f.focus = passwordField
	}
	f.inputs[f.focus].Focus()
	return f
}

// Init implements [tea.Model].
func (f *CredentialsForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (f *CredentialsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit), key.Matches(keyMsg, keys.esc):
			f.cancelled = true
			return f, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			f.setFocus(f.focus + 1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus(f.focus - 1)
			return f, nil
		case key.Matches(keyMsg, keys.enter):
			if f.focus == emailField {
				f.setFocus(passwordField)
				return f, nil
			}
			return f.submit()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *CredentialsForm) submit() (tea.Model, tea.Cmd) {
	creds := f.Credentials()
	switch {
	case creds.Email == "":
		f.errMsg = "email is required"
		f.setFocus(emailField)
		return f, nil
	case creds.Password == "":
		f.errMsg = "password is required"
		f.setFocus(passwordField)
		return f, nil
	}

	f.errMsg = ""
	f.submitted = true
	return f, tea.Quit
}

func (f *CredentialsForm) setFocus(i int) {
	n := len(f.inputs)
	i = ((i % n) + n) % n

	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// View implements [tea.Model].
func (f *CredentialsForm) View() string {
	if f.submitted || f.cancelled {
		return ""
	}

	labels := []string{"Email", "Password"}

	var b strings.Builder
	for i, input := range f.inputs {
		label := labelStyle.Render(labels[i])
		if i == f.focus {
			label = focusedStyle.Render(labelStyle.Render(labels[i]))
		}
		b.WriteString(label)
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
	}

	return renderPage(f.title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ esc: cancel")
}

// Credentials returns the current form values with the email trimmed.
func (f *CredentialsForm) Credentials() models.Credentials {
	return models.Credentials{
		Email:    strings.TrimSpace(f.inputs[emailField].Value()),
		Password: f.inputs[passwordField].Value(),
	}
}

func (f *CredentialsForm) Submitted() bool {
	return f.submitted
}
