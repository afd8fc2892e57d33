// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-identity/models"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(data)
	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys + " │ ctrl+c: quit"))
	} else {
		b.WriteString(helpStyle.Render("ctrl+c: quit"))
	}

	return appStyle.Render(b.String())
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// RenderProfile formats an identity for the terminal.
func RenderProfile(p models.UserProfile) string {
	rows := []string{
		labelStyle.Render("id") + p.ID.String(),
		labelStyle.Render("email") + p.Email,
		labelStyle.Render("phone") + valueOrDash(p.Phone),
		labelStyle.Render("created") + p.CreatedAt.UTC().Format(time.RFC3339),
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
