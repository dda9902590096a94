// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passphraseModel is the Bubble Tea model for the masked passphrase prompt.
// It finishes with either done or quitByUser set.
type passphraseModel struct {
	title string
	hint  string
	limit int

	input      textinput.Model
	errMsg     string
	done       bool
	quitByUser bool
}

// newPassphraseModel creates a focused masked input. A limit of 0 means no
// character limit.
func newPassphraseModel(title, hint string, limit int) passphraseModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.CharLimit = limit
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passphraseModel{
		title: title,
		hint:  hint,
		limit: limit,
		input: input,
	}
}

func (m passphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - enter       accepts a non-blank value and quits the program;
//   - esc/ctrl+c  aborts the prompt.
//
// All other messages go to the text input.
func (m passphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.input.Value()) == "" {
				m.errMsg = "Passphrase is required"
				return m, nil
			}
			m.errMsg = ""
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passphraseModel) View() string {
	if m.done || m.quitByUser {
		return ""
	}

	var b strings.Builder
	b.WriteString("Passphrase │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.limit > 0 {
		b.WriteString(helpStyle.Render("Shorter passphrases are padded to 16 characters."))
		b.WriteString("\n")
	}

	switch {
	case m.errMsg != "":
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	case m.hint != "":
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.hint))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "enter: confirm │ esc: cancel")
}

func (m passphraseModel) value() string {
	return m.input.Value()
}
