package tui

import (
	"strings"
	"testing"

	"github.com/MKhiriev/credcache/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestPassphraseModel_Submit(t *testing.T) {
	var m tea.Model = newPassphraseModel("UNLOCK", "", 16)
	m = typeText(m, "secret")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	result := m.(passphraseModel)
	assert.True(t, result.done)
	assert.False(t, result.quitByUser)
	assert.Equal(t, "secret", result.value())
	assert.Empty(t, result.View())
}

func TestPassphraseModel_BlankIsRejected(t *testing.T) {
	var m tea.Model = newPassphraseModel("UNLOCK", "", 16)
	m = typeText(m, "   ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	result := m.(passphraseModel)
	assert.False(t, result.done)
	assert.NotEmpty(t, result.errMsg)
	assert.Contains(t, result.View(), "Passphrase is required")
}

func TestPassphraseModel_CharLimit(t *testing.T) {
	var m tea.Model = newPassphraseModel("UNLOCK", "", 16)
	m = typeText(m, strings.Repeat("x", 20))
	assert.Len(t, m.(passphraseModel).value(), 16)

	m = newPassphraseModel("UNLOCK", "", 0)
	m = typeText(m, strings.Repeat("x", 40))
	assert.Len(t, m.(passphraseModel).value(), 40)
}

func TestPassphraseModel_Cancel(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		var m tea.Model = newPassphraseModel("UNLOCK", "", 16)
		m = typeText(m, "abc")

		m, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.True(t, m.(passphraseModel).quitByUser)
		assert.False(t, m.(passphraseModel).done)
	}
}

func TestPassphraseModel_ViewMasksInput(t *testing.T) {
	var m tea.Model = newPassphraseModel("UNLOCK", "wrong passphrase, please try again", 16)
	m = typeText(m, "hunter2")

	view := m.View()
	assert.Contains(t, view, "UNLOCK")
	assert.Contains(t, view, "wrong passphrase, please try again")
	assert.Contains(t, view, "padded to 16")
	assert.NotContains(t, view, "hunter2")
}

func TestRenderBuildInfo(t *testing.T) {
	view := RenderBuildInfo(models.AppBuildInfo{Version: "1.2.0", Commit: "abc123"})
	assert.Contains(t, view, "Version: 1.2.0")
	assert.Contains(t, view, "Date: N/A")
	assert.Contains(t, view, "Commit: abc123")
}
