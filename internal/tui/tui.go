package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("prompt cancelled")

// TUI runs the interactive prompts of the CLI. Prompts are drawn on stderr
// so that command output on stdout can be piped.
type TUI struct {
	in  io.Reader
	out io.Writer
}

func New() *TUI {
	return &TUI{in: os.Stdin, out: os.Stderr}
}

// Passphrase shows a masked prompt and returns what the user typed. hint is
// shown under the input, for example the reason of a previous failure.
// limit caps the number of characters, 0 means no cap.
func (t *TUI) Passphrase(ctx context.Context, title, hint string, limit int) (string, error) {
	program := tea.NewProgram(
		newPassphraseModel(title, hint, limit),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(passphraseModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return "", ErrUserQuit
	}

	return result.value(), nil
}
