package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eternalcoin/eternalcoin/internal/amount"
	"github.com/eternalcoin/eternalcoin/internal/bridge"
	"github.com/eternalcoin/eternalcoin/internal/i18n"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
	// Dismiss resolves the dialog without user input, as if it was cancelled.
	Dismiss()
}

const modalWidth = 56

// messageModal shows one bridge message box until the user closes it.
type messageModal struct {
	msg bridge.MessageBoxMsg
}

func (m messageModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	if key.Matches(km, keys.Confirm) || key.Matches(km, keys.Cancel) {
		m.msg.Acknowledge()
		return m, nil, true
	}
	return m, nil, false
}

func (m messageModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := styles.SeverityStyle(m.msg.Style.Severity()).Bold(true).Render(m.msg.Caption)
	body := lipgloss.NewStyle().Width(modalWidth - 6).Render(m.msg.Text)
	hint := styles.FaintText.Render("enter to close")
	return placeModal(theme, width, height, strings.Join([]string{title, "", body, "", hint}, "\n"))
}

func (m messageModal) Dismiss() { m.msg.Acknowledge() }

// feeModal asks whether to pay a fee above the automatic threshold.
type feeModal struct {
	msg    bridge.FeeRequestMsg
	prompt string
}

// formatter is implemented by translators that can fill catalog templates.
type formatter interface {
	Sprintf(key string, args ...any) string
}

func newFeeModal(msg bridge.FeeRequestMsg, tr Translator) feeModal {
	fee := amount.Format(msg.Amount)
	if f, ok := tr.(formatter); ok {
		return feeModal{msg: msg, prompt: f.Sprintf(i18n.FeePrompt, fee)}
	}
	return feeModal{msg: msg, prompt: fmt.Sprintf(i18n.FeePrompt, fee)}
}

func (m feeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch {
	case key.Matches(km, keys.Yes):
		m.msg.Respond(true)
		return m, nil, true
	case key.Matches(km, keys.No):
		m.msg.Respond(false)
		return m, nil, true
	}
	return m, nil, false
}

func (m feeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	title := styles.WarningText.Bold(true).Render(m.msg.Caption)
	body := lipgloss.NewStyle().Width(modalWidth - 6).Render(m.prompt)
	hint := styles.FaintText.Render("y pay fee · n cancel")
	return placeModal(theme, width, height, strings.Join([]string{title, "", body, "", hint}, "\n"))
}

func (m feeModal) Dismiss() { m.msg.Respond(false) }

func placeModal(theme Theme, width, height int, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(modalWidth).
		Render(content)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
