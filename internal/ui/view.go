package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/eternalcoin/eternalcoin/internal/amount"
	"github.com/eternalcoin/eternalcoin/internal/i18n"
)

// statusPanelHeight is the number of rows the full status panel uses.
const statusPanelHeight = 8

func (m Model) isCompact() bool {
	return m.compact || (m.width > 0 && m.width < LayoutCompactWidth)
}

// nodeState classifies the latest snapshot for the status badge.
func (m Model) nodeState() string {
	switch {
	case !m.hasSnapshot || (!m.snapshot.HasInfo && m.snapshot.LastError == nil):
		return "starting"
	case m.snapshot.IsOffline():
		return "offline"
	case m.snapshot.Info.Connections == 0:
		return "syncing"
	default:
		return "online"
	}
}

func (m Model) renderMain() string {
	parts := []string{m.renderHeader()}
	if !m.isCompact() {
		parts = append(parts, m.renderStatusPanel())
	}
	if m.showLogs {
		parts = append(parts, m.renderLogPane())
	} else {
		parts = append(parts, m.renderURIs())
	}
	parts = append(parts, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := bg.Render(m.translate(i18n.AppName), styles.AccentText.Bold(true))
	if m.version != "" {
		title += bg.Space() + bg.Render(m.version, styles.MutedText)
	}
	state := m.nodeState()
	badge := styles.StatusStyle(state).Render(strings.ToUpper(state))

	left := title + bg.Spaces(2) + badge
	if m.snapshot.HasInfo {
		summary := fmt.Sprintf("blocks %d · peers %d", m.snapshot.Info.Blocks, m.snapshot.Info.Connections)
		left += bg.Spaces(2) + bg.Render(summary, styles.Text)
	}
	return bg.FillLine(left, m.width)
}

func (m Model) renderStatusPanel() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	info := snap.Info

	row := func(label, value string) string {
		return styles.MutedText.Render(padRight(label, 14)) + styles.Text.Render(value)
	}
	rows := []string{
		row("Balance", amount.Format(int64(info.Balance*float64(amount.Coin)))),
		row("Blocks", fmt.Sprintf("%d", info.Blocks)),
		row("Connections", fmt.Sprintf("%d", info.Connections)),
		row("Difficulty", fmt.Sprintf("%.8g", info.Difficulty)),
	}
	if info.Testnet {
		rows = append(rows, styles.WarningText.Render("testnet"))
	}
	switch {
	case snap.LastError != nil:
		rows = append(rows, styles.DangerText.Render(truncate(snap.LastError.Error(), m.width-4)))
	case info.Errors != "":
		rows = append(rows, styles.WarningText.Render(truncate(info.Errors, m.width-4)))
	}
	if !snap.LastUpdated.IsZero() {
		rows = append(rows, styles.FaintText.Render("updated "+snap.LastUpdated.Format(time.TimeOnly)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(max(m.width-2, 10)).
		Height(statusPanelHeight - 2).
		MaxHeight(statusPanelHeight).
		Render(strings.Join(rows, "\n"))
}

func (m Model) renderURIs() string {
	styles := m.theme.Styles()
	height := m.logHeight()
	var lines []string
	lines = append(lines, styles.AccentText.Bold(true).Render(m.translate(i18n.MsgURIReceived)))
	if len(m.uris) == 0 {
		lines = append(lines, styles.FaintText.Render("none"))
	}
	start := max(len(m.uris)-(height-1), 0)
	for _, uri := range m.uris[start:] {
		lines = append(lines, styles.Text.Render(truncateMiddle(uri, m.width-4)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderMuted)).
		Width(max(m.width-2, 10)).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderLogPane() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Render(m.logViewport.View())
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.WarningText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}
	line := bg.Join(hints, "  ")
	if m.progress != "" && !m.splash {
		line += bg.Spaces(2) + bg.Render(truncate(m.progress, 40), styles.FaintText)
	}
	return bg.FillLine(line, m.width)
}

func (m Model) renderSplash() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render(m.translate(i18n.AppName))
	progress := m.progress
	if progress == "" {
		progress = m.translate(i18n.MsgLoading)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", styles.MutedText.Render(progress))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
