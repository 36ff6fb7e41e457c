package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eternalcoin/eternalcoin/internal/logtail"
)

// header + footer + pane border
const logChrome = 4

func (m Model) logWidth() int {
	return max(m.width-2, 10)
}

func (m Model) logHeight() int {
	h := m.height - logChrome
	if !m.isCompact() {
		h -= statusPanelHeight
	}
	return max(h, 3)
}

func (m *Model) resizeLogViewport() {
	if !m.ready {
		return
	}
	m.logViewport.Width = m.logWidth()
	m.logViewport.Height = m.logHeight()
	m.renderLogContent()
}

func (m *Model) setLogLines(lines []string) {
	follow := m.logViewport.AtBottom() || len(m.logLines) == 0
	m.logLines = lines
	m.renderLogContent()
	if follow {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) renderLogContent() {
	if len(m.logLines) == 0 {
		m.logViewport.SetContent(m.theme.Styles().FaintText.Render("debug.log is empty"))
		return
	}
	styles := m.theme.Styles()
	width := m.logViewport.Width
	rendered := make([]string, 0, len(m.logLines))
	for _, raw := range m.logLines {
		rendered = append(rendered, formatLogLine(styles, raw, width))
	}
	m.logViewport.SetContent(strings.Join(rendered, "\n"))
}

func formatLogLine(styles Styles, raw string, width int) string {
	line, ok := logtail.Parse(raw)
	if !ok {
		return styles.MutedText.Render(truncate(raw, width))
	}
	var b strings.Builder
	b.WriteString(styles.FaintText.Render(line.Time))
	b.WriteString(" ")
	b.WriteString(styles.LevelStyle(line.Level).Render(padRight(line.Level, 5)))
	b.WriteString(" ")
	used := len(line.Time) + 7
	if line.Component != "" {
		b.WriteString(styles.AccentText.Render(line.Component))
		b.WriteString(" ")
		used += len(line.Component) + 1
	}
	b.WriteString(styles.Text.Render(truncate(line.Message, width-used)))
	return b.String()
}

func (m *Model) handleLogKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
	}
}
