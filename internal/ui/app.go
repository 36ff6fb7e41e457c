package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eternalcoin/eternalcoin/internal/bridge"
	"github.com/eternalcoin/eternalcoin/internal/i18n"
	"github.com/eternalcoin/eternalcoin/internal/logtail"
	"github.com/eternalcoin/eternalcoin/internal/prefs"
	"github.com/eternalcoin/eternalcoin/internal/state"
)

// Translator resolves user-visible strings.
type Translator interface {
	Translate(key string) string
}

// Options configures the UI.
type Options struct {
	Store      *state.Store
	Translator Translator
	ThemeName  string
	PrefsPath  string
	LogPath    string
	Version    string
	Compact    bool
	Splash     bool
	PollTick   time.Duration
}

// Model is the root window state for Bubble Tea.
type Model struct {
	store     *state.Store
	tr        Translator
	prefsPath string
	logPath   string
	version   string
	pollTick  time.Duration
	keys      keyMap
	started   func()

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	compact  bool
	splash   bool
	progress string
	showHelp bool
	showLogs bool

	// Data state
	snapshot    state.Snapshot
	hasSnapshot bool
	uris        []string

	// Dialogs queue in arrival order; only the first is shown.
	modals []Modal

	logViewport viewport.Model
	logLines    []string
	lastLogRead time.Time
}

type (
	tickMsg     time.Time
	snapshotMsg state.Snapshot
	logLinesMsg []string
	logErrorMsg struct{ err error }
	startedMsg  struct{}
)

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	return Model{
		store:     opts.Store,
		tr:        opts.Translator,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		version:   opts.Version,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		compact:   opts.Compact,
		splash:    opts.Splash,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick), startedCmd(m.started)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.logViewport = viewport.New(m.logWidth(), m.logHeight())
		}
		m.ready = true
		m.resizeLogViewport()
		return m, nil

	case bridge.MessageBoxMsg:
		m.modals = append(m.modals, messageModal{msg: msg})
		return m, nil

	case bridge.FeeRequestMsg:
		m.modals = append(m.modals, newFeeModal(msg, m.tr))
		return m, nil

	case bridge.URIMsg:
		m.uris = append(m.uris, msg.URI)
		if len(m.uris) > URIHistoryLimit {
			m.uris = m.uris[len(m.uris)-URIHistoryLimit:]
		}
		msg.Acknowledge()
		return m, nil

	case bridge.ProgressMsg:
		m.progress = msg.Text
		if msg.Text == m.translate(i18n.MsgDone) {
			m.splash = false
		}
		return m, nil

	case bridge.ShutdownMsg:
		m.DismissAll()
		return m, tea.Quit

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.showLogs && time.Since(m.lastLogRead) >= LogRefreshInterval {
			m.lastLogRead = time.Now()
			cmds = append(cmds, readLogCmd(m.logPath))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.hasSnapshot = true
		return m, nil

	case logLinesMsg:
		m.setLogLines(msg)
		return m, nil

	case logErrorMsg:
		// A missing debug.log just leaves the pane empty.
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.translate(i18n.MsgLoading)
	}
	if len(m.modals) > 0 {
		return m.modals[0].View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.splash {
		return m.renderSplash()
	}
	return m.renderMain()
}

// Pending reports how many dialogs are waiting for the user.
func (m Model) Pending() int { return len(m.modals) }

// DismissAll resolves every queued dialog as cancelled so no caller stays
// blocked once the window is gone.
func (m *Model) DismissAll() {
	for _, modal := range m.modals {
		modal.Dismiss()
	}
	m.modals = nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.DismissAll()
		return m, tea.Quit
	}

	if len(m.modals) > 0 {
		updated, cmd, closed := m.modals[0].Update(msg, m.keys)
		if closed {
			m.modals = m.modals[1:]
		} else {
			m.modals[0] = updated
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleCompact):
		m.compact = !m.compact
		m.savePrefs()
		m.resizeLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		if m.showLogs {
			m.lastLogRead = time.Now()
			return m, readLogCmd(m.logPath)
		}
		return m, nil
	}

	if m.showLogs {
		m.handleLogKey(msg)
	}
	return m, nil
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Compact: m.compact})
}

func (m Model) translate(key string) string {
	if m.tr == nil {
		return key
	}
	return m.tr.Translate(key)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func readLogCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogBufferLimit)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logLinesMsg(lines)
	}
}

func startedCmd(fn func()) tea.Cmd {
	if fn == nil {
		return nil
	}
	return func() tea.Msg {
		fn()
		return startedMsg{}
	}
}
