package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Window owns the Bubble Tea program and is the target the notification
// bridge delivers to.
type Window struct {
	program *tea.Program
	tr      Translator
	ready   chan struct{}
	once    sync.Once
}

// NewWindow builds the window. Extra program options are appended after the
// alternate-screen default, so tests can swap input and output.
func NewWindow(opts Options, programOpts ...tea.ProgramOption) *Window {
	w := &Window{tr: opts.Translator, ready: make(chan struct{})}
	m := New(opts)
	m.started = w.markReady
	all := append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	w.program = tea.NewProgram(m, all...)
	return w
}

// Send posts msg to the event loop. It blocks until the loop is running and
// returns immediately once the loop has exited.
func (w *Window) Send(msg tea.Msg) {
	w.program.Send(msg)
}

// Translate looks up a user-visible string.
func (w *Window) Translate(key string) string {
	if w.tr == nil {
		return key
	}
	return w.tr.Translate(key)
}

// Ready is closed once the event loop accepts messages, or when Run returns.
func (w *Window) Ready() <-chan struct{} {
	return w.ready
}

// Quit asks the event loop to stop.
func (w *Window) Quit() {
	w.program.Quit()
}

// Run blocks until the window closes. Dialogs still open at that point are
// resolved as cancelled.
func (w *Window) Run() error {
	final, err := w.program.Run()
	w.markReady()
	if m, ok := final.(Model); ok {
		m.DismissAll()
	}
	return err
}

func (w *Window) markReady() {
	w.once.Do(func() { close(w.ready) })
}
