package bridge

import "sync"

// Style is a bitmask describing how a message box is presented.
type Style uint32

const (
	StyleInformation Style = 1 << iota
	StyleWarning
	StyleError
	// StyleModal makes MessageBox wait until the UI acknowledges the box.
	StyleModal
)

// Modal reports whether the modal bit is set.
func (s Style) Modal() bool { return s&StyleModal != 0 }

// Severity strips the modal bit.
func (s Style) Severity() Style { return s &^ StyleModal }

type ack struct {
	once sync.Once
	done chan struct{}
}

func newAck() *ack { return &ack{done: make(chan struct{})} }

func (a *ack) resolve() {
	if a == nil {
		return
	}
	a.once.Do(func() { close(a.done) })
}

// MessageBoxMsg asks the UI to show a message box.
type MessageBoxMsg struct {
	Caption string
	Text    string
	Style   Style
	reply   *ack
}

// Acknowledge releases a caller waiting on a modal box. It is a no-op for
// non-modal boxes and safe to call more than once.
func (m MessageBoxMsg) Acknowledge() { m.reply.resolve() }

// FeeRequestMsg asks the user to confirm paying Amount base units as fee.
type FeeRequestMsg struct {
	Amount  int64
	Caption string
	once    *sync.Once
	answer  chan bool
}

// Respond delivers the user's answer. Only the first call counts.
func (m FeeRequestMsg) Respond(approve bool) {
	if m.once == nil {
		return
	}
	m.once.Do(func() { m.answer <- approve })
}

// URIMsg hands a payment URI to the UI.
type URIMsg struct {
	URI   string
	reply *ack
}

// Acknowledge tells the sender the URI has been taken.
func (m URIMsg) Acknowledge() { m.reply.resolve() }

// ProgressMsg carries a startup progress line for the splash.
type ProgressMsg struct {
	Text string
}

// ShutdownMsg asks the UI loop to quit once earlier messages are handled.
type ShutdownMsg struct{}
