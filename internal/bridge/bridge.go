package bridge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eternalcoin/eternalcoin/internal/logging"
)

// Target is the UI side of a binding.
type Target interface {
	// Send posts msg onto the UI loop. It may block until the loop accepts it.
	Send(msg tea.Msg)
	// Translate looks up a user-visible string. It runs on the caller's
	// goroutine and must be safe for concurrent use.
	Translate(key string) string
}

// FeePolicy decides which fees are approved without asking.
type FeePolicy struct {
	MinFee         int64
	TransactionFee int64
	Headless       bool
}

// AutoApprove reports whether fee needs no confirmation.
func (p FeePolicy) AutoApprove(fee int64) bool {
	return fee < p.MinFee || fee <= p.TransactionFee || p.Headless
}

// Options configures a Bridge.
type Options struct {
	Fees        FeePolicy
	Logger      *slog.Logger
	Stdout      io.Writer
	Stderr      io.Writer
	Exit        func(code int)
	SyncTimeout time.Duration
}

// Bridge routes signals from any goroutine to the bound Target.
type Bridge struct {
	current atomic.Pointer[binding]

	fees        FeePolicy
	logger      *slog.Logger
	stdout      io.Writer
	stderr      io.Writer
	exit        func(code int)
	syncTimeout time.Duration
}

// New returns an unbound bridge.
func New(opts Options) *Bridge {
	b := &Bridge{
		fees:        opts.Fees,
		logger:      logging.NewComponentLogger(opts.Logger, "bridge"),
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		exit:        opts.Exit,
		syncTimeout: opts.SyncTimeout,
	}
	if b.stdout == nil {
		b.stdout = os.Stdout
	}
	if b.stderr == nil {
		b.stderr = os.Stderr
	}
	if b.exit == nil {
		b.exit = os.Exit
	}
	return b
}

// Bind attaches target, replacing any previous binding. Callers blocked on
// the previous target are released as if dismissed.
func (b *Bridge) Bind(target Target) {
	if target == nil {
		b.Unbind()
		return
	}
	next := newBinding(target)
	if prev := b.current.Swap(next); prev != nil {
		prev.close()
	}
	b.logger.Debug("ui bound")
}

// Unbind detaches the current target. Queued asynchronous messages that
// have not reached the UI are dropped.
func (b *Bridge) Unbind() {
	if prev := b.current.Swap(nil); prev != nil {
		prev.close()
		b.logger.Debug("ui unbound")
	}
}

// Bound reports whether a target is attached.
func (b *Bridge) Bound() bool {
	return b.current.Load() != nil
}

// MessageBox shows text to the user. With StyleModal it returns once the UI
// acknowledges the box; otherwise it returns immediately.
func (b *Bridge) MessageBox(ctx context.Context, text, caption string, style Style) {
	bd := b.current.Load()
	if bd == nil {
		fmt.Fprintf(b.stdout, "%s: %s\n", caption, text)
		fmt.Fprintf(b.stderr, "%s: %s\n", caption, text)
		return
	}
	msg := MessageBoxMsg{Caption: caption, Text: text, Style: style}
	if !style.Modal() {
		bd.enqueue(msg)
		return
	}
	msg.reply = newAck()
	bd.enqueue(msg)
	if !b.wait(ctx, bd, msg.reply.done) {
		b.logger.Debug("modal message box dismissed without acknowledgement", logging.String("caption", caption))
	}
}

// AskFee asks the user to approve paying fee. Fees the policy auto-approves
// never reach the UI; without a UI everything else is denied.
func (b *Bridge) AskFee(ctx context.Context, fee int64, caption string) bool {
	if b.fees.AutoApprove(fee) {
		return true
	}
	bd := b.current.Load()
	if bd == nil {
		return false
	}
	msg := FeeRequestMsg{Amount: fee, Caption: caption, once: &sync.Once{}, answer: make(chan bool, 1)}
	bd.enqueue(msg)

	ctx, cancel := b.waitContext(ctx)
	defer cancel()
	select {
	case approve := <-msg.answer:
		return approve
	case <-bd.gone:
	case <-ctx.Done():
	}
	b.logger.Debug("fee request denied without an answer", logging.Int64("fee", fee))
	return false
}

// HandleURI passes uri to the UI and waits until the UI has taken it. It is
// dropped when nothing is bound.
func (b *Bridge) HandleURI(ctx context.Context, uri string) {
	bd := b.current.Load()
	if bd == nil {
		b.logger.Debug("uri dropped, ui not bound")
		return
	}
	msg := URIMsg{URI: uri, reply: newAck()}
	bd.enqueue(msg)
	if !b.wait(ctx, bd, msg.reply.done) {
		b.logger.Debug("uri hand-off ended without acknowledgement")
	}
}

// InitMessage posts a startup progress line.
func (b *Bridge) InitMessage(text string) {
	if bd := b.current.Load(); bd != nil {
		bd.enqueue(ProgressMsg{Text: text})
	}
}

// QueueShutdown asks the UI to quit after the messages already queued. With
// no UI bound the exit hook runs with code 0.
func (b *Bridge) QueueShutdown() {
	bd := b.current.Load()
	if bd == nil {
		b.exit(0)
		return
	}
	bd.enqueue(ShutdownMsg{})
}

// Translate resolves key through the bound target, or returns it unchanged.
func (b *Bridge) Translate(key string) string {
	if bd := b.current.Load(); bd != nil {
		return bd.target.Translate(key)
	}
	return key
}

func (b *Bridge) waitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.syncTimeout > 0 {
		return context.WithTimeout(ctx, b.syncTimeout)
	}
	return context.WithCancel(ctx)
}

func (b *Bridge) wait(ctx context.Context, bd *binding, done <-chan struct{}) bool {
	ctx, cancel := b.waitContext(ctx)
	defer cancel()
	select {
	case <-done:
		return true
	case <-bd.gone:
	case <-ctx.Done():
	}
	return false
}

// binding owns one target and the pump that feeds it in FIFO order.
type binding struct {
	target Target
	gone   chan struct{}
	wake   chan struct{}

	mu    sync.Mutex
	queue []tea.Msg
}

func newBinding(target Target) *binding {
	bd := &binding{
		target: target,
		gone:   make(chan struct{}),
		wake:   make(chan struct{}, 1),
	}
	go bd.pump()
	return bd
}

func (bd *binding) enqueue(msg tea.Msg) {
	bd.mu.Lock()
	bd.queue = append(bd.queue, msg)
	bd.mu.Unlock()
	select {
	case bd.wake <- struct{}{}:
	default:
	}
}

func (bd *binding) next() (tea.Msg, bool) {
	bd.mu.Lock()
	defer bd.mu.Unlock()
	if len(bd.queue) == 0 {
		return nil, false
	}
	msg := bd.queue[0]
	bd.queue[0] = nil
	bd.queue = bd.queue[1:]
	return msg, true
}

func (bd *binding) pump() {
	for {
		select {
		case <-bd.gone:
			return
		case <-bd.wake:
		}
		for {
			select {
			case <-bd.gone:
				return
			default:
			}
			msg, ok := bd.next()
			if !ok {
				break
			}
			bd.target.Send(msg)
		}
	}
}

func (bd *binding) close() {
	close(bd.gone)
}
