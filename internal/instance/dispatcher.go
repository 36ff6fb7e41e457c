package instance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eternalcoin/eternalcoin/internal/logging"
)

// URIScheme prefixes every argument treated as a payment URI.
const URIScheme = "eternalcoin:"

// State is a step of the launch state machine.
type State int32

const (
	Probing State = iota
	Delegated
	Starting
	Listening
	Closed
)

func (s State) String() string {
	switch s {
	case Probing:
		return "probing"
	case Delegated:
		return "delegated"
	case Starting:
		return "starting"
	case Listening:
		return "listening"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// URISink receives every URI the dispatcher accepts. bridge.Bridge.HandleURI
// has this shape.
type URISink func(ctx context.Context, uri string)

// IsURI reports whether arg starts with URIScheme, ignoring case.
func IsURI(arg string) bool {
	return len(arg) >= len(URIScheme) && strings.EqualFold(arg[:len(URIScheme)], URIScheme)
}

// Dispatcher runs the single-instance hand-off for one process.
type Dispatcher struct {
	path   string
	logger *slog.Logger
	state  atomic.Int32

	mu       sync.Mutex
	pending  []string
	receiver *Receiver
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewDispatcher prepares a dispatcher for the channel at path. An empty path
// selects DefaultPath.
func NewDispatcher(path string, logger *slog.Logger) *Dispatcher {
	if path == "" {
		path = DefaultPath()
	}
	d := &Dispatcher{path: path, logger: logging.NewComponentLogger(logger, "instance")}
	d.state.Store(int32(Probing))
	return d
}

// SetLogger swaps the logger once the process knows where its logs go. It
// must be called before Listen.
func (d *Dispatcher) SetLogger(logger *slog.Logger) {
	d.logger = logging.NewComponentLogger(logger, "instance")
}

// State returns the current state.
func (d *Dispatcher) State() State {
	return State(d.state.Load())
}

// Path returns the channel location.
func (d *Dispatcher) Path() string { return d.path }

// Probe tries to hand every URI in args to a running instance. It returns
// Delegated when at least one send succeeded and Starting otherwise, keeping
// the undelivered URIs for Listen.
func (d *Dispatcher) Probe(args []string) State {
	if d.State() != Probing {
		return d.State()
	}

	var uris []string
	for _, arg := range args {
		if IsURI(arg) {
			uris = append(uris, arg)
		}
	}

	delegated := false
	for i, uri := range uris {
		err := Send(d.path, uri)
		switch {
		case err == nil:
			delegated = true
			d.logger.Debug("uri handed to running instance")
			continue
		case errors.Is(err, ErrChannelAbsent):
			// No instance yet; the rest would fail the same way.
		default:
			logging.WarnWithContext(d.logger, "uri hand-off failed, starting normally", "instance_send_failed",
				logging.Error(err),
				logging.String("socket", d.path),
				logging.String(logging.FieldImpact, "a second window may open"),
				logging.String(logging.FieldErrorHint, "remove the stale socket if no instance is running"))
		}
		if !delegated {
			d.mu.Lock()
			d.pending = append(d.pending, uris[i:]...)
			d.mu.Unlock()
		}
		break
	}

	next := Starting
	if delegated {
		next = Delegated
	}
	d.state.Store(int32(next))
	return next
}

// Pending returns the URIs still waiting to be delivered by Listen.
func (d *Dispatcher) Pending() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.pending...)
}

// Listen becomes the channel's receiver and forwards URIs to sink from a
// dedicated goroutine: first the URIs kept by Probe, each exactly once,
// then every payload received until Close. When the channel cannot be
// opened the kept URIs are still delivered and the error is returned.
func (d *Dispatcher) Listen(ctx context.Context, sink URISink) error {
	if sink == nil {
		return errors.New("instance listen requires a sink")
	}
	d.mu.Lock()
	if !d.state.CompareAndSwap(int32(Starting), int32(Listening)) {
		d.mu.Unlock()
		return fmt.Errorf("instance listen in state %s", d.State())
	}

	ctx, cancel := context.WithCancel(ctx)
	receiver, err := Listen(d.path)
	pending := d.pending
	d.pending = nil
	d.receiver = receiver
	d.cancel = cancel
	if err != nil {
		d.state.Store(int32(Starting))
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		for _, uri := range pending {
			sink(ctx, uri)
		}
		if receiver != nil {
			d.receiveLoop(ctx, receiver, sink)
		}
	}()

	if err != nil {
		return fmt.Errorf("open instance channel: %w", err)
	}
	d.logger.Debug("instance channel listening", logging.String("socket", d.path))
	return nil
}

func (d *Dispatcher) receiveLoop(ctx context.Context, receiver *Receiver, sink URISink) {
	for {
		payload, err := receiver.Receive()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return
			}
			d.logger.Warn("instance channel read failed", logging.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(100 * time.Millisecond):
			}
			continue
		}
		sink(ctx, payload)
	}
}

// Close releases the channel so later probes see it as absent, then waits
// for the receive goroutine. It is safe to call in any state.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	d.state.Store(int32(Closed))
	receiver, cancel := d.receiver, d.cancel
	d.receiver, d.cancel = nil, nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	var err error
	if receiver != nil {
		err = receiver.Close()
	}
	d.wg.Wait()
	return err
}
