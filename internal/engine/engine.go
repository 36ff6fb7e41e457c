package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/eternalcoin/eternalcoin/internal/bridge"
	"github.com/eternalcoin/eternalcoin/internal/i18n"
	"github.com/eternalcoin/eternalcoin/internal/logging"
	"github.com/eternalcoin/eternalcoin/internal/node"
	"github.com/eternalcoin/eternalcoin/internal/state"
	"github.com/eternalcoin/eternalcoin/internal/updates"
)

// ErrDataDirLocked means another process holds the data directory.
var ErrDataDirLocked = errors.New("data directory is locked by another process")

const lockFile = ".lock"

// Notifier is the subset of the bridge the engine talks through.
type Notifier interface {
	MessageBox(ctx context.Context, text, caption string, style bridge.Style)
	InitMessage(text string)
	Translate(key string) string
}

// UpdateChecker reports whether a newer client exists.
type UpdateChecker interface {
	Check(ctx context.Context) (updates.Result, int, error)
}

// Options configures an Engine.
type Options struct {
	DataDir      string
	Node         node.Fetcher
	Store        *state.Store
	Notifier     Notifier
	Updates      UpdateChecker
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Engine owns the background goroutines of one run.
type Engine struct {
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	lock    *flock.Flock
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// New validates opts and returns an idle engine.
func New(opts Options) (*Engine, error) {
	if opts.DataDir == "" {
		return nil, errors.New("engine requires a data directory")
	}
	if opts.Node == nil {
		return nil, errors.New("engine requires a node client")
	}
	if opts.Notifier == nil {
		return nil, errors.New("engine requires a notifier")
	}
	if opts.Store == nil {
		opts.Store = &state.Store{}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	return &Engine{opts: opts, logger: logging.NewComponentLogger(opts.Logger, "engine")}, nil
}

// Store returns the status store the poller writes.
func (e *Engine) Store() *state.Store { return e.opts.Store }

// Start locks the data directory and launches the poller and the update
// check. It returns once the first poll has finished.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return errors.New("engine already started")
	}

	notifier := e.opts.Notifier
	notifier.InitMessage(notifier.Translate(i18n.MsgLoading))

	lock := flock.New(filepath.Join(e.opts.DataDir, lockFile))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire data directory lock: %w", err)
	}
	if !ok {
		return ErrDataDirLocked
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.lock = lock
	e.cancel = cancel
	e.running = true

	notifier.InitMessage(notifier.Translate(i18n.MsgLoadingNode))
	failures := e.refresh(runCtx)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.poll(runCtx, failures)
	}()

	if e.opts.Updates != nil {
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			e.checkUpdates(runCtx)
		}()
	}

	notifier.InitMessage(notifier.Translate(i18n.MsgDone))
	e.logger.Info("engine started", logging.String("datadir", e.opts.DataDir))
	return nil
}

// Shutdown stops the background goroutines and releases the data directory.
// It is safe to call on an engine that never started.
func (e *Engine) Shutdown() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return nil
	}
	e.cancel()
	e.wg.Wait()
	e.running = false

	if err := e.lock.Unlock(); err != nil {
		return fmt.Errorf("release data directory lock: %w", err)
	}
	e.logger.Info("engine stopped")
	return nil
}

func (e *Engine) checkUpdates(ctx context.Context) {
	notifier := e.opts.Notifier
	result, latest, err := e.opts.Updates.Check(ctx)
	if ctx.Err() != nil {
		return
	}

	var text string
	switch result {
	case updates.Available:
		text = i18n.MsgUpdate
	case updates.UpToDate:
		text = i18n.MsgUpToDate
	default:
		text = i18n.MsgUpdateFailed
		logging.WarnWithContext(e.logger, "update check failed", "update_check_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "user is not told about new releases"))
	}
	e.logger.Info("update check finished", logging.String("result", result.String()), logging.Int("latest", latest))
	notifier.MessageBox(ctx, notifier.Translate(text), notifier.Translate(i18n.CaptionUpdates), bridge.StyleInformation)
}
