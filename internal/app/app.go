package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/eternalcoin/eternalcoin/internal/amount"
	"github.com/eternalcoin/eternalcoin/internal/bridge"
	"github.com/eternalcoin/eternalcoin/internal/config"
	"github.com/eternalcoin/eternalcoin/internal/engine"
	"github.com/eternalcoin/eternalcoin/internal/i18n"
	"github.com/eternalcoin/eternalcoin/internal/instance"
	"github.com/eternalcoin/eternalcoin/internal/logging"
	"github.com/eternalcoin/eternalcoin/internal/node"
	"github.com/eternalcoin/eternalcoin/internal/params"
	"github.com/eternalcoin/eternalcoin/internal/prefs"
	"github.com/eternalcoin/eternalcoin/internal/state"
	"github.com/eternalcoin/eternalcoin/internal/ui"
	"github.com/eternalcoin/eternalcoin/internal/updates"
)

// ClientVersion is compared against the number published at -updateurl.
const ClientVersion = 11

const (
	defaultRPCHost = node.DefaultHost
	debugLogName   = "debug.log"
)

// Version returns the display version of the client.
func Version() string {
	return fmt.Sprintf("v%d", ClientVersion)
}

// Window is the UI the bridge binds to while the program runs.
type Window interface {
	bridge.Target
	Ready() <-chan struct{}
	Run() error
	Quit()
}

// Options injects the process collaborators. The zero value uses the real
// terminal, socket and node client.
type Options struct {
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool
	SocketPath string
	NewWindow  func(ui.Options) Window
	NewNode    func(node.Endpoint) (node.Fetcher, error)
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.IsTerminal == nil {
		o.IsTerminal = func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		}
	}
	if o.NewWindow == nil {
		o.NewWindow = func(opts ui.Options) Window { return ui.NewWindow(opts) }
	}
	if o.NewNode == nil {
		o.NewNode = func(ep node.Endpoint) (node.Fetcher, error) { return node.NewClient(ep) }
	}
	return o
}

// notifier routes engine reports through the bridge while translating with
// the run's catalog, so headless runs are localized too.
type notifier struct {
	*bridge.Bridge
	tr *i18n.Translator
}

func (n notifier) Translate(key string) string { return n.tr.Translate(key) }

// Main runs the control plane and returns the process exit code.
func Main(ctx context.Context, args []string, opts Options) (code int) {
	opts = opts.withDefaults()
	// Bootstrap panics happen before there is a log or a bridge.
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(opts.Stderr, "eternalcoin-qt: runtime panic: %v\n%s", rec, debug.Stack())
			code = 1
		}
	}()
	store := params.Parse(args)

	bootstrap, _, _ := logging.New(logging.Options{Level: "warn", Console: opts.Stderr})
	dispatcher := instance.NewDispatcher(opts.SocketPath, bootstrap)
	if dispatcher.Probe(store.Positional()) == instance.Delegated {
		return 0
	}

	dataDir, err := config.DataDir(store)
	if err != nil {
		tr := i18n.New(store.GetString("-lang", ""))
		msg := tr.Translate(i18n.MsgDataDirMissing)
		fmt.Fprintf(opts.Stderr, "%s: %s %q\n", tr.Translate(i18n.CaptionError), msg, store.GetString("-datadir", ""))
		return 1
	}

	confPath := config.Path(store, dataDir)
	values, err := config.Load(confPath)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "eternalcoin-qt: %v\n", err)
		return 1
	}
	store.Merge(values)

	tr := i18n.New(store.GetString("-lang", ""))
	if helpRequested(store) {
		printHelp(opts.Stdout, tr)
		return 1
	}

	headless := store.GetBool("-daemon", false) || !opts.IsTerminal()

	var console io.Writer
	if headless || store.GetBool("-printtoconsole", false) {
		console = opts.Stdout
	}
	level := "info"
	if store.GetBool("-debug", false) {
		level = "debug"
	}
	format := "console"
	if headless {
		format = "json"
	}
	logPath := filepath.Join(dataDir, debugLogName)
	logger, closer, err := logging.New(logging.Options{
		Level:     level,
		Format:    store.GetString("-logformat", format),
		File:      logPath,
		Rotation:  logging.DefaultRotation,
		Console:   console,
		SessionID: logging.NewSessionID(),
	})
	if err != nil {
		fmt.Fprintf(opts.Stderr, "eternalcoin-qt: init logging: %v\n", err)
		return 1
	}
	defer closer.Close()
	dispatcher.SetLogger(logger)

	logger.Info("eternalcoin-qt starting",
		logging.String("version", Version()),
		logging.String("data_dir", dataDir),
		logging.String("config", confPath),
		logging.String("language", tr.Tag().String()),
		logging.Bool("headless", headless),
	)
	logger.Debug("options in effect", logging.Any("names", store.Names()))

	r := &run{
		opts:       opts,
		store:      store,
		tr:         tr,
		logger:     logger,
		dispatcher: dispatcher,
		dataDir:    dataDir,
		logPath:    logPath,
		headless:   headless,
	}
	return r.main(ctx)
}

// run carries the collaborators of one process after bootstrap.
type run struct {
	opts       Options
	store      *params.Store
	tr         *i18n.Translator
	logger     *slog.Logger
	dispatcher *instance.Dispatcher
	dataDir    string
	logPath    string
	headless   bool

	bridge *bridge.Bridge
	engine *engine.Engine
	win    Window
	status *state.Store
	code   atomic.Int32
	cancel context.CancelFunc
}

func (r *run) main(parent context.Context) (code int) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	r.cancel = cancel

	r.bridge = bridge.New(bridge.Options{
		Fees:   r.feePolicy(),
		Logger: r.logger,
		Stdout: r.opts.Stdout,
		Stderr: r.opts.Stderr,
		Exit:   r.exit,
	})

	// The report goes to the console, never to a window that may be the
	// source of the panic.
	defer func() {
		if rec := recover(); rec != nil {
			r.bridge.Unbind()
			if r.win != nil {
				r.win.Quit()
			}
			r.reportPanic(rec)
			code = 1
		}
	}()

	if err := r.buildEngine(); err != nil {
		r.bridge.MessageBox(ctx, err.Error(), r.tr.Translate(i18n.CaptionError), bridge.StyleError|bridge.StyleModal)
		return 1
	}

	if r.headless {
		return r.runHeadless(ctx)
	}
	return r.runWindow(ctx)
}

func (r *run) feePolicy() bridge.FeePolicy {
	policy := bridge.FeePolicy{MinFee: amount.MinTxFee, Headless: r.headless}
	if raw := r.store.GetString("-paytxfee", ""); raw != "" {
		fee, err := amount.Parse(raw)
		if err != nil {
			r.logger.Warn("ignoring invalid -paytxfee", logging.String("value", raw), logging.Error(err))
		} else {
			policy.TransactionFee = fee
		}
	}
	return policy
}

func (r *run) buildEngine() error {
	port := node.DefaultPort
	if r.store.GetBool("-testnet", false) {
		port = node.TestnetPort
	}
	ep := node.Endpoint{
		Host:     r.store.GetString("-rpcconnect", defaultRPCHost),
		Port:     int(r.store.GetInt("-rpcport", int64(port))),
		User:     r.store.GetString("-rpcuser", ""),
		Password: r.store.GetString("-rpcpassword", ""),
	}
	client, err := r.opts.NewNode(ep)
	if err != nil {
		return fmt.Errorf("node client: %w", err)
	}

	var checker engine.UpdateChecker
	updateURL := strings.TrimSpace(r.store.GetString("-updateurl", ""))
	if updateURL != "" && r.store.GetBool("-checkupdates", true) {
		checker = updates.New(updateURL, ClientVersion)
	}

	r.status = &state.Store{}
	r.engine, err = engine.New(engine.Options{
		DataDir:      r.dataDir,
		Node:         client,
		Store:        r.status,
		Notifier:     notifier{Bridge: r.bridge, tr: r.tr},
		Updates:      checker,
		PollInterval: time.Duration(r.store.GetInt("-pollinterval", 0)) * time.Second,
		Logger:       r.logger,
	})
	return err
}

// exit is the bridge's fallback when a shutdown is queued with no window.
func (r *run) exit(code int) {
	r.code.Store(int32(code))
	r.cancel()
}

func (r *run) startError(err error) string {
	if errors.Is(err, engine.ErrDataDirLocked) {
		return r.tr.Translate(i18n.MsgDataDirLocked)
	}
	return err.Error()
}

func (r *run) runHeadless(ctx context.Context) int {
	if err := r.engine.Start(ctx); err != nil {
		r.logger.Error("engine start failed", logging.Error(err))
		r.bridge.MessageBox(ctx, r.startError(err), r.tr.Translate(i18n.CaptionError), bridge.StyleError|bridge.StyleModal)
		return 1
	}
	<-ctx.Done()
	if err := r.engine.Shutdown(); err != nil {
		r.logger.Warn("engine shutdown failed", logging.Error(err))
	}
	return int(r.code.Load())
}

func (r *run) runWindow(ctx context.Context) int {
	userPrefs := prefs.Load(prefs.PathIn(r.dataDir))
	theme := r.store.GetString("-theme", userPrefs.Theme)
	win := r.opts.NewWindow(ui.Options{
		Store:      r.status,
		Translator: r.tr,
		ThemeName:  theme,
		PrefsPath:  prefs.PathIn(r.dataDir),
		LogPath:    r.logPath,
		Version:    Version(),
		Compact:    r.store.GetBool("-min", userPrefs.Compact),
		Splash:     r.store.GetBool("-splash", true),
	})
	r.win = win

	runErr := make(chan error, 1)
	go func() { runErr <- win.Run() }()

	select {
	case <-win.Ready():
	case err := <-runErr:
		r.logger.Error("window failed to start", logging.Error(err))
		return 1
	}
	r.bridge.Bind(win)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.bringUp(ctx)
	}()

	var err error
	select {
	case err = <-runErr:
	case <-ctx.Done():
		win.Quit()
		err = <-runErr
	}
	r.cancel()
	r.bridge.Unbind()
	if cerr := r.dispatcher.Close(); cerr != nil {
		r.logger.Warn("close instance channel", logging.Error(cerr))
	}
	wg.Wait()
	if serr := r.engine.Shutdown(); serr != nil {
		r.logger.Warn("engine shutdown failed", logging.Error(serr))
	}

	if err != nil {
		r.logger.Error("window exited with error", logging.Error(err))
		return 1
	}
	r.logger.Info("eternalcoin-qt stopped", logging.Int("exit_code", int(r.code.Load())))
	return int(r.code.Load())
}

// bringUp starts the engine behind the splash and then opens the instance
// channel, so URIs only reach a window that is ready for them.
func (r *run) bringUp(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.reportPanic(rec)
			r.code.Store(1)
			r.bridge.QueueShutdown()
		}
	}()

	if err := r.engine.Start(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("engine start failed", logging.Error(err))
		r.bridge.MessageBox(ctx, r.startError(err), r.tr.Translate(i18n.CaptionError), bridge.StyleError|bridge.StyleModal)
		r.code.Store(1)
		r.bridge.QueueShutdown()
		return
	}

	if err := r.dispatcher.Listen(ctx, r.bridge.HandleURI); err != nil && ctx.Err() == nil {
		logging.WarnWithContext(r.logger, "payment requests from other launches will open a new window", "instance_listen_failed",
			logging.Error(err),
			logging.String("socket", r.dispatcher.Path()),
			logging.String(logging.FieldImpact, "single-instance hand-off disabled for this run"),
		)
	}
}

func (r *run) reportPanic(rec any) {
	r.logger.Error("runtime panic",
		logging.String("panic", fmt.Sprint(rec)),
		logging.String("stack", string(debug.Stack())),
	)
	text := r.tr.Translate(i18n.MsgRuntimePanic) + "\n\n" + fmt.Sprint(rec)
	r.bridge.MessageBox(context.Background(), text, r.tr.Translate(i18n.CaptionRuntime), bridge.StyleError)
}
