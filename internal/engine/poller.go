package engine

import (
	"context"
	"time"

	"github.com/eternalcoin/eternalcoin/internal/bridge"
	"github.com/eternalcoin/eternalcoin/internal/i18n"
	"github.com/eternalcoin/eternalcoin/internal/logging"
	"github.com/eternalcoin/eternalcoin/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// calculateBackoff doubles base per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func (e *Engine) poll(ctx context.Context, failures int) {
	timer := time.NewTimer(calculateBackoff(failures, e.opts.PollInterval))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		failures = e.refresh(ctx)
		wait := calculateBackoff(failures, e.opts.PollInterval)
		if failures > 0 {
			e.logger.Debug("node poll backing off",
				logging.Int("failures", failures),
				logging.Duration("retry_in", wait))
		}
		timer.Reset(wait)
	}
}

// refresh polls the node once and returns the consecutive failure count.
func (e *Engine) refresh(ctx context.Context) int {
	store := e.opts.Store
	info, err := e.opts.Node.FetchInfo(ctx)
	if ctx.Err() != nil {
		return store.Snapshot().ConsecutiveFailures
	}

	change := store.Update(info, err)
	if err != nil {
		e.logger.Debug("node poll failed", logging.Error(err))
	}

	notifier := e.opts.Notifier
	switch change {
	case state.WentOffline:
		logging.WarnWithContext(e.logger, "node unreachable", "node_offline",
			logging.Error(err),
			logging.String(logging.FieldImpact, "status shown in the window is stale"),
			logging.String(logging.FieldErrorHint, "check that the node is running and -rpcuser/-rpcpassword match"))
		notifier.MessageBox(ctx, notifier.Translate(i18n.MsgNodeOffline), notifier.Translate(i18n.CaptionWarning), bridge.StyleWarning)
	case state.CameBack:
		e.logger.Info("node reachable again")
		notifier.MessageBox(ctx, notifier.Translate(i18n.MsgNodeBack), notifier.Translate(i18n.CaptionInformation), bridge.StyleInformation)
	}
	return store.Snapshot().ConsecutiveFailures
}
