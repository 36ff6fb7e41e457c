// Package app is the composition root of eternalcoin-qt.
//
// Main wires the pieces together in launch order:
//
//  1. params.Parse reads the command line
//  2. the instance dispatcher probes for a running copy and hands it every
//     eternalcoin: URI; a successful hand-off ends the process with code 0
//  3. the data directory is resolved and the TOML config merged beneath the
//     command line
//  4. -? or -help prints the option table and exits 1
//  5. slog logging to debug.log (lumberjack rotation), plus the console when
//     headless or with -printtoconsole
//  6. the notification bridge, with the fee policy from -paytxfee
//  7. windowed: the Bubble Tea window is started and bound, the engine comes
//     up behind the splash, then the dispatcher starts listening so URIs from
//     later launches reach this window
//  8. headless (-daemon or no terminal): the engine runs until the context
//     is cancelled
//
// # Exit codes
//
// 0 for a normal shutdown or a delegated launch. 1 for a missing data
// directory, a help request, an engine start failure and a recovered panic.
//
// # Shutdown
//
// When the window closes the bridge is unbound first, which releases any
// engine goroutine blocked on a modal box or fee prompt. The instance channel
// is closed next so later launches start on their own, and the engine stops
// last, releasing the data directory lock.
package app
