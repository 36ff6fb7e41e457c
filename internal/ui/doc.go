// Package ui is the terminal window of the control plane, built on Bubble Tea.
//
// The window is the notification bridge's target: the bridge posts
// MessageBoxMsg, FeeRequestMsg, URIMsg, ProgressMsg and ShutdownMsg onto the
// event loop, in the order they were raised, and the Model turns each one into
// a dialog, a list entry, a splash line or a quit.
//
// # Dialogs
//
// Message boxes and fee prompts queue up and are shown one at a time. Closing
// a message box acknowledges it, which releases a caller blocked on a modal
// box. A fee prompt answers y or n. When the window quits with dialogs still
// open, every one of them is resolved as cancelled so no caller stays blocked.
//
// # Views
//
//   - Splash: startup progress until the engine reports it is done
//   - Status: node reachability, balance, blocks and peers from state.Store
//   - Payment requests: URIs handed over by the single-instance dispatcher
//   - Debug log: a scrolling tail of debug.log colored by level
//
// The compact layout (-min, or a narrow terminal) drops the status panel. The
// theme and layout choices persist through the prefs package.
package ui
