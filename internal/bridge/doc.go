// Package bridge lets background goroutines ask the UI to do things.
//
// A Bridge is bound to at most one Target at a time, normally the running
// window. Every signal becomes a typed Bubble Tea message delivered to the
// target's loop in emission order. Synchronous signals (modal message boxes,
// fee confirmation, URI hand-off) carry a one-shot reply and block the caller
// until the UI resolves it, the binding is replaced, the caller's context
// ends, or the optional SyncTimeout expires. Anything other than a reply
// counts as dismiss or deny.
//
// When nothing is bound the signals degrade: message boxes are printed to
// stdout and stderr, fee requests are denied unless auto-approved, URIs and
// progress text are dropped, shutdown calls the exit hook and Translate
// returns its key.
//
// Synchronous signals must not be raised from the UI loop itself; the loop
// would wait on its own reply.
package bridge
