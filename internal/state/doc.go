// Package state shares the node's latest status between the engine's poller
// and the UI.
//
// The poller is the single writer; the UI and the engine read copies through
// Snapshot. Update keeps the last good getinfo result when a poll fails and
// counts consecutive failures, so the UI can show stale data alongside the
// error:
//
//	store.Update(info, nil)  // replaces info, clears the error
//	store.Update(nil, err)   // keeps info, records err, counts the failure
//
// After two failures in a row the node is offline. Update reports the poll
// that crosses that threshold (WentOffline) and the first success after it
// (CameBack), which the engine turns into message boxes.
//
// The zero Store is ready to use.
package state
