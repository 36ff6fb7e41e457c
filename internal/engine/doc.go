// Package engine runs the background work underneath the window: it owns
// the data directory lock, keeps the node status store fresh and checks for
// client updates. Everything it has to tell the user goes through a
// Notifier, normally the bridge.
package engine
