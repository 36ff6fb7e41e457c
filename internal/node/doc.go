// Package node is a small JSON-RPC 1.0 client for the local eternalcoin
// node.
//
// Only the calls the control plane shows in its status line are wrapped
// (getinfo). Credentials come from -rpcuser and -rpcpassword and are sent as
// HTTP basic auth. Every call carries the caller's context and a per-request
// timeout so a hung node never stalls the poller.
//
// Fetcher is the seam the engine's poller depends on; tests substitute a
// fake.
package node
