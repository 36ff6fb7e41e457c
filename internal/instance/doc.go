// Package instance keeps a single running window per user and hands payment
// URIs from later launches to it.
//
// The channel is a unix datagram socket named after ChannelName in the
// user's runtime directory. The receiver owns it, guarded by an advisory
// lock beside the socket, and removes it on Close. A sender that finds no
// socket learns that no instance is running (ErrChannelAbsent) and starts
// normally.
//
// Dispatcher wraps the channel in the launch state machine:
//
//	Probing -> Delegated             a running instance took the URI
//	Probing -> Starting -> Listening this process becomes the receiver
//	Listening -> Closed              receiver released at shutdown
package instance
