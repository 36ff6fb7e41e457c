package ui

import "time"

// LayoutCompactWidth is the width below which the compact layout is used
// even without -min.
const LayoutCompactWidth = 80

// Log display limits.
const (
	// LogBufferLimit is the maximum number of debug.log lines kept in memory.
	LogBufferLimit = 2000

	// URIHistoryLimit caps the received payment requests shown.
	URIHistoryLimit = 50
)

// Timing constants.
const (
	// LogRefreshInterval is the minimum time between debug.log reads.
	LogRefreshInterval = 2 * time.Second

	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
