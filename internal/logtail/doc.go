// Package logtail reads the end of debug.log for the UI's log view.
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays bounded no matter how large the log grows. A missing file
// is not an error: the view is simply empty until the first record lands.
//
// Parse splits a console-format record into time, level, component and
// message so the view can color it:
//
//	2026-01-02T15:04:05Z WARN engine: node offline error=...
package logtail
