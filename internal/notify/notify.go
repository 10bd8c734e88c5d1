// Package notify is the side channel through which the synchronization
// engines surface user-visible notices. The presentation layer decides
// how a notice is shown; the engines only decide when one is warranted.
package notify

import "go.uber.org/zap"

// Notifier receives user-visible notices.
type Notifier interface {
	// Warn surfaces a recoverable condition, such as a degraded offline
	// load or a failed remote write that was rolled back.
	Warn(message string)

	// Fatal surfaces a condition the user must act on, such as total
	// data unavailability. It does not terminate anything; the name
	// reflects severity for the operation, not the process.
	Fatal(message string)
}

// LogNotifier routes notices to the structured log.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier creates a Notifier backed by the given logger.
func NewLogNotifier(log *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Warn logs the notice at warn level.
func (n *LogNotifier) Warn(message string) {
	n.log.Warnw("user notice", "message", message)
}

// Fatal logs the notice at error level.
func (n *LogNotifier) Fatal(message string) {
	n.log.Errorw("user notice", "message", message, "severity", "fatal")
}
