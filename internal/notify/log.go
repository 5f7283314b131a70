package notify

import (
	"context"
	"log/slog"

	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

// LogNotifier implements Notifier by logging each message. The CLI uses it so
// outcomes are visible when there is no page to render toasts into.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier that writes messages to log.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.Component(log, "toast")}
}

// Notify logs the message. Danger toasts are logged at warn level.
func (n *LogNotifier) Notify(text string, sev Severity) {
	level := slog.LevelInfo
	if sev == SeverityDanger {
		level = slog.LevelWarn
	}
	n.log.Log(context.Background(), level, text, "severity", string(sev))
}
