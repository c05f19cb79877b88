package engine

import "log/slog"

// LoggingObserver logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer on top of logger,
// or slog.Default() when logger is nil
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("statement_lifecycle",
		"event", event.Type,
		"statement_id", event.StatementID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
