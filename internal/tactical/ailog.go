package tactical

import (
	"time"

	"vajra.klederson.com/internal/config"
)

// AddLog appends a line to the AI reasoning log at the current logical time.
// Unknown severities are recorded as info.
func (e *Engine) AddLog(message string, severity Severity) LogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addLog(message, severity, e.sched.Now())
}

func (e *Engine) addLog(message string, severity Severity, now time.Time) LogEntry {
	if severity < SeverityInfo || severity > SeverityCritical {
		severity = SeverityInfo
	}
	entry := LogEntry{
		ID:        e.newID("log"),
		Message:   message,
		Timestamp: now,
		Severity:  severity,
	}
	e.state.AILog = prependBounded(e.state.AILog, entry, config.MaxLogEntries)
	e.touch()

	e.log.WithLevel(severity.logLevel()).
		Str("id", entry.ID).
		Str("severity", severity.String()).
		Time("at", now).
		Msg(message)
	return entry
}
