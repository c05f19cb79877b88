package engine

import "time"

// EventType represents different lifecycle phases in statement execution
type EventType string

const (
	EventPrepareStart EventType = "prepare_start"
	EventPrepareEnd   EventType = "prepare_end"
	EventExecStart    EventType = "exec_start"
	EventExecEnd      EventType = "exec_end"
)

// Event represents a lifecycle event in statement execution
type Event struct {
	Type        EventType   // Type of event
	StatementID string      // Correlates the events of one statement
	Timestamp   time.Time   // When the event occurred
	Data        interface{} // Phase-specific data (line, prepare result, exec summary)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
