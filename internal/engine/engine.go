package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/leengari/pagedb/internal/executor"
	"github.com/leengari/pagedb/internal/parser"
	"github.com/leengari/pagedb/internal/storage/table"
)

// Engine runs shell statements against a single table
type Engine struct {
	table     *table.Table
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine that owns tbl
func New(tbl *table.Table) *Engine {
	return &Engine{
		table:     tbl,
		observers: make([]Observer, 0),
	}
}

// Table returns the table the engine executes against
func (e *Engine) Table() *table.Table {
	return e.table
}

// Execute prepares and runs one statement line, writing any selected rows to w.
// A line that does not parse is returned as a *PrepareError.
func (e *Engine) Execute(line string, w io.Writer) (*executor.Result, error) {
	id := uuid.New().String()

	// 1. Prepare
	e.notify(Event{Type: EventPrepareStart, StatementID: id, Data: line})
	stmt, res := parser.Prepare(line)
	e.notify(Event{Type: EventPrepareEnd, StatementID: id, Data: res.String()})
	switch res {
	case parser.PrepareSuccess:
	case parser.PrepareSyntaxError, parser.PrepareUnrecognizedStatement:
		return nil, &PrepareError{Result: res, Input: line}
	default:
		panic(fmt.Sprintf("engine: unknown prepare result %v", res))
	}

	// 2. Execute
	e.notify(Event{Type: EventExecStart, StatementID: id, Data: stmt.String()})
	result, err := executor.Execute(stmt, e.table, w)
	if err != nil {
		e.notify(Event{Type: EventExecEnd, StatementID: id, Data: map[string]interface{}{
			"error":    err.Error(),
			"num_rows": e.table.NumRows(),
		}})
		return nil, errors.Wrap(err, "execution error")
	}
	e.notify(Event{Type: EventExecEnd, StatementID: id, Data: map[string]interface{}{
		"status":        result.Status.String(),
		"rows_affected": result.RowsAffected,
		"rows_returned": result.RowsReturned,
		"num_rows":      e.table.NumRows(),
	}})

	return result, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
