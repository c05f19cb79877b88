package integration

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/leengari/pagedb/internal/config"
	"github.com/leengari/pagedb/internal/engine"
	"github.com/leengari/pagedb/internal/repl"
	"github.com/leengari/pagedb/internal/storage/table"
)

// MockObserver records lifecycle events
type MockObserver struct {
	Events []engine.Event
}

func (m *MockObserver) OnEvent(event engine.Event) {
	m.Events = append(m.Events, event)
}

// runShell wires a shell the way cmd/pagedb does and runs script through it
func runShell(t *testing.T, cfg *config.Config, script []string) (string, *engine.Engine, *MockObserver) {
	t.Helper()
	eng := engine.New(table.New(cfg.Table.MaxPages))
	observer := &MockObserver{}
	eng.AddObserver(observer)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	if err := repl.New(eng, in, &out, cfg.Shell.Prompt).Run(); err != nil {
		t.Fatalf("shell run failed: %v", err)
	}
	return out.String(), eng, observer
}

// selectedRows pulls the printed rows out of shell output
func selectedRows(out, prompt string) []string {
	var rows []string
	for _, l := range strings.Split(out, "\n") {
		l = strings.TrimPrefix(l, prompt)
		if strings.HasPrefix(l, "(") {
			rows = append(rows, l)
		}
	}
	return rows
}

// TestStatementLifecycleEvents verifies that all expected events are emitted during execution
func TestStatementLifecycleEvents(t *testing.T) {
	_, _, observer := runShell(t, config.Default(), []string{"select", ".exit"})

	expectedEventTypes := []engine.EventType{
		engine.EventPrepareStart,
		engine.EventPrepareEnd,
		engine.EventExecStart,
		engine.EventExecEnd,
	}

	if len(observer.Events) != len(expectedEventTypes) {
		t.Fatalf("Expected %d events, got %d", len(expectedEventTypes), len(observer.Events))
	}

	for i, expectedType := range expectedEventTypes {
		if observer.Events[i].Type != expectedType {
			t.Errorf("Event %d: Expected %s, got %s", i, expectedType, observer.Events[i].Type)
		}
	}

	// Verify all events have the same StatementID
	id := observer.Events[0].StatementID
	for i, event := range observer.Events {
		if event.StatementID != id {
			t.Errorf("Event %d: StatementID mismatch. Expected %s, got %s", i, id, event.StatementID)
		}
	}
}

// TestMetaCommandsSkipEngine verifies dot commands never reach the engine
func TestMetaCommandsSkipEngine(t *testing.T) {
	out, _, observer := runShell(t, config.Default(), []string{".foo", ".exit"})

	if len(observer.Events) != 0 {
		t.Errorf("Expected no events, got %d", len(observer.Events))
	}
	if !strings.Contains(out, "Unrecognized Command .foo") {
		t.Errorf("Expected unrecognized command message, got %q", out)
	}
}

// TestFourteenthInsertAllocatesSecondPage fills page 0 and spills one row onto page 1
func TestFourteenthInsertAllocatesSecondPage(t *testing.T) {
	var script []string
	for i := 1; i <= 13; i++ {
		script = append(script, fmt.Sprintf("insert %d user%d person%d@example.com", i, i, i))
	}

	_, eng, _ := runShell(t, config.Default(), append(script, ".exit"))
	tbl := eng.Table()
	if tbl.NumRows() != 13 || !tbl.PageAllocated(0) || tbl.PageAllocated(1) {
		t.Fatalf("after 13 inserts: rows=%d page0=%v page1=%v", tbl.NumRows(), tbl.PageAllocated(0), tbl.PageAllocated(1))
	}

	script = append(script, "insert 14 user14 person14@example.com", "select", ".exit")
	out, eng, _ := runShell(t, config.Default(), script)
	tbl = eng.Table()
	if !tbl.PageAllocated(1) {
		t.Fatal("Expected page 1 to be allocated")
	}
	if addr := tbl.Locate(13); addr.Page != 1 || addr.Slot != 0 {
		t.Errorf("Expected row 13 at page 1 slot 0, got %+v", addr)
	}

	rows := selectedRows(out, config.DefaultPrompt)
	if len(rows) != 14 {
		t.Fatalf("Expected 14 rows, got %d", len(rows))
	}
	if rows[13] != "(14, user14, person14@example.com)" {
		t.Errorf("unexpected last row %q", rows[13])
	}
}

// TestCustomCapacity runs the table-full path with a small configured table
func TestCustomCapacity(t *testing.T) {
	cfg := config.Default()
	cfg.Table.MaxPages = 2
	cfg.Shell.Prompt = "sqlite> "

	var script []string
	for i := 0; i < 27; i++ {
		script = append(script, fmt.Sprintf("insert %d u e", i))
	}
	out, eng, _ := runShell(t, cfg, append(script, "select", ".exit"))

	if eng.Table().NumRows() != 26 {
		t.Errorf("Expected 26 rows, got %d", eng.Table().NumRows())
	}
	if strings.Count(out, "Error: Table full.") != 1 {
		t.Errorf("Expected one table full error in %q", out)
	}
	if !strings.HasPrefix(out, "sqlite> ") {
		t.Errorf("Expected custom prompt, got %q", out)
	}
	if rows := selectedRows(out, cfg.Shell.Prompt); len(rows) != 26 {
		t.Errorf("Expected 26 selected rows, got %d", len(rows))
	}
}
