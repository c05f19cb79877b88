package executor

import (
	"errors"
	"fmt"
	"io"

	"github.com/leengari/pagedb/internal/parser/ast"
	"github.com/leengari/pagedb/internal/storage/codec"
	"github.com/leengari/pagedb/internal/storage/table"
)

// Status is the closed set of outcomes reported back to the shell
type Status int

const (
	StatusSuccess Status = iota
	StatusTableFull
	StatusCodecFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusTableFull:
		return "table full"
	case StatusCodecFailure:
		return "codec failure"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes one executed statement.
// Err is set for StatusTableFull and StatusCodecFailure.
type Result struct {
	Status       Status
	RowsAffected int
	RowsReturned int
	Err          error
}

// Execute runs stmt against tbl, writing selected rows to w.
// The returned error is only set when writing to w fails; statement level
// failures are reported through Result.Status.
func Execute(stmt ast.Statement, tbl *table.Table, w io.Writer) (*Result, error) {
	switch stmt.Type {
	case ast.StatementInsert:
		return executeInsert(stmt, tbl), nil
	case ast.StatementSelect:
		return executeSelect(tbl, w)
	default:
		panic(fmt.Sprintf("executor: unknown statement type %v", stmt.Type))
	}
}

// statusOf classifies an insert failure
func statusOf(err error) Status {
	var fe *codec.FieldError
	switch {
	case errors.Is(err, table.ErrTableFull):
		return StatusTableFull
	case errors.As(err, &fe):
		return StatusCodecFailure
	default:
		panic(fmt.Sprintf("executor: unexpected insert error: %v", err))
	}
}
