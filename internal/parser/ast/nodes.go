package ast

import (
	"fmt"

	"github.com/leengari/pagedb/internal/domain/data"
)

// StatementType is the closed set of statements the shell understands
type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

func (t StatementType) String() string {
	switch t {
	case StatementInsert:
		return "insert"
	case StatementSelect:
		return "select"
	default:
		return fmt.Sprintf("StatementType(%d)", int(t))
	}
}

// Statement is a parsed command.
// RowToInsert is only meaningful for StatementInsert.
type Statement struct {
	Type        StatementType
	RowToInsert data.Row
}

func (s Statement) String() string {
	if s.Type == StatementInsert {
		return fmt.Sprintf("insert %d %s %s", s.RowToInsert.ID, s.RowToInsert.Username, s.RowToInsert.Email)
	}
	return s.Type.String()
}
