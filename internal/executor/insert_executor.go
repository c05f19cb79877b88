package executor

import (
	"github.com/leengari/pagedb/internal/parser/ast"
	"github.com/leengari/pagedb/internal/storage/table"
)

// executeInsert appends the statement's row
func executeInsert(stmt ast.Statement, tbl *table.Table) *Result {
	if err := tbl.Insert(stmt.RowToInsert); err != nil {
		return &Result{Status: statusOf(err), Err: err}
	}
	return &Result{Status: StatusSuccess, RowsAffected: 1}
}
