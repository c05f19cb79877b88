package executor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/pagedb/internal/domain/data"
	"github.com/leengari/pagedb/internal/parser/ast"
	"github.com/leengari/pagedb/internal/storage/codec"
	"github.com/leengari/pagedb/internal/storage/table"
)

func insert(id uint64, username, email string) ast.Statement {
	return ast.Statement{Type: ast.StatementInsert, RowToInsert: data.NewRow(id, username, email)}
}

var selectAll = ast.Statement{Type: ast.StatementSelect}

func TestInsertThenSelect(t *testing.T) {
	tbl := table.New(table.DefaultMaxPages)
	var out bytes.Buffer

	for _, stmt := range []ast.Statement{
		insert(1, "alice", "alice@example.com"),
		insert(2, "bob", "bob@example.com"),
	} {
		res, err := Execute(stmt, tbl, &out)
		assert.NilError(t, err)
		assert.Equal(t, res.Status, StatusSuccess)
		assert.Equal(t, res.RowsAffected, 1)
	}
	assert.Equal(t, out.Len(), 0)

	res, err := Execute(selectAll, tbl, &out)
	assert.NilError(t, err)
	assert.Equal(t, res.Status, StatusSuccess)
	assert.Equal(t, res.RowsReturned, 2)
	assert.Equal(t, out.String(), "(1, alice, alice@example.com)\n(2, bob, bob@example.com)\n")
}

func TestSelectEmptyTable(t *testing.T) {
	var out bytes.Buffer
	res, err := Execute(selectAll, table.New(1), &out)
	assert.NilError(t, err)
	assert.Equal(t, res.RowsReturned, 0)
	assert.Equal(t, out.String(), "")
}

func TestInsertTableFull(t *testing.T) {
	tbl := table.New(1)
	for i := uint64(0); i < tbl.MaxRows(); i++ {
		res, err := Execute(insert(i, "u", "e"), tbl, nil)
		assert.NilError(t, err)
		assert.Equal(t, res.Status, StatusSuccess)
	}

	res, err := Execute(insert(99, "u", "e"), tbl, nil)
	assert.NilError(t, err)
	assert.Equal(t, res.Status, StatusTableFull)
	assert.Assert(t, is.ErrorIs(res.Err, table.ErrTableFull))
	assert.Equal(t, tbl.NumRows(), tbl.MaxRows())
}

func TestInsertCodecFailure(t *testing.T) {
	tbl := table.New(1)

	res, err := Execute(insert(1, "u", strings.Repeat("e", codec.EmailSize+1)), tbl, nil)
	assert.NilError(t, err)
	assert.Equal(t, res.Status, StatusCodecFailure)
	assert.Assert(t, is.ErrorIs(res.Err, codec.ErrFieldTooLong))
	assert.Equal(t, tbl.NumRows(), uint64(0))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSelectWriteError(t *testing.T) {
	tbl := table.New(1)
	_, err := Execute(insert(1, "u", "e"), tbl, nil)
	assert.NilError(t, err)

	_, err = Execute(selectAll, tbl, failingWriter{})
	assert.ErrorContains(t, err, "closed")
}

func TestUnknownStatementPanics(t *testing.T) {
	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	_, _ = Execute(ast.Statement{Type: ast.StatementType(42)}, table.New(1), nil)
}
