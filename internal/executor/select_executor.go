package executor

import (
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"

	"github.com/leengari/pagedb/internal/storage/table"
)

// executeSelect prints every row as (id, username, email), one per line
func executeSelect(tbl *table.Table, w io.Writer) (*Result, error) {
	n := 0
	for row := range tbl.SelectAll() {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return nil, pkgerrors.Wrapf(err, "write row %d", n)
		}
		n++
	}
	return &Result{Status: StatusSuccess, RowsReturned: n}, nil
}
