// Package table stores rows in a sparse, fixed-capacity array of pages.
//
// Row n always lives at page n/RowsPerPage, slot n%RowsPerPage. Pages are
// allocated on the first write to any of their slots.
package table

import (
	"errors"
	"fmt"
	"iter"

	pkgerrors "github.com/pkg/errors"

	"github.com/leengari/pagedb/internal/domain/data"
	"github.com/leengari/pagedb/internal/storage/codec"
	"github.com/leengari/pagedb/internal/storage/page"
)

// DefaultMaxPages is the page capacity of a table created with maxPages <= 0
const DefaultMaxPages = 100

// ErrTableFull is returned by Insert once MaxRows rows are stored
var ErrTableFull = errors.New("table full")

// Address locates a logical row inside the page array
type Address struct {
	Page   int
	Slot   int
	Offset int // byte offset of the slot inside the page buffer
}

// Table is an append-only, capacity-bounded row store.
// It is not safe for concurrent use.
type Table struct {
	pages   []*page.Page // nil until first write
	numRows uint64
}

// New creates an empty table able to hold maxPages pages
func New(maxPages int) *Table {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Table{pages: make([]*page.Page, maxPages)}
}

// NumRows returns the number of stored rows
func (t *Table) NumRows() uint64 {
	return t.numRows
}

// MaxPages returns the page capacity
func (t *Table) MaxPages() int {
	return len(t.pages)
}

// MaxRows returns the row capacity, RowsPerPage * MaxPages
func (t *Table) MaxRows() uint64 {
	return uint64(codec.RowsPerPage) * uint64(len(t.pages))
}

// PageAllocated reports whether page i has been written to
func (t *Table) PageAllocated(i int) bool {
	return i >= 0 && i < len(t.pages) && t.pages[i] != nil
}

// Locate maps logical row n to its page, slot and byte offset.
// It panics if n is beyond the table's capacity.
func (t *Table) Locate(n uint64) Address {
	if n >= t.MaxRows() {
		panic(fmt.Sprintf("table: row %d outside capacity %d", n, t.MaxRows()))
	}
	slot := int(n % codec.RowsPerPage)
	return Address{
		Page:   int(n / codec.RowsPerPage),
		Slot:   slot,
		Offset: page.SlotOffset(slot),
	}
}

// Insert appends row. On error the table is unchanged.
func (t *Table) Insert(row data.Row) error {
	if t.numRows >= t.MaxRows() {
		return ErrTableFull
	}

	block, err := codec.Encode(row)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode row %d", row.ID)
	}

	addr := t.Locate(t.numRows)
	p := t.pages[addr.Page]
	if p == nil {
		p = page.New()
		t.pages[addr.Page] = p
	}
	if err := p.WriteSlot(addr.Slot, &block); err != nil {
		panic(fmt.Sprintf("table: write row %d at %+v: %v", t.numRows, addr, err))
	}

	t.numRows++
	return nil
}

// SelectAll returns the stored rows in insertion order.
// Each range over the sequence reads NumRows at its start, so rows inserted
// while iterating are not visited.
func (t *Table) SelectAll() iter.Seq[data.Row] {
	return func(yield func(data.Row) bool) {
		n := t.numRows
		for i := uint64(0); i < n; i++ {
			if !yield(t.row(i)) {
				return
			}
		}
	}
}

func (t *Table) row(n uint64) data.Row {
	addr := t.Locate(n)
	p := t.pages[addr.Page]
	if p == nil {
		panic(fmt.Sprintf("table: row %d on unallocated page %d", n, addr.Page))
	}
	block, err := p.ReadSlot(addr.Slot)
	if err != nil {
		panic(fmt.Sprintf("table: read row %d at %+v: %v", n, addr, err))
	}
	return codec.Decode(&block)
}
