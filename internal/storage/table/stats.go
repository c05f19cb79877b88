package table

import "github.com/leengari/pagedb/internal/storage/codec"

// Stats is a point-in-time summary of table usage
type Stats struct {
	Rows           uint64
	MaxRows        uint64
	PagesAllocated int
	MaxPages       int
	BytesAllocated uint64
}

// Stats counts allocated pages and rows
func (t *Table) Stats() Stats {
	allocated := 0
	for _, p := range t.pages {
		if p != nil {
			allocated++
		}
	}
	return Stats{
		Rows:           t.numRows,
		MaxRows:        t.MaxRows(),
		PagesAllocated: allocated,
		MaxPages:       len(t.pages),
		BytesAllocated: uint64(allocated) * codec.PageSize,
	}
}
