// Package page provides a fixed-size buffer of row slots.
package page

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/leengari/pagedb/internal/storage/codec"
)

// ErrSlotOutOfRange is returned for slot indexes outside [0, codec.RowsPerPage)
var ErrSlotOutOfRange = errors.New("slot out of range")

// Page is one contiguous codec.PageSize buffer holding codec.RowsPerPage
// slots of codec.RowSize bytes each. The tail past the last slot is unused.
type Page struct {
	buf [codec.PageSize]byte
}

// New allocates a zeroed page
func New() *Page {
	return &Page{}
}

// SlotOffset returns the byte offset of slot index inside the page buffer
func SlotOffset(index int) int {
	return index * codec.RowSize
}

// WriteSlot copies b into slot index
func (p *Page) WriteSlot(index int, b *codec.Block) error {
	if err := checkSlot(index); err != nil {
		return err
	}
	off := SlotOffset(index)
	copy(p.buf[off:off+codec.RowSize], b[:])
	return nil
}

// ReadSlot returns a copy of slot index
func (p *Page) ReadSlot(index int) (codec.Block, error) {
	var b codec.Block
	if err := checkSlot(index); err != nil {
		return b, err
	}
	off := SlotOffset(index)
	copy(b[:], p.buf[off:off+codec.RowSize])
	return b, nil
}

func checkSlot(index int) error {
	if index < 0 || index >= codec.RowsPerPage {
		return pkgerrors.Wrapf(ErrSlotOutOfRange, "slot %d (page holds %d)", index, codec.RowsPerPage)
	}
	return nil
}
