// Package codec encodes rows into fixed-size byte blocks.
//
// Layout of one encoded row (RowSize bytes):
//
//	offset  size  field
//	0       8     id, little-endian uint64
//	8       32    username, NUL-padded
//	40      255   email, NUL-padded
//
// Changing UsernameSize or EmailSize changes RowSize and therefore
// RowsPerPage and every slot offset in a page.
package codec

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/leengari/pagedb/internal/domain/data"
)

const (
	IDSize       = 8
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize

	PageSize    = 4096
	RowsPerPage = PageSize / RowSize
)

// Block is one encoded row
type Block [RowSize]byte

// Encode serializes a complete row. Text fields longer than their column
// are rejected, never truncated.
func Encode(row data.Row) (Block, error) {
	var b Block

	if f := row.Missing(); f != 0 {
		return b, newMissingField(f)
	}
	if err := checkText(data.FieldUsername, row.Username, UsernameSize); err != nil {
		return b, err
	}
	if err := checkText(data.FieldEmail, row.Email, EmailSize); err != nil {
		return b, err
	}

	binary.LittleEndian.PutUint64(b[IDOffset:UsernameOffset], row.ID)
	copy(b[UsernameOffset:EmailOffset], row.Username)
	copy(b[EmailOffset:RowSize], row.Email)
	return b, nil
}

// Decode is the inverse of Encode. A zeroed block decodes to (0, "", "").
func Decode(b *Block) data.Row {
	return data.NewRow(
		binary.LittleEndian.Uint64(b[IDOffset:UsernameOffset]),
		cstring(b[UsernameOffset:EmailOffset]),
		cstring(b[EmailOffset:RowSize]),
	)
}

func checkText(f data.Field, value string, max int) error {
	if len(value) > max {
		return newFieldTooLong(f, len(value), max)
	}
	if i := strings.IndexByte(value, 0); i >= 0 {
		return newInvalidByte(f, i)
	}
	return nil
}

func cstring(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
