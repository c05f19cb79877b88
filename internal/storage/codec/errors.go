package codec

import (
	"errors"
	"fmt"

	"github.com/leengari/pagedb/internal/domain/data"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrFieldTooLong = errors.New("field too long")
	ErrInvalidByte  = errors.New("invalid byte in field")
)

// FieldError describes why a row could not be encoded.
// Err is one of ErrMissingField, ErrFieldTooLong or ErrInvalidByte.
type FieldError struct {
	Field  data.Field
	Err    error
	Length int // byte length of the rejected value (too long only)
	Max    int // column width (too long only)
	Offset int // position of the NUL byte (invalid byte only)
}

func (e *FieldError) Error() string {
	switch e.Err {
	case ErrFieldTooLong:
		return fmt.Sprintf("%s is too long (%d bytes, max %d)", e.Field, e.Length, e.Max)
	case ErrInvalidByte:
		return fmt.Sprintf("%s contains a NUL byte at offset %d", e.Field, e.Offset)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func newMissingField(f data.Field) *FieldError {
	return &FieldError{Field: f, Err: ErrMissingField}
}

func newFieldTooLong(f data.Field, length, max int) *FieldError {
	return &FieldError{Field: f, Err: ErrFieldTooLong, Length: length, Max: max}
}

func newInvalidByte(f data.Field, offset int) *FieldError {
	return &FieldError{Field: f, Err: ErrInvalidByte, Offset: offset}
}
