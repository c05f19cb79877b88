package data

import "fmt"

// Field identifies one column of a Row
type Field uint8

const (
	FieldID Field = 1 << iota
	FieldUsername
	FieldEmail

	allFields = FieldID | FieldUsername | FieldEmail
)

func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldUsername:
		return "username"
	case FieldEmail:
		return "email"
	default:
		return fmt.Sprintf("field(%d)", uint8(f))
	}
}

// Row represents a single table row.
// A Row is complete only when all three fields have been set; rows built
// with NewRow are always complete.
type Row struct {
	ID       uint64
	Username string
	Email    string
	set      Field
}

// NewRow creates a complete Row
func NewRow(id uint64, username, email string) Row {
	return Row{ID: id, Username: username, Email: email, set: allFields}
}

// WithID returns a copy of the row with id set
func (r Row) WithID(id uint64) Row {
	r.ID = id
	r.set |= FieldID
	return r
}

// WithUsername returns a copy of the row with username set
func (r Row) WithUsername(username string) Row {
	r.Username = username
	r.set |= FieldUsername
	return r
}

// WithEmail returns a copy of the row with email set
func (r Row) WithEmail(email string) Row {
	r.Email = email
	r.set |= FieldEmail
	return r
}

// Has reports whether field f was set
func (r Row) Has(f Field) bool {
	return r.set&f == f
}

// Complete reports whether all fields are present
func (r Row) Complete() bool {
	return r.set == allFields
}

// Missing returns the first absent field, or 0 when the row is complete
func (r Row) Missing() Field {
	for _, f := range []Field{FieldID, FieldUsername, FieldEmail} {
		if !r.Has(f) {
			return f
		}
	}
	return 0
}

// String renders the row the way the shell prints it: (id, username, email)
func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}
