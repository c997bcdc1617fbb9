package sqlerr

import (
	"github.com/mattn/go-sqlite3"
)

// Code is the category a storage error falls into.
type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	PrimaryKeyViolation Code = "primary_key_violation"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	CheckViolation      Code = "check_violation"

	// Unavailable covers failures of the store itself rather than of the
	// statement: busy/locked database, unopenable or read-only file, I/O
	// errors, a full disk or a corrupt image.
	Unavailable Code = "unavailable"
)

// Error is a classified SQLite error.
type Error struct {
	Code Code

	// DatabaseCode and ExtendedCode are the raw sqlite3 result codes.
	DatabaseCode int
	ExtendedCode int

	// Message is the driver message, for logs only.
	Message string

	// TableName and ColumnName are parsed from constraint messages such as
	// "UNIQUE constraint failed: users.email". Either may be empty.
	TableName  string
	ColumnName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps primary and extended sqlite3 result codes onto a Code.
func MapCode(code sqlite3.ErrNo, extended sqlite3.ErrNoExtended) Code {
	switch code {
	case sqlite3.ErrConstraint:
		switch extended {
		case sqlite3.ErrConstraintUnique:
			return UniqueViolation
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintRowID:
			return PrimaryKeyViolation
		case sqlite3.ErrConstraintNotNull:
			return NotNullViolation
		case sqlite3.ErrConstraintForeignKey:
			return ForeignKeyViolation
		case sqlite3.ErrConstraintCheck:
			return CheckViolation
		}
		return Other
	case sqlite3.ErrBusy,
		sqlite3.ErrLocked,
		sqlite3.ErrCantOpen,
		sqlite3.ErrIoErr,
		sqlite3.ErrReadonly,
		sqlite3.ErrFull,
		sqlite3.ErrCorrupt,
		sqlite3.ErrNotADB:
		return Unavailable
	default:
		return Other
	}
}
