package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies store failures
type Kind int

const (
	KindUnknown Kind = iota
	KindStorage      // medium unreachable or unwritable
	KindConstraint   // required field missing or foreign key unresolved
	KindQuery        // read failed
)

func (k Kind) String() string {
	switch k {
	case KindStorage:
		return "storage error"
	case KindConstraint:
		return "constraint violation"
	case KindQuery:
		return "query error"
	default:
		return "unknown error"
	}
}

// Error is returned by every Store operation that fails
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "insert games"
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same kind, so callers can write
// errors.Is(err, db.ErrConstraint).
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrStorage    = &Error{Kind: KindStorage}
	ErrConstraint = &Error{Kind: KindConstraint}
	ErrQuery      = &Error{Kind: KindQuery}

	// ErrStoreMissing is returned by OpenExisting when there is no database file yet
	ErrStoreMissing = errors.New("database not found, run 'tabletop init' first")
)

func storageError(op string, err error) error {
	return &Error{Kind: KindStorage, Op: op, Err: err}
}

func constraintError(op string, err error) error {
	return &Error{Kind: KindConstraint, Op: op, Err: err}
}

func queryError(op string, err error) error {
	return &Error{Kind: KindQuery, Op: op, Err: err}
}

// writeError classifies a failed write: constraint failures reported by
// SQLite become constraint violations, anything else is a storage error.
func writeError(op string, err error) error {
	if isConstraintFailure(err) {
		return constraintError(op, err)
	}
	return storageError(op, err)
}

func isConstraintFailure(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "constraint failed")
}
