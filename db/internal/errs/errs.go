package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRows 代表没有找到数据
	ErrNoRows             = errors.New("db: no rows in result set")
	ErrEmptyTable         = errors.New("db: table name is required")
	ErrNoColumns          = errors.New("db: at least one column is required")
	ErrNoUpdatedColumns   = errors.New("db: no columns to update")
	ErrFieldValueMismatch = errors.New("db: fields and values must have the same amount of items")
	ErrDuplicateKey       = errors.New("db: duplicate key")
	ErrNotConnected       = errors.New("db: connection is not open")
	ErrEmptyPredicate     = errors.New("db: empty predicate")
)

func NewErrFieldValueMismatch(fields, values int) error {
	return fmt.Errorf("%w: fields(%d) values(%d)", ErrFieldValueMismatch, fields, values)
}

func NewErrUnsupportedExpressionType(expr any) error {
	return fmt.Errorf("db: unsupported expression %v", expr)
}

func NewErrInvalidIdentifier(name string) error {
	return fmt.Errorf("db: invalid identifier %q", name)
}

func NewErrUnsupportedDriver(driver string) error {
	return fmt.Errorf("db: unsupported driver %q", driver)
}

// NewErrDuplicateKey keeps the driver error reachable through errors.As
// while matching ErrDuplicateKey through errors.Is.
func NewErrDuplicateKey(table string, cause error) error {
	return &DuplicateKeyError{Table: table, Cause: cause}
}

type DuplicateKeyError struct {
	Table string
	Cause error
}

func (e *DuplicateKeyError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %v", ErrDuplicateKey, e.Cause)
	}
	return fmt.Sprintf("%s on %s: %v", ErrDuplicateKey, e.Table, e.Cause)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Cause
}
