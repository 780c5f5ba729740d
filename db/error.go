package db

import "github.com/coderi421/routemgr/db/internal/errs"

// 将内部的 sentinel error 暴露出去
var (
	// ErrNoRows 代表没有找到数据
	ErrNoRows             = errs.ErrNoRows
	ErrEmptyTable         = errs.ErrEmptyTable
	ErrNoColumns          = errs.ErrNoColumns
	ErrNoUpdatedColumns   = errs.ErrNoUpdatedColumns
	ErrFieldValueMismatch = errs.ErrFieldValueMismatch
	ErrDuplicateKey       = errs.ErrDuplicateKey
	ErrNotConnected       = errs.ErrNotConnected
	ErrEmptyPredicate     = errs.ErrEmptyPredicate
)

// DuplicateKeyError wraps a unique-constraint violation reported by a driver.
type DuplicateKeyError = errs.DuplicateKeyError
