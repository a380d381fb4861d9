package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify]
// and [SQLiteErrorClassifier.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-specific error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// It inspects the sqlite3 error code returned by the driver and maps it
// to a [ErrorClassification] value.
type SQLiteErrorClassifier struct{}

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, schema errors, and datatype mismatches.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a lock held by a concurrent sweep worker is released).
	Retryable
)

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// sqlite3.Error and delegates to [ClassifySQLiteError]. If err is nil or is
// not a SQLite driver error, [NonRetryable] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	// Attempt to unwrap to a sqlite3.Error.
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	// Default: treat unrecognised errors as non-retryable.
	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification] based
// on the primary SQLite result code.
// See https://www.sqlite.org/rescode.html for the full list of result codes.
//
// Retryable codes:
//   - SQLITE_BUSY (5): another connection holds the write lock
//   - SQLITE_LOCKED (6): a table is locked within the same connection
//   - SQLITE_PROTOCOL (15): file locking protocol contention
//   - SQLITE_IOERR (10): disk I/O hiccup
//
// NonRetryable codes:
//   - SQLITE_ERROR (1): SQL error or missing table
//   - SQLITE_CONSTRAINT (19): constraint violation
//   - SQLITE_MISMATCH (20): datatype mismatch
//   - SQLITE_TOOBIG (18), SQLITE_READONLY (8), SQLITE_CORRUPT (11),
//     SQLITE_NOTADB (26)
//
// Any code not listed above is classified as [NonRetryable].
func ClassifySQLiteError(sqliteErr sqlite3.Error) ErrorClassification {
	switch sqliteErr.Code {
	// lock contention, expected under concurrent sweep workers
	case sqlite3.ErrBusy,
		sqlite3.ErrLocked,
		sqlite3.ErrProtocol:
		return Retryable

	// transient disk trouble
	case sqlite3.ErrIoErr:
		return Retryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrError,
		sqlite3.ErrConstraint,
		sqlite3.ErrMismatch,
		sqlite3.ErrTooBig,
		sqlite3.ErrReadonly,
		sqlite3.ErrCorrupt,
		sqlite3.ErrNotADB:
		return NonRetryable
	}

	// Default: treat unrecognised codes as non-retryable.
	return NonRetryable
}

func sqliteError(err error) sqlite3.ErrNo {
	var sqliteErr sqlite3.Error
	// if sqlite returns error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code
	}

	return 0
}
