package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID  = errors.New("invalid note ID")
	ErrInvalidVaultID = errors.New("invalid vault ID")
	ErrTitleTooLong   = errors.New("note title is too long")
	ErrUnsafeFilePath = errors.New("note file path escapes the vault")
)
