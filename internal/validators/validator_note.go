package validators

import (
	"context"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	FieldNoteID   = "note_id"
	FieldVaultID  = "vault_id"
	FieldTitle    = "title"
	FieldFilePath = "file_path"
)

// maxTitleLength bounds a note title in runes. Long titles become file names
// in the vault; filesystems cap name length well below this.
const maxTitleLength = 200

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldVaultID, FieldTitle, FieldFilePath}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if note.NoteID == "" {
				return ErrInvalidNoteID
			}
		case FieldVaultID:
			if note.VaultID == "" {
				return ErrInvalidVaultID
			}
		case FieldTitle:
			if utf8.RuneCountInString(note.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldFilePath:
			if !isVaultRelative(note.FilePath) {
				return ErrUnsafeFilePath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isVaultRelative reports whether p stays inside the vault root. An empty
// path is fine: the provider derives one on first save.
func isVaultRelative(p string) bool {
	if p == "" {
		return true
	}
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") {
		return false
	}

	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	return cleaned != ".." && !strings.HasPrefix(cleaned, "../")
}
