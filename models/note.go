package models

import "time"

// NoteKind distinguishes how a note was captured.
type NoteKind string

const (
	NoteKindText  NoteKind = "text"
	NoteKindVoice NoteKind = "voice"
)

// Note is a locally captured note as stored by the capture app. The sync
// daemon reads notes and writes back only FilePath, IsSynced and, when a
// remote version wins a conflict, Content and UpdatedAt.
type Note struct {
	NoteID    string
	VaultID   string
	Title     string
	Content   string
	Kind      NoteKind
	FilePath  string
	IsSynced  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
