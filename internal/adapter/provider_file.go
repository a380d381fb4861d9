// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"gopkg.in/yaml.v3"
)

// frontMatterFence delimits the YAML header of a vault file.
const frontMatterFence = "---\n"

// maxSlugRunes bounds the title-derived part of a note's file name.
const maxSlugRunes = 60

// noteFrontMatter is the YAML header written at the top of every vault file.
// LoadNote matches notes on the id field; external tools are free to ignore
// the header entirely.
type noteFrontMatter struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Created  time.Time `yaml:"created"`
	Modified time.Time `yaml:"modified"`
}

// fileProvider persists notes as Markdown files under the vault root.
type fileProvider struct {
	logger *logger.Logger
}

// NewFileProvider constructs the [Provider] implementation for vaults of type
// [models.ProviderFile]. Vault.Location is the filesystem root of the vault;
// one instance serves every file vault.
func NewFileProvider(logger *logger.Logger) Provider {
	return &fileProvider{logger: logger}
}

// IsAvailable implements [Provider]. A file vault is available when its root
// exists and is a directory (an unmounted volume or a deleted folder is a
// transient condition, not an error).
func (f *fileProvider) IsAvailable(ctx context.Context, vault models.Vault) bool {
	info, err := os.Stat(vault.Location)
	if err != nil || !info.IsDir() {
		f.logger.Warn().
			Str("func", "fileProvider.IsAvailable").
			Str("vault_id", vault.VaultID).
			Str("location", vault.Location).
			Msg("vault root missing or not a directory")
		return false
	}

	return true
}

// SaveNote implements [Provider]. The note keeps the path it landed on during
// a previous sync when one is recorded; otherwise it lands at
// notes/<slug>-<id>.md under the vault root, or <YYYY-MM-DD>/<slug>-<id>.md
// when the vault follows the daily-notes convention (dated by note creation).
// The write is atomic: the rendered file is staged next to its destination
// and moved into place with a rename.
//
// A vault copy that disappeared entirely does not fail the precondition: the
// write proceeds and recreates the file.
func (f *fileProvider) SaveNote(ctx context.Context, note models.Note, vault models.Vault, precondition models.SavePrecondition) (models.SaveResult, error) {
	relPath := note.FilePath
	if relPath == "" {
		relPath = noteFilePath(note, vault)
	}
	if !filepath.IsLocal(relPath) {
		return models.SaveResult{}, fmt.Errorf("%w: unsafe note path %q", ErrProviderWrite, relPath)
	}
	absPath := filepath.Join(vault.Location, relPath)

	if !precondition.IsZero() {
		if err := f.checkPrecondition(absPath, precondition); err != nil {
			return models.SaveResult{}, err
		}
	}

	rendered, err := renderNoteFile(note)
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: render note %s: %w", ErrProviderWrite, note.NoteID, err)
	}

	if err = os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrProviderWrite, err)
	}
	if err = atomicWriteFile(absPath, rendered); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrProviderWrite, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: stat written note: %w", ErrProviderWrite, err)
	}

	return models.SaveResult{
		FilePath:   relPath,
		ModifiedAt: info.ModTime(),
		Hash:       utils.ContentHashString(note.Content),
	}, nil
}

// LoadNote implements [Provider]. File vaults are keyed by path, not by note
// ID, so the note is located by scanning the vault for a Markdown file whose
// front matter carries the requested id. Files that cannot be read or parsed
// are skipped: one broken file must not hide the rest of the vault.
func (f *fileProvider) LoadNote(ctx context.Context, noteID string, vault models.Vault) (models.NoteVersion, error) {
	var found models.NoteVersion
	var located bool

	err := filepath.WalkDir(vault.Location, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		version, err := readNoteFile(path)
		if err != nil {
			f.logger.Debug().Err(err).
				Str("func", "fileProvider.LoadNote").
				Str("path", path).
				Msg("skipping unreadable vault file")
			return nil
		}
		if version.NoteID != noteID {
			return nil
		}

		found = version
		located = true
		return fs.SkipAll
	})
	if err != nil {
		return models.NoteVersion{}, fmt.Errorf("%w: scan vault %s: %w", ErrProviderRead, vault.VaultID, err)
	}
	if !located {
		return models.NoteVersion{}, fmt.Errorf("%w: note %s in vault %s", ErrNoteNotFound, noteID, vault.VaultID)
	}

	return found, nil
}

// checkPrecondition compares the current vault copy against the last known
// remote state. The body hash is authoritative; the modification time is only
// consulted when the precondition carries no hash.
func (f *fileProvider) checkPrecondition(absPath string, precondition models.SavePrecondition) error {
	current, err := readNoteFile(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProviderRead, err)
	}

	if precondition.Hash != "" {
		if current.Hash == precondition.Hash {
			return nil
		}
	} else if current.ModifiedAt.Equal(precondition.ModifiedAt) {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrRemoteModified, absPath)
}

// readNoteFile reads one vault file into a [models.NoteVersion]: the body
// with the front matter stripped, the body's content hash and the file
// modification time. NoteID comes from the front matter and is empty for
// files that carry none.
func readNoteFile(absPath string) (models.NoteVersion, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		return models.NoteVersion{}, err
	}
	raw, err := os.ReadFile(absPath)
	if err != nil {
		return models.NoteVersion{}, err
	}

	meta, body, err := splitNoteFile(raw)
	if err != nil {
		return models.NoteVersion{}, err
	}

	return models.NoteVersion{
		NoteID:     meta.ID,
		Content:    body,
		Hash:       utils.ContentHashString(body),
		ModifiedAt: info.ModTime(),
	}, nil
}

// renderNoteFile produces the on-disk form of a note: YAML front matter
// between fences, one blank line, then the content byte for byte. The body
// stays verbatim so its hash is comparable with the local content hash.
func renderNoteFile(note models.Note) ([]byte, error) {
	meta, err := yaml.Marshal(noteFrontMatter{
		ID:       note.NoteID,
		Title:    note.Title,
		Created:  note.CreatedAt.UTC(),
		Modified: note.UpdatedAt.UTC(),
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(2*len(frontMatterFence) + len(meta) + len(note.Content) + 1)
	buf.WriteString(frontMatterFence)
	buf.Write(meta)
	buf.WriteString(frontMatterFence)
	buf.WriteByte('\n')
	buf.WriteString(note.Content)

	return buf.Bytes(), nil
}

// splitNoteFile separates a vault file into its front matter and body. Files
// without a front matter block are returned whole as the body, with zero
// metadata.
func splitNoteFile(raw []byte) (noteFrontMatter, string, error) {
	var meta noteFrontMatter

	s := string(raw)
	if !strings.HasPrefix(s, frontMatterFence) {
		return meta, s, nil
	}

	rest := s[len(frontMatterFence):]
	end := strings.Index(rest, "\n"+frontMatterFence)
	if end < 0 {
		return meta, s, nil
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return noteFrontMatter{}, "", fmt.Errorf("parse front matter: %w", err)
	}

	body := rest[end+1+len(frontMatterFence):]
	body = strings.TrimPrefix(body, "\n")

	return meta, body, nil
}

// atomicWriteFile stages data in a temporary file next to path and renames it
// into place, so readers never observe a half-written note.
func atomicWriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return nil
}

// noteFilePath derives the vault-relative path for a note that has never
// been synced before.
func noteFilePath(note models.Note, vault models.Vault) string {
	if vault.DailyNotes {
		return filepath.Join(note.CreatedAt.Format("2006-01-02"), noteFileName(note))
	}
	return filepath.Join("notes", noteFileName(note))
}

// noteFileName builds <slug>-<short id>.md. Distinct notes with the same
// title must not share a file, so the name always carries a note-ID part.
func noteFileName(note models.Note) string {
	suffix := note.NoteID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}

	slug := slugify(note.Title)
	if slug == "" {
		return suffix + ".md"
	}
	return slug + "-" + suffix + ".md"
}

// slugify lowers a title into a filesystem-safe slug: runs of anything but
// letters and digits collapse into single hyphens.
func slugify(title string) string {
	var b strings.Builder
	runes := 0
	pendingHyphen := false

	for _, r := range strings.ToLower(title) {
		if runes >= maxSlugRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			runes++
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
