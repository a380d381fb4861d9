package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func version(content, hash string, modifiedAt time.Time) models.NoteVersion {
	return models.NoteVersion{
		NoteID:     "note-1",
		Content:    content,
		Hash:       hash,
		ModifiedAt: modifiedAt,
	}
}

func TestNewConflictResolver_UnknownStrategy(t *testing.T) {
	_, err := NewConflictResolver("coin_flip")
	assert.ErrorIs(t, err, ErrUnknownConflictStrategy)
}

func TestConflictResolver_Resolve_LastWriteWins(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	tests := []struct {
		name        string
		local       models.NoteVersion
		remote      models.NoteVersion
		ancestor    string
		wantOutcome models.ConflictOutcome
		wantContent string
	}{
		{
			name:        "identical content is trivially local",
			local:       version("same", "h1", t1),
			remote:      version("same", "h1", t2),
			ancestor:    "h0",
			wantOutcome: models.LocalWins,
			wantContent: "same",
		},
		{
			name:        "only local changed since ancestor",
			local:       version("local edit", "h1", t2),
			remote:      version("old", "h0", t1),
			ancestor:    "h0",
			wantOutcome: models.LocalWins,
			wantContent: "local edit",
		},
		{
			name:        "only remote changed since ancestor",
			local:       version("old", "h0", t1),
			remote:      version("remote edit", "h2", t2),
			ancestor:    "h0",
			wantOutcome: models.RemoteWins,
			wantContent: "remote edit",
		},
		{
			name:        "only remote changed wins even with older timestamp",
			local:       version("old", "h0", t2),
			remote:      version("remote edit", "h2", t1),
			ancestor:    "h0",
			wantOutcome: models.RemoteWins,
			wantContent: "remote edit",
		},
		{
			name:        "both changed, local later",
			local:       version("local edit", "h1", t2),
			remote:      version("remote edit", "h2", t1),
			ancestor:    "h0",
			wantOutcome: models.LocalWins,
			wantContent: "local edit",
		},
		{
			name:        "both changed, remote later",
			local:       version("local edit", "h1", t1),
			remote:      version("remote edit", "h2", t2),
			ancestor:    "h0",
			wantOutcome: models.RemoteWins,
			wantContent: "remote edit",
		},
		{
			name:        "both changed, equal timestamps, divergent content",
			local:       version("local edit", "h1", t1),
			remote:      version("remote edit", "h2", t1),
			ancestor:    "h0",
			wantOutcome: models.Unresolvable,
		},
		{
			name:        "no ancestor, local later",
			local:       version("local edit", "h1", t2),
			remote:      version("remote edit", "h2", t1),
			ancestor:    "",
			wantOutcome: models.LocalWins,
			wantContent: "local edit",
		},
		{
			name:        "no ancestor, remote later",
			local:       version("local edit", "h1", t1),
			remote:      version("remote edit", "h2", t2),
			ancestor:    "",
			wantOutcome: models.RemoteWins,
			wantContent: "remote edit",
		},
		{
			name:        "no ancestor, equal timestamps break toward local",
			local:       version("local edit", "h1", t1),
			remote:      version("remote edit", "h2", t1),
			ancestor:    "",
			wantOutcome: models.LocalWins,
			wantContent: "local edit",
		},
	}

	resolver, err := NewConflictResolver(models.LastWriteWins)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(context.Background(), tt.local, tt.remote, tt.ancestor)

			assert.Equal(t, tt.wantOutcome, got.Outcome)
			if tt.wantOutcome != models.Unresolvable {
				assert.Equal(t, tt.wantContent, got.WinningContent)
			}
		})
	}
}

func TestConflictResolver_Resolve_Deterministic(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	local := version("local edit", "h1", t1)
	remote := version("remote edit", "h2", t1)

	resolver, err := NewConflictResolver(models.LastWriteWins)
	require.NoError(t, err)

	first := resolver.Resolve(context.Background(), local, remote, "h0")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, resolver.Resolve(context.Background(), local, remote, "h0"))
	}
}

func TestConflictResolver_Resolve_PreferLocal(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	resolver, err := NewConflictResolver(models.PreferLocal)
	require.NoError(t, err)

	// Remote is strictly later, but the strategy keeps local anyway.
	got := resolver.Resolve(context.Background(),
		version("local edit", "h1", t1),
		version("remote edit", "h2", t1.Add(time.Hour)),
		"h0",
	)
	assert.Equal(t, models.LocalWins, got.Outcome)
	assert.Equal(t, "local edit", got.WinningContent)
}

func TestConflictResolver_Resolve_PreferRemote(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	resolver, err := NewConflictResolver(models.PreferRemote)
	require.NoError(t, err)

	got := resolver.Resolve(context.Background(),
		version("local edit", "h1", t1.Add(time.Hour)),
		version("remote edit", "h2", t1),
		"h0",
	)
	assert.Equal(t, models.RemoteWins, got.Outcome)
	assert.Equal(t, "remote edit", got.WinningContent)
}

func TestConflictResolver_Resolve_AncestorBeatsStrategy(t *testing.T) {
	// Even under PreferRemote, a remote side that did not change since the
	// ancestor never overwrites a local edit: not a true conflict.
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	resolver, err := NewConflictResolver(models.PreferRemote)
	require.NoError(t, err)

	got := resolver.Resolve(context.Background(),
		version("local edit", "h1", t1),
		version("old", "h0", t1.Add(time.Hour)),
		"h0",
	)
	assert.Equal(t, models.LocalWins, got.Outcome)
	assert.Equal(t, "local edit", got.WinningContent)
}
