// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPProvider(t *testing.T) Provider {
	t.Helper()
	cfg := config.Provider{
		RequestTimeout: 5 * time.Second,
		Login:          "syncd",
		Password:       "secret",
	}
	return NewHTTPProvider(cfg, logger.Nop())
}

func httpVault(serverURL string) models.Vault {
	return models.Vault{
		VaultID:  "vault-1",
		Name:     "remote",
		Provider: models.ProviderHTTP,
		Location: serverURL,
	}
}

// loginAware wraps a note handler with a login endpoint issuing bearer
// tokens, counting how many times the daemon authenticated.
func loginAware(t *testing.T, loginCalls *int, notes http.HandlerFunc) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			*loginCalls++
			assert.Equal(t, http.MethodPost, r.Method)

			var creds loginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "syncd", creds.Login)
			assert.Equal(t, "secret", creds.Password)

			w.Header().Set("Authorization", "Bearer test-token-1")
			w.WriteHeader(http.StatusOK)
			return
		}
		notes(w, r)
	}
}

// ── IsAvailable ──────────────────────────────────────────────────────────────

func TestHTTPProvider_IsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)

	assert.True(t, p.IsAvailable(context.Background(), httpVault(srv.URL)))
}

func TestHTTPProvider_IsAvailable_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)

	assert.False(t, p.IsAvailable(context.Background(), httpVault(srv.URL)))
}

func TestHTTPProvider_IsAvailable_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := newTestHTTPProvider(t)

	assert.False(t, p.IsAvailable(context.Background(), httpVault(url)))
}

func TestHTTPProvider_IsAvailable_BadLocation(t *testing.T) {
	p := newTestHTTPProvider(t)

	assert.False(t, p.IsAvailable(context.Background(), httpVault("")))
}

// ── SaveNote ─────────────────────────────────────────────────────────────────

func TestHTTPProvider_SaveNote_Success(t *testing.T) {
	note := testNote()
	wantModified := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/vaults/vault-1/notes/"+note.NoteID, r.URL.Path)
		assert.Equal(t, "Bearer test-token-1", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("If-Match"))

		var payload notePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, note.NoteID, payload.NoteID)
		assert.Equal(t, note.Content, payload.Content)
		assert.Equal(t, utils.ContentHashString(note.Content), payload.Hash)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(noteResource{
			NoteID:     note.NoteID,
			FilePath:   "notes/groceries.md",
			Hash:       payload.Hash,
			ModifiedAt: wantModified,
		})
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	result, err := p.SaveNote(context.Background(), note, httpVault(srv.URL), models.SavePrecondition{})

	require.NoError(t, err)
	assert.Equal(t, "notes/groceries.md", result.FilePath)
	assert.Equal(t, utils.ContentHashString(note.Content), result.Hash)
	assert.True(t, result.ModifiedAt.Equal(wantModified))
	assert.Equal(t, 1, loginCalls)
}

func TestHTTPProvider_SaveNote_SendsPrecondition(t *testing.T) {
	note := testNote()
	ancestor := utils.ContentHashString("older content")

	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ancestor, r.Header.Get("If-Match"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(noteResource{NoteID: note.NoteID})
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.SaveNote(context.Background(), note, httpVault(srv.URL), models.SavePrecondition{Hash: ancestor})

	require.NoError(t, err)
}

func TestHTTPProvider_SaveNote_RemoteModified(t *testing.T) {
	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		_, _ = w.Write([]byte("note changed on the server"))
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.SaveNote(context.Background(), testNote(), httpVault(srv.URL), models.SavePrecondition{Hash: "stale"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteModified)
}

func TestHTTPProvider_SaveNote_ServerUnavailable(t *testing.T) {
	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.SaveNote(context.Background(), testNote(), httpVault(srv.URL), models.SavePrecondition{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestHTTPProvider_SaveNote_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.SaveNote(context.Background(), testNote(), httpVault(url), models.SavePrecondition{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestHTTPProvider_SaveNote_RelogsInOnce(t *testing.T) {
	note := testNote()

	var loginCalls, putCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		putCalls++
		if putCalls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("token is expired"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(noteResource{NoteID: note.NoteID})
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.SaveNote(context.Background(), note, httpVault(srv.URL), models.SavePrecondition{})

	require.NoError(t, err)
	assert.Equal(t, 2, loginCalls)
	assert.Equal(t, 2, putCalls)
}

func TestHTTPProvider_SaveNote_UnauthorizedAfterRelogin(t *testing.T) {
	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("access revoked"))
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.SaveNote(context.Background(), testNote(), httpVault(srv.URL), models.SavePrecondition{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 2, loginCalls)
}

// ── LoadNote ─────────────────────────────────────────────────────────────────

func TestHTTPProvider_LoadNote_Success(t *testing.T) {
	note := testNote()
	wantModified := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)

	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vaults/vault-1/notes/"+note.NoteID, r.URL.Path)
		assert.Equal(t, "Bearer test-token-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(noteResource{
			NoteID:     note.NoteID,
			Content:    "- milk\n- eggs\n- cheese",
			Hash:       utils.ContentHashString("- milk\n- eggs\n- cheese"),
			ModifiedAt: wantModified,
		})
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	version, err := p.LoadNote(context.Background(), note.NoteID, httpVault(srv.URL))

	require.NoError(t, err)
	assert.Equal(t, note.NoteID, version.NoteID)
	assert.Equal(t, "- milk\n- eggs\n- cheese", version.Content)
	assert.True(t, version.ModifiedAt.Equal(wantModified))
}

func TestHTTPProvider_LoadNote_FillsMissingHash(t *testing.T) {
	note := testNote()

	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(noteResource{Content: "remote body"}) // no hash, no id
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	version, err := p.LoadNote(context.Background(), note.NoteID, httpVault(srv.URL))

	require.NoError(t, err)
	assert.Equal(t, note.NoteID, version.NoteID)
	assert.Equal(t, utils.ContentHashString("remote body"), version.Hash)
}

func TestHTTPProvider_LoadNote_NotFound(t *testing.T) {
	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("note not found"))
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.LoadNote(context.Background(), "missing-note", httpVault(srv.URL))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── token caching ────────────────────────────────────────────────────────────

func TestHTTPProvider_ReusesToken(t *testing.T) {
	note := testNote()

	var loginCalls int
	srv := httptest.NewServer(loginAware(t, &loginCalls, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(noteResource{NoteID: note.NoteID, Content: "body"})
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	vault := httpVault(srv.URL)

	_, err := p.LoadNote(context.Background(), note.NoteID, vault)
	require.NoError(t, err)
	_, err = p.LoadNote(context.Background(), note.NoteID, vault)
	require.NoError(t, err)

	assert.Equal(t, 1, loginCalls)
}

func TestHTTPProvider_LoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	p := newTestHTTPProvider(t)
	_, err := p.LoadNote(context.Background(), "note-1", httpVault(srv.URL))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
