package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

// tokenExpirySkew re-authenticates slightly before the bearer token actually
// expires, so an almost-dead token is never spent on a real request.
const tokenExpirySkew = 30 * time.Second

// loginRequest is the credentials payload of POST /api/auth/login.
type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// notePayload is the wire form of a note pushed to the vault server.
type notePayload struct {
	NoteID     string    `json:"note_id"`
	Title      string    `json:"title"`
	Kind       string    `json:"kind"`
	Content    string    `json:"content"`
	Hash       string    `json:"hash"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// noteResource is the wire form of a note as the vault server reports it.
type noteResource struct {
	NoteID     string    `json:"note_id"`
	FilePath   string    `json:"file_path"`
	Content    string    `json:"content"`
	Hash       string    `json:"hash"`
	ModifiedAt time.Time `json:"modified_at"`
}

// httpProvider talks to a remote vault server over REST. One instance serves
// every vault of type [models.ProviderHTTP]: Vault.Location carries the
// server base URL, and bearer tokens are cached per base URL so vaults on
// different servers do not share a session.
type httpProvider struct {
	client   *utils.HTTPClient
	login    string
	password string

	mu     sync.RWMutex
	tokens map[string]string

	logger *logger.Logger
}

// NewHTTPProvider constructs the [Provider] implementation for vaults of type
// [models.ProviderHTTP], configured with the request timeout and the vault
// server credentials.
func NewHTTPProvider(providerCfg config.Provider, logger *logger.Logger) Provider {
	client := utils.NewHTTPClient()
	if providerCfg.RequestTimeout > 0 {
		client.SetTimeout(providerCfg.RequestTimeout)
	}

	return &httpProvider{
		client:   client,
		login:    providerCfg.Login,
		password: providerCfg.Password,
		tokens:   make(map[string]string),
		logger:   logger,
	}
}

// IsAvailable implements [Provider]. An HTTP vault is available when its
// server answers GET /api/health with a 2xx status. The health endpoint is
// unauthenticated.
func (h *httpProvider) IsAvailable(ctx context.Context, vault models.Vault) bool {
	baseURL, err := normalizeBaseURL(vault.Location)
	if err != nil {
		h.logger.Warn().Err(err).
			Str("func", "httpProvider.IsAvailable").
			Str("vault_id", vault.VaultID).
			Msg("invalid vault location")
		return false
	}

	resp, err := h.client.R().SetContext(ctx).Get(baseURL + "/api/health")
	if err != nil {
		return false
	}

	return mapHTTPError(resp) == nil
}

// SaveNote implements [Provider]. The note is PUT to
// /api/vaults/{vault}/notes/{note}. A non-zero precondition travels as an
// If-Match header carrying the content hash (If-Unmodified-Since when only a
// timestamp is known), which the server answers with 412 when its copy has
// moved on. A rejected token triggers exactly one re-login before the request
// is retried.
func (h *httpProvider) SaveNote(ctx context.Context, note models.Note, vault models.Vault, precondition models.SavePrecondition) (models.SaveResult, error) {
	baseURL, err := normalizeBaseURL(vault.Location)
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("invalid vault location: %w", err)
	}

	payload := notePayload{
		NoteID:     note.NoteID,
		Title:      note.Title,
		Kind:       string(note.Kind),
		Content:    note.Content,
		Hash:       utils.ContentHashString(note.Content),
		CreatedAt:  note.CreatedAt,
		ModifiedAt: note.UpdatedAt,
	}

	resp, err := h.doAuthed(ctx, baseURL, func(req *resty.Request) (*resty.Response, error) {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
		if !precondition.IsZero() {
			if precondition.Hash != "" {
				req.SetHeader("If-Match", precondition.Hash)
			} else {
				req.SetHeader("If-Unmodified-Since", precondition.ModifiedAt.UTC().Format(http.TimeFormat))
			}
		}
		return req.Put(noteURL(baseURL, vault.VaultID, note.NoteID))
	})
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("save note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResult{}, err
	}

	var saved noteResource
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: decode save response: %w", ErrProviderWrite, err)
	}

	result := models.SaveResult{
		FilePath:   saved.FilePath,
		ModifiedAt: saved.ModifiedAt,
		Hash:       saved.Hash,
	}
	if result.Hash == "" {
		result.Hash = payload.Hash
	}

	return result, nil
}

// LoadNote implements [Provider]. The note is GET from
// /api/vaults/{vault}/notes/{note}; a 404 maps to [ErrNoteNotFound].
func (h *httpProvider) LoadNote(ctx context.Context, noteID string, vault models.Vault) (models.NoteVersion, error) {
	baseURL, err := normalizeBaseURL(vault.Location)
	if err != nil {
		return models.NoteVersion{}, fmt.Errorf("invalid vault location: %w", err)
	}

	resp, err := h.doAuthed(ctx, baseURL, func(req *resty.Request) (*resty.Response, error) {
		return req.Get(noteURL(baseURL, vault.VaultID, noteID))
	})
	if err != nil {
		return models.NoteVersion{}, fmt.Errorf("load note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteVersion{}, err
	}

	var remote noteResource
	if err = json.Unmarshal(resp.Body(), &remote); err != nil {
		return models.NoteVersion{}, fmt.Errorf("%w: decode note response: %w", ErrProviderRead, err)
	}

	version := models.NoteVersion{
		NoteID:     remote.NoteID,
		Content:    remote.Content,
		Hash:       remote.Hash,
		ModifiedAt: remote.ModifiedAt,
	}
	if version.NoteID == "" {
		version.NoteID = noteID
	}
	if version.Hash == "" {
		version.Hash = utils.ContentHashString(version.Content)
	}

	return version, nil
}

// doAuthed sends one authenticated request built by fn, re-authenticating and
// retrying exactly once when the server rejects the cached token. fn receives
// a fresh request each time. Transport failures map to
// [ErrProviderUnavailable].
func (h *httpProvider) doAuthed(ctx context.Context, baseURL string, fn func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	token, err := h.ensureToken(ctx, baseURL)
	if err != nil {
		return nil, err
	}

	resp, err := fn(h.authedRequest(ctx, token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, nil
	}

	h.logger.Debug().
		Str("func", "httpProvider.doAuthed").
		Str("base_url", baseURL).
		Msg("token rejected, re-authenticating")

	if token, err = h.authenticate(ctx, baseURL); err != nil {
		return nil, err
	}
	resp, err = fn(h.authedRequest(ctx, token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	return resp, nil
}

func (h *httpProvider) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// ensureToken returns a bearer token for baseURL, logging in when none is
// cached or the cached one is about to expire.
func (h *httpProvider) ensureToken(ctx context.Context, baseURL string) (string, error) {
	if token := h.token(baseURL); token != "" && !tokenExpired(token) {
		return token, nil
	}
	return h.authenticate(ctx, baseURL)
}

// tokenExpired reports whether the token's exp claim is within
// tokenExpirySkew of now. Opaque or exp-less tokens never count as expired;
// they rely on the 401 retry path instead.
func tokenExpired(token string) bool {
	expiresAt, err := utils.TokenExpiresAt(token)
	if err != nil || expiresAt.IsZero() {
		return false
	}
	return time.Until(expiresAt) < tokenExpirySkew
}

// authenticate logs in to the vault server, caches the returned bearer token
// for baseURL and returns it.
func (h *httpProvider) authenticate(ctx context.Context, baseURL string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Login: h.login, Password: h.password}).
		Post(baseURL + "/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("%w: login request: %w", ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.setToken(baseURL, token)
	return token, nil
}

func (h *httpProvider) token(baseURL string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens[baseURL]
}

func (h *httpProvider) setToken(baseURL, token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens[baseURL] = strings.TrimSpace(token)
}

// noteURL builds the note resource URL on the vault server.
func noteURL(baseURL, vaultID, noteID string) string {
	return baseURL + "/api/vaults/" + url.PathEscape(vaultID) + "/notes/" + url.PathEscape(noteID)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
