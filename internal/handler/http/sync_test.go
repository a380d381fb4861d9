package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetSyncStatus_ReturnsVaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().GetStatus(gomock.Any()).Return([]models.VaultSyncStatus{
		{VaultID: "vault-1", Name: "Personal", QueueDepth: 2},
		{VaultID: "vault-2", Name: "Work"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response models.VaultStatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Length)
	assert.Equal(t, "vault-1", response.Vaults[0].VaultID)
	assert.Equal(t, 2, response.Vaults[0].QueueDepth)
}

func TestGetSyncStatus_StoreErrorReturns500(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().GetStatus(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetConflicts_PassesVaultFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().GetConflicts(gomock.Any(), "vault-1").
		Return([]models.SyncState{{NoteID: "note-1", VaultID: "vault-1", Status: models.StatusConflict}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/conflicts?vault_id=vault-1", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.ConflictListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Length)
	assert.Equal(t, "note-1", response.Conflicts[0].NoteID)
}

func TestGetConflicts_NoFilterMeansAllVaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().GetConflicts(gomock.Any(), "").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/conflicts", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.ConflictListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Zero(t, response.Length)
}

func TestGetFailedItems_ReturnsItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().GetFailedItems(gomock.Any()).Return([]models.RetryQueueItem{
		{NoteID: "note-1", VaultID: "vault-1", RetryCount: 5, LastErrorMessage: "disk full"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/failed", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.FailedItemsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Length)
	assert.Equal(t, 5, response.Items[0].RetryCount)
}

func TestResetRetry_ResetsOneNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().ResetRetry(gomock.Any(), "note-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/retry/note-1", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.ResetResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Reset)
}

func TestResetRetry_UnknownNoteReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().ResetRetry(gomock.Any(), "ghost").Return(store.ErrRetryItemNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/retry/ghost", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResetAllFailed_ReportsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.admin.EXPECT().ResetAllFailed(gomock.Any()).Return(int64(3), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/failed/reset", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response models.ResetResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, int64(3), response.Reset)
}

func TestTriggerSweep_ReturnsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.sweep.EXPECT().RunSweep(gomock.Any()).
		Return(models.SweepSummary{VaultsScanned: 2, NotesAttempted: 7, Synced: 5, Conflicts: 1, Failed: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/sweep", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var summary models.SweepSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.VaultsScanned)
	assert.Equal(t, 7, summary.NotesAttempted)
	assert.Equal(t, 5, summary.Synced)
}

func TestTriggerSweep_FailureReturns500(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.sweep.EXPECT().RunSweep(gomock.Any()).
		Return(models.SweepSummary{}, store.ErrExecutingQuery)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/sweep", nil)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
