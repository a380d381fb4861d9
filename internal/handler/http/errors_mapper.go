package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrConflictUnresolvable:    http.StatusConflict,
	service.ErrUnknownConflictStrategy: http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	validators.ErrUnsupportedType: http.StatusBadRequest,
	validators.ErrUnknownField:    http.StatusBadRequest,
	validators.ErrInvalidNoteID:   http.StatusBadRequest,
	validators.ErrInvalidVaultID:  http.StatusBadRequest,
	validators.ErrTitleTooLong:    http.StatusBadRequest,
	validators.ErrUnsafeFilePath:  http.StatusBadRequest,

	adapter.ErrProviderUnavailable: http.StatusServiceUnavailable,
	adapter.ErrRemoteModified:      http.StatusConflict,
	adapter.ErrNoteNotFound:        http.StatusNotFound,
	adapter.ErrUnknownProvider:     http.StatusInternalServerError,

	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrVaultNotFound:      http.StatusNotFound,
	store.ErrVaultAlreadyExists: http.StatusConflict,
	store.ErrSyncStateNotFound:  http.StatusNotFound,
	store.ErrRetryItemNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
