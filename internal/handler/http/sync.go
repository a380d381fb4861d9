package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	statuses, err := h.services.Admin.GetStatus(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncStatus").Msg("error getting vault sync statuses")
		http.Error(w, "error getting vault sync statuses", statusFromError(err))
		return
	}

	response := models.VaultStatusResponse{
		Vaults: statuses,
		Length: len(statuses),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getConflicts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// An absent vault_id widens the query to all vaults.
	vaultID := r.URL.Query().Get("vault_id")

	conflicts, err := h.services.Admin.GetConflicts(ctx, vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConflicts").Msg("error getting conflicts")
		http.Error(w, "error getting conflicts", statusFromError(err))
		return
	}

	response := models.ConflictListResponse{
		Conflicts: conflicts,
		Length:    len(conflicts),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getFailedItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.Admin.GetFailedItems(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFailedItems").Msg("error getting failed retry items")
		http.Error(w, "error getting failed retry items", statusFromError(err))
		return
	}

	response := models.FailedItemsResponse{
		Items:  items,
		Length: len(items),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) resetRetry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	noteID := chi.URLParam(r, "noteID")
	if noteID == "" {
		log.Error().Str("func", "*Handler.resetRetry").Msg("no note ID was given")
		http.Error(w, "no note ID was given", http.StatusBadRequest)
		return
	}

	if err := h.services.Admin.ResetRetry(ctx, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.resetRetry").Str("note_id", noteID).Msg("error resetting retry counter")
		http.Error(w, "error resetting retry counter", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ResetResponse{Reset: 1}, http.StatusOK)
}

func (h *Handler) resetAllFailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	reset, err := h.services.Admin.ResetAllFailed(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resetAllFailed").Msg("error resetting failed retry items")
		http.Error(w, "error resetting failed retry items", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ResetResponse{Reset: reset}, http.StatusOK)
}

// triggerSweep runs one sweep synchronously and reports its summary. The
// scheduled background sweep keeps its own cadence; this endpoint exists for
// operators who do not want to wait for the next tick.
func (h *Handler) triggerSweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	summary, err := h.services.Sweep.RunSweep(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.triggerSweep").Msg("error running sweep")
		http.Error(w, "error running sweep", statusFromError(err))
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
