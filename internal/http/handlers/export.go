package handlers

import (
	"fmt"
	"net/http"

	"campaignhub/internal/syncer"
)

func (a *App) Export(w http.ResponseWriter, r *http.Request) {
	now := a.Now()
	archive, err := syncer.Export(a.Root.State(), now)
	if err != nil {
		a.Logger.Error().Err(err).Msg("export failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to build export")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", syncer.ExportName(now)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
