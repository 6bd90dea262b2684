package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rtuclub/eventdesk/internal/certificate"
	"github.com/rtuclub/eventdesk/internal/events"
)

// GET /api/events/{id}/poster.png
func (a *API) Poster(w http.ResponseWriter, r *http.Request) {
	id, valid := idParam(r)
	if !valid {
		fail(w, http.StatusBadRequest, "invalid event id")
		return
	}
	ev, err := a.Events.Get(id)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			fail(w, http.StatusNotFound, "Event not found")
			return
		}
		fail(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}

	tpl, err := certificate.LoadFonts(a.Cfg.AssetsDir)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Poster generation failed. Please ensure font files exist in the assets directory.")
		return
	}

	registrationURL := fmt.Sprintf("%s/events/%d", strings.TrimRight(a.Cfg.BaseURL, "/"), ev.ID)
	png, err := certificate.RenderPoster(tpl, ev, registrationURL, a.Events.Location())
	if err != nil {
		fail(w, http.StatusInternalServerError, "Poster generation failed.")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
