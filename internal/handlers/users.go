package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rtuclub/eventdesk/internal/registrants"
)

// GET /api/users/roll/{rollNumber}
func (a *API) UserByRoll(w http.ResponseWriter, r *http.Request) {
	reg, err := a.Registrants.FindByRollNumber(chi.URLParam(r, "rollNumber"))
	a.writeUser(w, reg, err)
}

// GET /api/users/email/{email}
func (a *API) UserByEmail(w http.ResponseWriter, r *http.Request) {
	reg, err := a.Registrants.FindByEmail(chi.URLParam(r, "email"))
	a.writeUser(w, reg, err)
}

func (a *API) writeUser(w http.ResponseWriter, reg registrants.Registrant, err error) {
	if err != nil {
		if errors.Is(err, registrants.ErrNotFound) {
			fail(w, http.StatusNotFound, "User not found")
			return
		}
		fail(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	entries, err := a.Registrants.Attendance(reg)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	history := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		history = append(history, map[string]any{
			"date":    e.Date.UTC().Format(time.RFC3339),
			"present": e.Present,
		})
	}
	ok(w, map[string]any{"user": reg, "attendance": history})
}
