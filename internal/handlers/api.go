package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rtuclub/eventdesk/internal/attendance"
	"github.com/rtuclub/eventdesk/internal/config"
	"github.com/rtuclub/eventdesk/internal/distribution"
	"github.com/rtuclub/eventdesk/internal/events"
	"github.com/rtuclub/eventdesk/internal/registrants"
	"github.com/rtuclub/eventdesk/internal/services"
)

// API bundles the wired services behind the HTTP surface.
type API struct {
	Cfg          config.App
	Attendance   *attendance.Service
	Events       *events.Store
	Registrants  *registrants.Store
	Registration *services.Registration
	Distribution *distribution.Service
}

// response is the envelope every operation returns.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response{Success: false, Error: msg})
}

func idParam(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	return uint(id), err == nil
}

// GET /healthz
func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
