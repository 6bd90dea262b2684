package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rtuclub/eventdesk/internal/distribution"
	"github.com/rtuclub/eventdesk/internal/events"
	"github.com/rtuclub/eventdesk/internal/models"
)

type eventRequest struct {
	EventName       string `json:"eventName"`
	EventDate       string `json:"eventDate"` // 2006-01-02
	Motive          string `json:"motive"`
	RegistrationFee string `json:"registrationFee"`
}

// POST /api/events (admin only)
func (a *API) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EventName == "" || req.Motive == "" {
		fail(w, http.StatusBadRequest, "event name and motive are required")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", req.EventDate, a.Events.Location())
	if err != nil {
		fail(w, http.StatusBadRequest, "event date must be YYYY-MM-DD")
		return
	}

	ev := models.Event{
		EventName:       req.EventName,
		EventDate:       date,
		Motive:          req.Motive,
		RegistrationFee: req.RegistrationFee,
	}
	if err := a.Events.Create(&ev); err != nil {
		if errors.Is(err, events.ErrDuplicate) {
			fail(w, http.StatusConflict, "An event with this name already exists.")
			return
		}
		fail(w, http.StatusInternalServerError, "Failed to create event.")
		return
	}
	ok(w, ev)
}

// GET /api/events
func (a *API) ListEvents(w http.ResponseWriter, _ *http.Request) {
	evs, err := a.Events.List()
	if err != nil {
		fail(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	ok(w, evs)
}

// GET /api/events/{id}
func (a *API) GetEvent(w http.ResponseWriter, r *http.Request) {
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
	ok(w, ev)
}

// DELETE /api/events/{id} (admin only)
func (a *API) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, valid := idParam(r)
	if !valid {
		fail(w, http.StatusBadRequest, "invalid event id")
		return
	}
	if err := a.Events.Delete(id); err != nil {
		if errors.Is(err, events.ErrNotFound) {
			fail(w, http.StatusNotFound, "Event not found")
			return
		}
		fail(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	ok(w, nil)
}

// GET /api/events/{id}/attendance (admin only)
func (a *API) EventAttendance(w http.ResponseWriter, r *http.Request) {
	id, valid := idParam(r)
	if !valid {
		fail(w, http.StatusBadRequest, "invalid event id")
		return
	}
	ev, rows, err := a.Events.AttendanceReport(id)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			fail(w, http.StatusNotFound, "Event not found")
			return
		}
		fail(w, http.StatusInternalServerError, "Failed to fetch event attendance")
		return
	}
	ok(w, map[string]any{"eventName": ev.EventName, "rows": rows})
}

// POST /api/events/{id}/certificates (admin only)
func (a *API) SendCertificates(w http.ResponseWriter, r *http.Request) {
	a.runBatch(w, r, a.Distribution.SendCertificates)
}

// POST /api/events/{id}/reminders (admin only)
func (a *API) SendReminders(w http.ResponseWriter, r *http.Request) {
	a.runBatch(w, r, a.Distribution.SendReminders)
}

func (a *API) runBatch(w http.ResponseWriter, r *http.Request, run func(ctx context.Context, id uint) (distribution.Report, error)) {
	id, valid := idParam(r)
	if !valid {
		fail(w, http.StatusBadRequest, "invalid event id")
		return
	}
	report, err := run(r.Context(), id)
	switch {
	case errors.Is(err, events.ErrNotFound):
		fail(w, http.StatusNotFound, "Event not found")
		return
	case errors.Is(err, distribution.ErrBatchInProgress):
		fail(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	ok(w, report)
}
