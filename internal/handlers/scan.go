package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rtuclub/eventdesk/internal/attendance"
	"github.com/rtuclub/eventdesk/internal/auth"
	"github.com/rtuclub/eventdesk/internal/metrics"
	"github.com/rtuclub/eventdesk/internal/registrants"
)

// POST /api/scan/{token} (admin only)
func (a *API) Scan(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	op := attendance.Operator{Subject: claims.Subject, Role: claims.Role}

	res, err := a.Attendance.Mark(r.Context(), op, chi.URLParam(r, "token"))
	switch {
	case errors.Is(err, attendance.ErrPermissionDenied):
		metrics.ScansTotal.WithLabelValues("denied").Inc()
		fail(w, http.StatusForbidden, "Unauthorized access")
		return
	case errors.Is(err, attendance.ErrEmptyToken):
		metrics.ScansTotal.WithLabelValues("error").Inc()
		fail(w, http.StatusBadRequest, "Invalid scan token")
		return
	case errors.Is(err, registrants.ErrNotFound):
		metrics.ScansTotal.WithLabelValues("not_found").Inc()
		fail(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		metrics.ScansTotal.WithLabelValues("error").Inc()
		fail(w, http.StatusInternalServerError, "Failed to mark attendance")
		return
	}

	metrics.ScansTotal.WithLabelValues(string(res.Status)).Inc()
	message := "Attendance marked successfully"
	if res.Status == attendance.StatusAlreadyMarked {
		message = "Attendance already marked for today"
	}
	ok(w, map[string]any{
		"status":  res.Status,
		"message": message,
		"user": map[string]any{
			"id":         res.Registrant.ID,
			"kind":       res.Registrant.Kind,
			"name":       res.Registrant.Name,
			"rollNumber": res.Registrant.RollNumber,
		},
	})
}
