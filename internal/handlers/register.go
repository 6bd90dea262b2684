package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rtuclub/eventdesk/internal/services"
)

// POST /api/register/member
func (a *API) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var in services.MemberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, err := a.Registration.RegisterMember(r.Context(), in)
	if err != nil {
		registerError(w, err)
		return
	}
	ok(w, map[string]any{"userId": m.ID, "qrCode": m.ScanURL})
}

// POST /api/register/student
func (a *API) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	var in services.StudentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	st, err := a.Registration.RegisterStudent(r.Context(), in)
	if err != nil {
		registerError(w, err)
		return
	}
	ok(w, map[string]any{"userId": st.ID, "qrCode": st.ScanURL})
}

func registerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicate):
		fail(w, http.StatusConflict, "A user with this email or roll number already exists")
	case errors.Is(err, services.ErrInvalidInput):
		fail(w, http.StatusBadRequest, err.Error())
	default:
		fail(w, http.StatusInternalServerError, "Failed to register user")
	}
}
