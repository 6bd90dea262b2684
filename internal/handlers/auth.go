package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rtuclub/eventdesk/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/login
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username != a.Cfg.AdminUsername || req.Password != a.Cfg.AdminPassword {
		fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, exp, err := auth.Issue("admin", "admin", a.Cfg.JWTIssuer, a.Cfg.JWTSigningKey, a.Cfg.SessionTTL)
	if err != nil {
		fail(w, http.StatusInternalServerError, "Login failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	ok(w, map[string]any{"expiresAt": exp.Format(time.RFC3339)})
}

// POST /api/logout
func (a *API) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
	ok(w, nil)
}
