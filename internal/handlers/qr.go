package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rtuclub/eventdesk/internal/registrants"
)

// GET /qr/{token}.png
func (a *API) QR(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		http.NotFound(w, r)
		return
	}

	// Only issued badges get a QR image.
	url := registrants.ScanURL(a.Cfg.BaseURL, token)
	if _, err := a.Registrants.FindByScanURL(url); err != nil {
		if errors.Is(err, registrants.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to resolve token", http.StatusInternalServerError)
		return
	}

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
