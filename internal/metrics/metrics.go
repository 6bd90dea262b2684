package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ScansTotal counts QR scan attempts by outcome: marked, already_marked,
	// not_found, denied, error.
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventdesk_scans_total",
		Help: "QR scan attempts by outcome.",
	}, []string{"outcome"})

	CertificatesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventdesk_certificates_sent_total",
		Help: "Certificates rendered and emailed.",
	})
	CertificatesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventdesk_certificates_failed_total",
		Help: "Per-recipient certificate failures (render or mail).",
	})

	RemindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventdesk_reminders_sent_total",
		Help: "Reminder emails delivered.",
	})
	RemindersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventdesk_reminders_failed_total",
		Help: "Reminder emails that could not be delivered.",
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
