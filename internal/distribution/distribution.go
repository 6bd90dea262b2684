package distribution

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rtuclub/eventdesk/internal/certificate"
	"github.com/rtuclub/eventdesk/internal/events"
	"github.com/rtuclub/eventdesk/internal/lock"
	"github.com/rtuclub/eventdesk/internal/mail"
	"github.com/rtuclub/eventdesk/internal/metrics"
)

// ErrBatchInProgress means another batch for the same event holds the
// advisory lock.
var ErrBatchInProgress = errors.New("a batch for this event is already running")

// Failure names one recipient the batch could not serve.
type Failure struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// Report aggregates one batch run. A report with failures is still a
// successful run as long as every eligible recipient was attempted;
// Processed < Eligible only when the batch was cancelled mid-way.
type Report struct {
	EventName string    `json:"eventName"`
	Eligible  int       `json:"eligible"`
	Processed int       `json:"processed"`
	Sent      int       `json:"sent"`
	Failures  []Failure `json:"failures,omitempty"`
}

// Service runs per-event mail batches: certificates and reminders.
type Service struct {
	events  *events.Store
	sender  mail.Sender
	locker  lock.Locker
	assets  string
	lockTTL time.Duration
}

func NewService(evs *events.Store, sender mail.Sender, locker lock.Locker, assetsDir string) *Service {
	return &Service{
		events:  evs,
		sender:  sender,
		locker:  locker,
		assets:  assetsDir,
		lockTTL: 10 * time.Minute,
	}
}

// SendCertificates renders and emails a certificate to every student whose
// attendance falls on the event's calendar day. A failure for one recipient
// never stops the rest; the batch aborts only when the event or a template
// asset is missing. There is no persisted send ledger, so re-running
// re-emails everyone eligible: delivery is at-least-once.
func (s *Service) SendCertificates(ctx context.Context, eventID uint) (Report, error) {
	ev, students, err := s.events.Eligible(eventID)
	if err != nil {
		return Report{}, err
	}

	key := fmt.Sprintf("certificates:event:%d", eventID)
	ok, err := s.locker.TryLock(ctx, key, s.lockTTL)
	if err != nil {
		return Report{}, err
	}
	if !ok {
		return Report{}, ErrBatchInProgress
	}
	defer s.locker.Unlock(context.Background(), key)

	report := Report{EventName: ev.EventName, Eligible: len(students)}
	if len(students) == 0 {
		return report, nil
	}

	// Validate assets before touching any recipient.
	tpl, err := certificate.LoadTemplate(s.assets)
	if err != nil {
		return Report{}, err
	}

	filename := "Certificate_" + strings.ReplaceAll(ev.EventName, " ", "_") + ".pdf"
	for _, st := range students {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Processed++

		pdf, err := certificate.Render(tpl, st.Name, ev.EventName)
		if err != nil {
			report.Failures = append(report.Failures, Failure{Name: st.Name, Email: st.Email, Reason: "render: " + err.Error()})
			metrics.CertificatesFailed.Inc()
			continue
		}

		msg := mail.Message{
			To:       st.Email,
			Subject:  "Your Certificate for " + ev.EventName,
			HTMLBody: mail.CertificateBody(st.Name, ev.EventName),
			Attachments: []mail.Attachment{{
				Filename: filename,
				Bytes:    pdf,
				MIMEType: "application/pdf",
			}},
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			report.Failures = append(report.Failures, Failure{Name: st.Name, Email: st.Email, Reason: "mail: " + err.Error()})
			metrics.CertificatesFailed.Inc()
			continue
		}
		report.Sent++
		metrics.CertificatesSent.Inc()
	}

	log.Printf("certificates: event %q: sent %d of %d", ev.EventName, report.Sent, report.Eligible)
	return report, nil
}
