package distribution

import (
	"context"
	"fmt"
	"log"

	"github.com/rtuclub/eventdesk/internal/mail"
	"github.com/rtuclub/eventdesk/internal/metrics"
)

const reminderVenue = "RTU Campus, Kota"

// SendReminders emails every student registered to the event, attended or
// not, with the same per-recipient isolation rules as certificates.
func (s *Service) SendReminders(ctx context.Context, eventID uint) (Report, error) {
	ev, err := s.events.Get(eventID)
	if err != nil {
		return Report{}, err
	}
	students, err := s.events.Registered(ev)
	if err != nil {
		return Report{}, err
	}

	key := fmt.Sprintf("reminders:event:%d", eventID)
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

	when := ev.EventDate.In(s.events.Location()).Format("Monday, January 2, 2006") + " at 3:00 PM"
	for _, st := range students {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Processed++

		msg := mail.Message{
			To:       st.Email,
			Subject:  "📅 Event Reminder: " + ev.EventName,
			HTMLBody: mail.ReminderBody(st.Name, ev.EventName, reminderVenue, when),
		}
		if err := s.sender.Send(ctx, msg); err != nil {
			report.Failures = append(report.Failures, Failure{Name: st.Name, Email: st.Email, Reason: "mail: " + err.Error()})
			metrics.RemindersFailed.Inc()
			continue
		}
		report.Sent++
		metrics.RemindersSent.Inc()
	}

	log.Printf("reminders: event %q: sent %d of %d", ev.EventName, report.Sent, report.Eligible)
	return report, nil
}
