package appointment

import (
	"time"
)

// DefaultReminderWindow is the rolling look-ahead within which a scheduled
// appointment triggers a reminder.
const DefaultReminderWindow = 24 * time.Hour

// Upcoming returns the appointments strictly after now, regardless of
// status. This is the patient-facing partition.
func Upcoming(appts []*Appointment, now time.Time) []*Appointment {
	var result []*Appointment
	for _, a := range appts {
		if a.DateTime.After(now) {
			result = append(result, a)
		}
	}
	return result
}

// UpcomingScheduled returns the appointments strictly after now that are
// still scheduled. This is the doctor-facing partition; the difference from
// Upcoming is intentional product behavior, not an oversight.
func UpcomingScheduled(appts []*Appointment, now time.Time) []*Appointment {
	var result []*Appointment
	for _, a := range appts {
		if a.Status == StatusScheduled && a.DateTime.After(now) {
			result = append(result, a)
		}
	}
	return result
}

// DueReminders returns the appointments that need a user-facing reminder:
// still scheduled and falling within (now, now+window]. Dismissal of a
// reminder is caller state and never mutates the appointment.
func DueReminders(appts []*Appointment, now time.Time, window time.Duration) []*Appointment {
	if window <= 0 {
		window = DefaultReminderWindow
	}
	horizon := now.Add(window)
	var result []*Appointment
	for _, a := range appts {
		if a.Status != StatusScheduled {
			continue
		}
		if a.DateTime.After(now) && !a.DateTime.After(horizon) {
			result = append(result, a)
		}
	}
	return result
}
