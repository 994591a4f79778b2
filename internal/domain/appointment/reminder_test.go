package appointment

import (
	"testing"
	"time"
)

func appt(at time.Time, status string) *Appointment {
	return &Appointment{DateTime: at, Status: status}
}

func TestDueReminders_Window(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	in23h := appt(now.Add(23*time.Hour), StatusScheduled)
	in25h := appt(now.Add(25*time.Hour), StatusScheduled)
	cancelledSoon := appt(now.Add(time.Hour), StatusCancelled)

	due := DueReminders([]*Appointment{in23h, in25h, cancelledSoon}, now, DefaultReminderWindow)

	if len(due) != 1 {
		t.Fatalf("expected 1 due reminder, got %d", len(due))
	}
	if due[0] != in23h {
		t.Error("the scheduled appointment 23h out must be due")
	}
}

func TestDueReminders_Boundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	exactlyNow := appt(now, StatusScheduled)
	exactly24h := appt(now.Add(24*time.Hour), StatusScheduled)
	past := appt(now.Add(-time.Minute), StatusScheduled)

	due := DueReminders([]*Appointment{exactlyNow, exactly24h, past}, now, DefaultReminderWindow)

	// The window is (now, now+24h]: an appointment at exactly now is not
	// due, one at exactly the horizon is.
	if len(due) != 1 || due[0] != exactly24h {
		t.Fatalf("expected only the appointment at the 24h horizon, got %d", len(due))
	}
}

func TestDueReminders_CompletedExcluded(t *testing.T) {
	now := time.Now()
	due := DueReminders([]*Appointment{appt(now.Add(time.Hour), StatusCompleted)}, now, DefaultReminderWindow)
	if len(due) != 0 {
		t.Fatal("completed appointments are never due")
	}
}

func TestUpcoming_IgnoresStatus(t *testing.T) {
	now := time.Now()

	futureCancelled := appt(now.Add(time.Hour), StatusCancelled)
	futureScheduled := appt(now.Add(2*time.Hour), StatusScheduled)
	past := appt(now.Add(-time.Hour), StatusScheduled)

	up := Upcoming([]*Appointment{futureCancelled, futureScheduled, past}, now)
	if len(up) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(up))
	}
}

func TestUpcomingScheduled_FiltersStatus(t *testing.T) {
	now := time.Now()

	futureCancelled := appt(now.Add(time.Hour), StatusCancelled)
	futureScheduled := appt(now.Add(2*time.Hour), StatusScheduled)

	up := UpcomingScheduled([]*Appointment{futureCancelled, futureScheduled}, now)
	if len(up) != 1 || up[0] != futureScheduled {
		t.Fatalf("expected only the scheduled appointment, got %d", len(up))
	}
}
