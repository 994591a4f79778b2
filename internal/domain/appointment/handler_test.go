package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
)

func feedRequest(t *testing.T, path, uid, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, uid)
	ctx = context.WithValue(ctx, auth.UserRoleKey, role)
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeFeed(t *testing.T, rec *httptest.ResponseRecorder) []*Appointment {
	t.Helper()
	var items []*Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decoding feed: %v", err)
	}
	return items
}

// A due appointment must surface even when the caller has more future
// appointments than one listing page holds.
func TestReminders_DueBehindManyFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	svc, _, _ := newTestService(now)
	ctx := context.Background()

	due, err := svc.Book(ctx, booking(now.Add(time.Hour)))
	if err != nil {
		t.Fatalf("Book() error: %v", err)
	}
	for i := 0; i < 25; i++ {
		if _, err := svc.Book(ctx, booking(now.Add(48*time.Hour + time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Book() error: %v", err)
		}
	}

	h := NewHandler(svc, "10:00", DefaultReminderWindow)
	h.now = func() time.Time { return now }

	c, rec := feedRequest(t, "/api/v1/appointments/reminders", "pat-1", auth.RolePatient)
	if err := h.Reminders(c); err != nil {
		t.Fatalf("Reminders() error: %v", err)
	}
	items := decodeFeed(t, rec)
	if len(items) != 1 {
		t.Fatalf("expected 1 due reminder, got %d", len(items))
	}
	if items[0].ID != due.ID {
		t.Errorf("expected appointment %s in the feed, got %s", due.ID, items[0].ID)
	}
}

func TestUpcoming_AllFutureForPatient(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	svc, _, _ := newTestService(now)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if _, err := svc.Book(ctx, booking(now.Add(24*time.Hour + time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Book() error: %v", err)
		}
	}

	h := NewHandler(svc, "10:00", DefaultReminderWindow)
	h.now = func() time.Time { return now }

	c, rec := feedRequest(t, "/api/v1/appointments/upcoming", "pat-1", auth.RolePatient)
	if err := h.Upcoming(c); err != nil {
		t.Fatalf("Upcoming() error: %v", err)
	}
	if got := len(decodeFeed(t, rec)); got != 25 {
		t.Fatalf("expected all 25 upcoming appointments, got %d", got)
	}
}

func TestUpcoming_DoctorSkipsCancelled(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	svc, _, _ := newTestService(now)
	ctx := context.Background()

	kept, err := svc.Book(ctx, booking(now.Add(2*time.Hour)))
	if err != nil {
		t.Fatalf("Book() error: %v", err)
	}
	cancelled, err := svc.Book(ctx, booking(now.Add(3*time.Hour)))
	if err != nil {
		t.Fatalf("Book() error: %v", err)
	}
	if err := svc.Cancel(ctx, cancelled.ID); err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}

	h := NewHandler(svc, "10:00", DefaultReminderWindow)
	h.now = func() time.Time { return now }

	c, rec := feedRequest(t, "/api/v1/appointments/upcoming", "doc-1", auth.RoleDoctor)
	if err := h.Upcoming(c); err != nil {
		t.Fatalf("Upcoming() error: %v", err)
	}
	items := decodeFeed(t, rec)
	if len(items) != 1 || items[0].ID != kept.ID {
		t.Fatalf("expected only the scheduled appointment, got %d items", len(items))
	}
}
