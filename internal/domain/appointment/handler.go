package appointment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/internal/platform/db"
	"github.com/arogya/arogya/pkg/datetime"
	"github.com/arogya/arogya/pkg/pagination"
)

type Handler struct {
	svc            *Service
	defaultTime    string
	reminderWindow time.Duration

	now func() time.Time // overridden in tests
}

func NewHandler(svc *Service, defaultTime string, reminderWindow time.Duration) *Handler {
	if reminderWindow <= 0 {
		reminderWindow = DefaultReminderWindow
	}
	return &Handler{
		svc:            svc,
		defaultTime:    defaultTime,
		reminderWindow: reminderWindow,
		now:            time.Now,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.Book, auth.RequireRole(auth.RolePatient))
	api.GET("/appointments", h.List)
	api.GET("/appointments/upcoming", h.Upcoming)
	api.GET("/appointments/reminders", h.Reminders)
	api.POST("/appointments/:id/cancel", h.Cancel)
	api.POST("/appointments/:id/complete", h.Complete, auth.RequireRole(auth.RoleDoctor))
}

type bookRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
}

// Book accepts the tolerant date/time text the booking form produces and
// resolves it before handing off to the service.
func (h *Handler) Book(c echo.Context) error {
	ctx := c.Request().Context()

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	at, err := datetime.Parse(req.Date, req.Time, datetime.WithDefaultTime(h.defaultTime))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.svc.Book(ctx, BookingRequest{
		PatientID: auth.UserIDFromContext(ctx),
		DoctorID:  req.DoctorID,
		DateTime:  at,
		Reason:    req.Reason,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) List(c echo.Context) error {
	items, total, pg, err := h.listForCaller(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// Upcoming returns the caller's future appointments. Patients see every
// future appointment; doctors only the still-scheduled ones.
func (h *Handler) Upcoming(c echo.Context) error {
	now := h.now()
	items, err := h.upcomingForCaller(c, now)
	if err != nil {
		return err
	}

	var result []*Appointment
	if auth.RoleFromContext(c.Request().Context()) == auth.RoleDoctor {
		result = UpcomingScheduled(items, now)
	} else {
		result = Upcoming(items, now)
	}
	if result == nil {
		result = []*Appointment{}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Reminders(c echo.Context) error {
	now := h.now()
	items, err := h.upcomingForCaller(c, now)
	if err != nil {
		return err
	}
	due := DueReminders(items, now, h.reminderWindow)
	if due == nil {
		due = []*Appointment{}
	}
	return c.JSON(http.StatusOK, due)
}

// upcomingForCaller fetches the caller's complete future set. The feeds are
// never paginated; a due appointment must not drop out because it sorts
// behind a page of farther-future ones.
func (h *Handler) upcomingForCaller(c echo.Context, from time.Time) ([]*Appointment, error) {
	ctx := c.Request().Context()
	items, err := h.svc.UpcomingForUser(ctx,
		auth.UserIDFromContext(ctx), auth.RoleFromContext(ctx), from)
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (h *Handler) listForCaller(c echo.Context) ([]*Appointment, int, pagination.Params, error) {
	ctx := c.Request().Context()
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListForUser(ctx,
		auth.UserIDFromContext(ctx), auth.RoleFromContext(ctx),
		c.QueryParam("order"), pg.Limit, pg.Offset)
	if err != nil {
		return nil, 0, pg, mapError(err)
	}
	return items, total, pg, nil
}

func (h *Handler) Cancel(c echo.Context) error {
	return h.transition(c, h.svc.Cancel)
}

func (h *Handler) Complete(c echo.Context) error {
	return h.transition(c, h.svc.Complete)
}

// transition applies a status change after verifying the caller is a party
// to the appointment. The denial matches the consent one so ids cannot be
// probed.
func (h *Handler) transition(c echo.Context, apply func(ctx context.Context, id uuid.UUID) error) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	a, err := h.svc.Get(ctx, id)
	if err != nil {
		return mapError(err)
	}
	uid := auth.UserIDFromContext(ctx)
	if uid != a.PatientID && uid != a.DoctorID {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}

	if err := apply(ctx, id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	case errors.Is(err, ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, "invalid status transition")
	case errors.Is(err, ErrPastDateTime), errors.Is(err, ErrUnknownDoctor),
		errors.Is(err, ErrEmptyReason):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
