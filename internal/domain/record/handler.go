package record

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/domain/consent"
	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/internal/platform/db"
	"github.com/arogya/arogya/pkg/pagination"
)

// Authorizer gates record access; satisfied by consent.Service.
type Authorizer interface {
	Authorize(ctx context.Context, patientID, requesterID string) error
}

type Handler struct {
	svc   *Service
	authz Authorizer
}

func NewHandler(svc *Service, authz Authorizer) *Handler {
	return &Handler{svc: svc, authz: authz}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id/records", h.List)
	api.POST("/patients/:id/records", h.Append)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	patientID := c.Param("id")

	if err := h.authz.Authorize(ctx, patientID, auth.UserIDFromContext(ctx)); err != nil {
		return mapError(err)
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(ctx, patientID, pg.Limit, pg.Offset)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Append(c echo.Context) error {
	ctx := c.Request().Context()
	patientID := c.Param("id")

	if err := h.authz.Authorize(ctx, patientID, auth.UserIDFromContext(ctx)); err != nil {
		return mapError(err)
	}

	var rec Record
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Append(ctx, patientID, &rec)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, consent.ErrAccessDenied):
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	case errors.Is(err, ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
