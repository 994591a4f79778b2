package consent

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Sharing is managed by the patient alone; doctors never see or edit the set.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/patients/:id/consents", auth.RequireRole(auth.RolePatient), requireSelf)
	g.GET("", h.ListGrants)
	g.PUT("/:doctorId", h.Grant)
	g.DELETE("/:doctorId", h.Revoke)
}

// requireSelf rejects a patient operating on another patient's sharing set.
// The denial is indistinguishable from a missing grant.
func requireSelf(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if auth.UserIDFromContext(c.Request().Context()) != c.Param("id") {
			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		}
		return next(c)
	}
}

func (h *Handler) Grant(c echo.Context) error {
	err := h.svc.Grant(c.Request().Context(), c.Param("id"), c.Param("doctorId"))
	if err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Revoke(c echo.Context) error {
	err := h.svc.Revoke(c.Request().Context(), c.Param("id"), c.Param("doctorId"))
	if err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListGrants(c echo.Context) error {
	ids, err := h.svc.ListGrants(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"doctor_ids": ids})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrAccessDenied):
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	case errors.Is(err, db.ErrUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
