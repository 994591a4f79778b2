package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/internal/platform/db"
	"github.com/arogya/arogya/pkg/aadhaar"
	"github.com/arogya/arogya/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/register", h.Register)
	api.GET("/profile", h.GetProfile)
	api.GET("/doctors", h.ListDoctors)
	api.POST("/aadhaar/verify", h.VerifyAadhaar)
}

type registerRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Aadhaar string  `json:"aadhaar"`
}

// Register creates the profile for the authenticated uid. The variant is
// taken from the token role, not the request body.
func (h *Handler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	uid := auth.UserIDFromContext(ctx)
	role := auth.RoleFromContext(ctx)

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	switch role {
	case auth.RoleDoctor:
		d, err := h.svc.RegisterDoctor(ctx, uid, req.Name, req.Email)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(http.StatusCreated, Profile{Role: RoleDoctor, Doctor: d})
	case auth.RolePatient:
		p, err := h.svc.RegisterPatient(ctx, uid, req.Name, req.Email, req.Aadhaar)
		if err != nil {
			return mapError(err)
		}
		return c.JSON(http.StatusCreated, Profile{Role: RolePatient, Patient: p})
	default:
		return echo.NewHTTPError(http.StatusForbidden, "unknown role")
	}
}

func (h *Handler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	profile, err := h.svc.GetProfile(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListDoctors(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

type verifyAadhaarRequest struct {
	Aadhaar string `json:"aadhaar"`
}

type verifyAadhaarResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// VerifyAadhaar runs the structural check only; it never confirms that the
// number exists.
func (h *Handler) VerifyAadhaar(c echo.Context) error {
	var req verifyAadhaarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := aadhaar.Validate(req.Aadhaar)
	return c.JSON(http.StatusOK, verifyAadhaarResponse{
		Valid:   res == aadhaar.Valid,
		Message: res.Message(),
	})
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	case errors.Is(err, ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "profile already exists")
	case errors.Is(err, ErrInvalidAadhaar):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
