package handler // handler package contains admin-specific court handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/padelhq/padel-reservation/internal/availability"
	"github.com/padelhq/padel-reservation/internal/model"
	"github.com/padelhq/padel-reservation/internal/repository"
)

// AdminHandler bundles repositories for club staff to manage courts and
// blocking intervals.  All methods assume the ADMIN role was enforced by
// middleware.
type AdminHandler struct {
	CourtRepo   *repository.CourtRepo
	BlockedRepo *repository.BlockedSlotRepo
}

// NewAdminHandler constructs a new AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(courtRepo *repository.CourtRepo, blockedRepo *repository.BlockedSlotRepo) *AdminHandler {
	if courtRepo == nil || blockedRepo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{CourtRepo: courtRepo, BlockedRepo: blockedRepo}
}

// courtReq is the JSON body shared by court create and update endpoints.
type courtReq struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Capacity    uint8  `json:"capacity"`
	DurationMin int    `json:"duration_min"`
	PriceCents  uint32 `json:"price_cents"`
	IsActive    *bool  `json:"is_active"` // update only; nil leaves the flag untouched
}

// validateCourtReq normalizes and checks the court attributes.  It
// returns a user-facing message when the payload is invalid.
func validateCourtReq(req *courtReq) string {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.ToUpper(strings.TrimSpace(req.Type))
	req.Location = strings.ToUpper(strings.TrimSpace(req.Location))
	if req.Name == "" {
		return "name is required"
	}
	switch req.Type {
	case model.CourtTypeDouble, model.CourtTypeSingle, model.CourtTypeKids:
	default:
		return "type must be DOUBLE, SINGLE or KIDS"
	}
	switch req.Location {
	case model.CourtLocationIndoor, model.CourtLocationOutdoor:
	default:
		return "location must be INDOOR or OUTDOOR"
	}
	if req.Capacity != 2 && req.Capacity != 4 {
		return "capacity must be 2 or 4"
	}
	if req.DurationMin != availability.DurationShort && req.DurationMin != availability.DurationLong {
		return "duration_min must be 60 or 90"
	}
	return ""
}

// CreateCourt handles POST /v1/admin/courts and registers a new court.
func (h *AdminHandler) CreateCourt(c echo.Context) error {
	var req courtReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := validateCourtReq(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	court := &model.Court{
		Name:        req.Name,
		Type:        req.Type,
		Location:    req.Location,
		Capacity:    req.Capacity,
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
	}
	if err := h.CourtRepo.Create(c.Request().Context(), court); err != nil {
		if strings.Contains(err.Error(), "1062") { // duplicate court name
			return c.JSON(http.StatusConflict, echo.Map{"error": "court name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create court"})
	}
	return c.JSON(http.StatusCreated, court)
}

// ListCourts handles GET /v1/admin/courts and returns every court
// including inactive ones.
func (h *AdminHandler) ListCourts(c echo.Context) error {
	courts, err := h.CourtRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": courts})
}

// UpdateCourt handles PUT /v1/admin/courts/:id and rewrites a court's
// attributes.  Changing duration_min redraws the court's slot grid from
// the next availability computation on; existing confirmed bookings are
// left untouched.
func (h *AdminHandler) UpdateCourt(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req courtReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := validateCourtReq(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx := c.Request().Context()
	court, err := h.CourtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	court.Name = req.Name
	court.Type = req.Type
	court.Location = req.Location
	court.Capacity = req.Capacity
	court.DurationMin = req.DurationMin
	court.PriceCents = req.PriceCents
	if req.IsActive != nil {
		court.IsActive = *req.IsActive
	}
	if err := h.CourtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		if strings.Contains(err.Error(), "1062") {
			return c.JSON(http.StatusConflict, echo.Map{"error": "court name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, court)
}

// DeleteCourt handles DELETE /v1/admin/courts/:id.  Courts are
// deactivated, not removed, so historical bookings keep their referent.
func (h *AdminHandler) DeleteCourt(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.CourtRepo.Deactivate(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not deactivate court"})
	}
	return c.NoContent(http.StatusNoContent)
}
