package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/padelhq/padel-reservation/internal/config"
	"github.com/padelhq/padel-reservation/internal/model"
	"github.com/padelhq/padel-reservation/internal/repository"
)

// BlockedSlotHandler lets club staff create, list and remove blocking
// intervals.  A blocking interval hides its window from players on every
// availability computation; it wins over any confirmed booking that
// overlaps it.
type BlockedSlotHandler struct {
	Cfg         config.Config
	CourtRepo   *repository.CourtRepo
	BlockedRepo *repository.BlockedSlotRepo
}

// NewBlockedSlotHandler constructs a BlockedSlotHandler and panics if any
// dependency is nil.
func NewBlockedSlotHandler(cfg config.Config, courtRepo *repository.CourtRepo, blockedRepo *repository.BlockedSlotRepo) *BlockedSlotHandler {
	if courtRepo == nil || blockedRepo == nil {
		panic("nil repository passed to NewBlockedSlotHandler")
	}
	return &BlockedSlotHandler{Cfg: cfg, CourtRepo: courtRepo, BlockedRepo: blockedRepo}
}

// createBlockedReq is the JSON body of POST /v1/admin/blocked-slots.
// CourtID nil blocks every court for the window.
type createBlockedReq struct {
	CourtID *uint64   `json:"court_id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Reason  *string   `json:"reason"`
}

// CreateBlockedSlot handles POST /v1/admin/blocked-slots.
func (h *BlockedSlotHandler) CreateBlockedSlot(c echo.Context) error {
	var req createBlockedReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_at and end_at are required"})
	}
	if !req.EndAt.After(req.StartAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_at must be after start_at"})
	}
	if req.Reason != nil {
		trimmed := strings.TrimSpace(*req.Reason)
		if trimmed == "" {
			req.Reason = nil
		} else {
			req.Reason = &trimmed
		}
	}

	ctx := c.Request().Context()
	if req.CourtID != nil {
		if _, err := h.CourtRepo.GetByID(ctx, *req.CourtID); err != nil {
			if errors.Is(err, repository.ErrCourtNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	bs := &model.BlockedSlot{
		CourtID: req.CourtID,
		StartAt: req.StartAt.UTC(),
		EndAt:   req.EndAt.UTC(),
		Reason:  req.Reason,
	}
	if err := h.BlockedRepo.Create(ctx, bs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create blocked slot"})
	}
	return c.JSON(http.StatusCreated, bs)
}

// ListBlockedSlots handles GET /v1/admin/blocked-slots?date=YYYY-MM-DD
// and returns the blocking intervals of one business day.  The date
// defaults to today in the business timezone.
func (h *BlockedSlotHandler) ListBlockedSlots(c echo.Context) error {
	now := time.Now().In(h.Cfg.Location)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.Cfg.Location)
	if raw := strings.TrimSpace(c.QueryParam("date")); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.Cfg.Location)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		}
		day = parsed
	}

	blocked, err := h.BlockedRepo.ListBetween(c.Request().Context(), day.UTC(), day.AddDate(0, 0, 1).UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": blocked})
}

// DeleteBlockedSlot handles DELETE /v1/admin/blocked-slots/:id.
func (h *BlockedSlotHandler) DeleteBlockedSlot(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.BlockedRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrBlockedSlotNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "blocked slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete blocked slot"})
	}
	return c.NoContent(http.StatusNoContent)
}
