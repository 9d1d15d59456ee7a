package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hotelops/frontdesk_backend/internal/apperrors"
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portssvc "github.com/hotelops/frontdesk_backend/internal/core/ports/services"
	"github.com/hotelops/frontdesk_backend/internal/dto"
	"github.com/hotelops/frontdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// floorHandler handles HTTP requests for the live floor board.
type floorHandler struct {
	floorService portssvc.FloorSvcFacade
}

// newFloorHandler creates a new floorHandler.
func newFloorHandler(fs portssvc.FloorSvcFacade) *floorHandler {
	return &floorHandler{
		floorService: fs,
	}
}

// RegisterFloorRoutes registers routes related to the live floor board.
func RegisterFloorRoutes(rg *gin.RouterGroup, floorService portssvc.FloorSvcFacade) {
	h := newFloorHandler(floorService)

	floor := rg.Group("/floor")
	{
		floor.GET("/board", h.getBoard)
		floor.POST("/board/refresh", h.refreshBoard)
		floor.GET("/rooms/:unitID", h.getRoom)
		floor.GET("/tables/:unitID", h.getTable)
	}
}

// getBoard godoc
// @Summary Get the live floor board
// @Description Returns every room and table with its derived status, occupant details, elapsed time and running revenue
// @Tags floor
// @Produce  json
// @Success 200 {object} dto.FloorBoardResponse
// @Failure 500 {object} map[string]string "Failed to build floor board"
// @Security BearerAuth
// @Router /floor/board [get]
func (h *floorHandler) getBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	board, err := h.floorService.LiveBoard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build floor board", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build floor board"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFloorBoardResponse(board))
}

// refreshBoard godoc
// @Summary Force a floor board refresh
// @Description Bypasses the snapshot cache, refetches every upstream collection and returns the rebuilt board
// @Tags floor
// @Produce  json
// @Success 200 {object} dto.FloorBoardResponse
// @Failure 500 {object} map[string]string "Failed to refresh floor board"
// @Security BearerAuth
// @Router /floor/board/refresh [post]
func (h *floorHandler) refreshBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to force refresh the floor board")

	board, err := h.floorService.Refresh(c.Request.Context())
	if err != nil {
		logger.Error("Failed to refresh floor board", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh floor board"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFloorBoardResponse(board))
}

// getRoom godoc
// @Summary Get one room's reconciled state
// @Tags floor
// @Produce  json
// @Param   unitID path string true "Room number"
// @Success 200 {object} dto.UnitViewResponse
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Failed to build room view"
// @Security BearerAuth
// @Router /floor/rooms/{unitID} [get]
func (h *floorHandler) getRoom(c *gin.Context) {
	h.getUnit(c, domain.UnitRoom)
}

// getTable godoc
// @Summary Get one table's reconciled state
// @Tags floor
// @Produce  json
// @Param   unitID path string true "Table number"
// @Success 200 {object} dto.UnitViewResponse
// @Failure 404 {object} map[string]string "Table not found"
// @Failure 500 {object} map[string]string "Failed to build table view"
// @Security BearerAuth
// @Router /floor/tables/{unitID} [get]
func (h *floorHandler) getTable(c *gin.Context) {
	h.getUnit(c, domain.UnitTable)
}

func (h *floorHandler) getUnit(c *gin.Context, kind domain.UnitKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	unitID := c.Param("unitID")

	view, err := h.floorService.UnitView(c.Request.Context(), kind, unitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			logger.Error("Failed to build unit view",
				slog.String("kind", string(kind)), slog.String("unit_id", unitID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build unit view"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitViewResponse(view))
}
