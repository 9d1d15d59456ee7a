package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hotelops/frontdesk_backend/internal/apperrors"
	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	portssvc "github.com/hotelops/frontdesk_backend/internal/core/ports/services"
	"github.com/hotelops/frontdesk_backend/internal/core/services"
	"github.com/hotelops/frontdesk_backend/internal/dto"
	"github.com/hotelops/frontdesk_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashHandler handles HTTP requests related to the cash ledger.
type cashHandler struct {
	cashService portssvc.CashSvcFacade
}

// newCashHandler creates a new cashHandler.
func newCashHandler(cs portssvc.CashSvcFacade) *cashHandler {
	return &cashHandler{
		cashService: cs,
	}
}

// RegisterCashRoutes registers routes related to the cash ledger.
func RegisterCashRoutes(rg *gin.RouterGroup, cashService portssvc.CashSvcFacade) {
	h := newCashHandler(cashService)

	cash := rg.Group("/cash")
	{
		cash.POST("/split", h.splitCash)
		cash.POST("/transactions", h.recordTransaction)
		cash.GET("/transactions", h.listTransactions)
		cash.GET("/rollup", h.getRollup)
	}
}

// splitCash godoc
// @Summary Split a cash amount between reception and the back office
// @Description Divides a received cash amount by the keep percentage and posts both ledger legs atomically
// @Tags cash
// @Accept  json
// @Produce  json
// @Param   split body dto.SplitCashRequest true "Split details"
// @Success 201 {object} dto.CashSplitResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to post cash split"
// @Security BearerAuth
// @Router /cash/split [post]
func (h *cashHandler) splitCash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SplitCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SplitCash", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to split cash",
		slog.Any("amount", req.Amount),
		slog.Any("keep_percent", req.KeepPercent),
		slog.String("source", req.Source),
	)

	split, err := h.cashService.SplitAndPost(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error splitting cash", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to post cash split", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post cash split"})
		}
		return
	}

	logger.Info("Cash split posted successfully",
		slog.Any("keep", split.KeepAmount), slog.Any("send", split.SendAmount))
	c.JSON(http.StatusCreated, dto.ToCashSplitResponse(split))
}

// recordTransaction godoc
// @Summary Record a manual cash transaction
// @Description Appends a single KEEP or SENT entry to the cash ledger
// @Tags cash
// @Accept  json
// @Produce  json
// @Param   transaction body dto.RecordCashTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CashTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /cash/transactions [post]
func (h *cashHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.cashService.RecordTransaction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	logger.Info("Cash transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToCashTransactionResponse(*txn))
}

// listTransactions godoc
// @Summary List cash transactions
// @Description Lists ledger entries in the requested window, newest first
// @Tags cash
// @Produce  json
// @Param   filter query string false "Date filter: today, week, month, year or date" default(today)
// @Param   date   query string false "Explicit date (YYYY-MM-DD), required when filter=date"
// @Param   source query string false "Narrow to one cash source"
// @Success 200 {array} dto.CashTransactionResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /cash/transactions [get]
func (h *cashHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := rollupFilterFromQuery(c)
	if err != nil {
		logger.Warn("Invalid transaction listing filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.cashService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListCashTransactionResponse(txns))
}

// getRollup godoc
// @Summary Get the cash rollup
// @Description Aggregates the ledger per source over the requested window, with grand totals
// @Tags cash
// @Produce  json
// @Param   filter query string false "Date filter: today, week, month, year or date" default(today)
// @Param   date   query string false "Explicit date (YYYY-MM-DD), required when filter=date"
// @Param   source query string false "Narrow to one cash source"
// @Success 200 {object} dto.CashRollupResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to build rollup"
// @Security BearerAuth
// @Router /cash/rollup [get]
func (h *cashHandler) getRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := rollupFilterFromQuery(c)
	if err != nil {
		logger.Warn("Invalid rollup filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rollup, err := h.cashService.Rollup(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build rollup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build rollup"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCashRollupResponse(rollup))
}

// rollupFilterFromQuery parses the shared filter/date/source query params.
func rollupFilterFromQuery(c *gin.Context) (portssvc.RollupFilter, error) {
	filter := portssvc.RollupFilter{
		Filter: domain.DateFilter(c.DefaultQuery("filter", string(domain.FilterToday))),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return filter, apperrors.NewValidationError("date must be formatted YYYY-MM-DD")
		}
		filter.Date = date
		filter.Filter = domain.FilterDate
	}

	if sourceStr := c.Query("source"); sourceStr != "" {
		source, err := services.ParseCashSource(sourceStr)
		if err != nil {
			return filter, err
		}
		filter.Source = source
	}

	return filter, nil
}
