package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/dto"
	"github.com/fintrack/fintrack_backend/internal/middleware"
)

// summaryHandler handles HTTP requests for the period summary view.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

// registerSummaryRoutes registers the summary route.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := &summaryHandler{summaryService: summaryService}
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get the period summary
// @Description Aggregates transactions over a budget period: totals, per-category breakdowns, daily balance and the reserved future total.
// @Tags summary
// @Produce json
// @Param month query string false "Period selector (YYYY-MM); omit for all time"
// @Param start_day query int false "Period start day override (1-31)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	month, startDay, err := periodQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.summaryService.GetSummary(c.Request.Context(), userID, month, startDay)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to build summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}
