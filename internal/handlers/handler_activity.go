package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/dto"
	"github.com/invoiceflow/backend/internal/middleware"
)

// activityHandler serves the activity feed.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

// registerActivityRoutes registers the activity feed route.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := newActivityHandler(activityService)

	activities := rg.Group("/activities")
	{
		activities.GET("", h.listActivities)
	}
}

// listActivities godoc
// @Summary List recent activities
// @Description Lists the logged-in user's most recent activity entries, newest first.
// @Tags activities
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {array} dto.ActivityResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// A missing or malformed limit falls back to the service default.
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	activities, err := h.activityService.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list activities", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityListResponse(activities))
}
