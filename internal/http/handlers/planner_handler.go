// README: Day-planning handlers for plan/complete/status.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"urnav/internal/modules/planner"
	"urnav/internal/types"
)

// defaultOrigin is used when a plan request omits coordinates.
var defaultOrigin = types.Point{Lat: 26.9124, Lng: 75.7873}

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(svc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

type planDayReq struct {
	Tasks  []string     `json:"tasks"`
	Text   string       `json:"text"`
	Origin *types.Point `json:"origin"`
	UserID string       `json:"user_id"`
}

// PlanDay handles POST /api/modes/plan-day.
func (h *PlannerHandler) PlanDay(c *gin.Context) {
	var req planDayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	origin := defaultOrigin
	if req.Origin != nil {
		origin = *req.Origin
	}
	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}

	result, err := h.planner.PlanDay(c.Request.Context(), types.ID(userID), origin, req.Tasks, req.Text)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"origin": result.Origin,
		"tasks":  result.Tasks,
		"summary": gin.H{
			"distance_km":     result.Route.DistanceKm,
			"eta_min":         result.Route.ETAMinutes,
			"total_tasks":     result.Summary.TotalTasks,
			"pending_tasks":   result.Summary.PendingTasks,
			"completed_tasks": result.Summary.CompletedTasks,
		},
	})
}

type completeTaskReq struct {
	Task   string       `json:"task"`
	Origin *types.Point `json:"origin"`
	UserID string       `json:"user_id"`
}

// Complete handles POST /api/modes/plan-day/complete.
func (h *PlannerHandler) Complete(c *gin.Context) {
	var req completeTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Task == "" {
		writeError(c, http.StatusBadRequest, "task name is required")
		return
	}
	if req.Origin == nil {
		writeError(c, http.StatusBadRequest, "origin coordinates are required")
		return
	}
	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}

	sess, summary, err := h.planner.CompleteTask(types.ID(userID), *req.Origin, req.Task)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"success":         true,
		"message":         "Task '" + req.Task + "' marked as completed",
		"session_summary": summary,
		"updated_tasks":   sess.Tasks,
	})
}

// Status handles GET /api/modes/plan-day/status.
func (h *PlannerHandler) Status(c *gin.Context) {
	userID := c.Query("user_id")
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if userID == "" || errLat != nil || errLng != nil {
		writeError(c, http.StatusBadRequest, "user_id, lat and lng are required")
		return
	}

	tasks, summary := h.planner.Status(types.ID(userID), types.Point{Lat: lat, Lng: lng})

	writeJSON(c, http.StatusOK, gin.H{
		"session_summary": summary,
		"tasks":           tasks,
	})
}
