// README: Route summary handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"urnav/internal/modules/route"
	"urnav/internal/types"
)

type RouteHandler struct{}

func NewRouteHandler() *RouteHandler {
	return &RouteHandler{}
}

type optimizeReq struct {
	Stops []types.Point `json:"stops"`
}

// Optimize handles POST /api/routes/optimize: walking distance and time over
// the stops in the given order.
func (h *RouteHandler) Optimize(c *gin.Context) {
	var req optimizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Stops == nil {
		req.Stops = []types.Point{}
	}
	summary := route.Summarize(req.Stops)
	writeJSON(c, http.StatusOK, gin.H{
		"distance_km": summary.DistanceKm,
		"eta_min":     summary.ETAMinutes,
		"stops":       req.Stops,
	})
}
