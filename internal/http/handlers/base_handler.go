// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"urnav/internal/modules/itinerary"
	"urnav/internal/modules/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrNoTasks):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
