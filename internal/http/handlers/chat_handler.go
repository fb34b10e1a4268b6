// README: Conversational assistant handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"urnav/internal/modules/chat"
	"urnav/internal/types"
)

type ChatHandler struct {
	chat  *chat.Handler
	store *chat.Store
}

func NewChatHandler(h *chat.Handler, store *chat.Store) *ChatHandler {
	return &ChatHandler{chat: h, store: store}
}

type chatLocation struct {
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lon"`
	Name string   `json:"name"`
}

type chatReq struct {
	Message  string        `json:"message"`
	UserID   string        `json:"user_id"`
	Location *chatLocation `json:"location"`
}

// Message handles POST /api/chat. Anonymous callers get a generated user id
// so follow-up messages can keep their conversation context.
func (h *ChatHandler) Message(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}
	if req.Location == nil {
		writeError(c, http.StatusBadRequest, "location information is required")
		return
	}
	if req.Location.Lat == nil || req.Location.Lng == nil {
		writeError(c, http.StatusBadRequest, "invalid location coordinates")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = uuid.NewString()
	}

	loc := types.Point{Lat: *req.Location.Lat, Lng: *req.Location.Lng}
	reply := h.chat.HandleMessage(c.Request.Context(), types.ID(userID), req.Message, &loc, req.Location.Name)

	writeJSON(c, http.StatusOK, gin.H{
		"response":  reply,
		"user_id":   userID,
		"user_info": h.store.Info(types.ID(userID)),
	})
}

// UserInfo handles GET /api/chat/user/:id.
func (h *ChatHandler) UserInfo(c *gin.Context) {
	userID := c.Param("id")
	writeJSON(c, http.StatusOK, gin.H{
		"user_id":   userID,
		"user_info": h.store.Info(types.ID(userID)),
	})
}

// ClearConversation handles DELETE /api/chat/user/:id.
func (h *ChatHandler) ClearConversation(c *gin.Context) {
	userID := c.Param("id")
	h.store.Clear(types.ID(userID))
	writeJSON(c, http.StatusOK, gin.H{
		"message": "Conversation cleared successfully",
		"user_id": userID,
	})
}
