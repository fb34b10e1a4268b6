// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"urnav/internal/http/handlers"
	"urnav/internal/http/middleware"
	"urnav/internal/modules/chat"
	"urnav/internal/modules/planner"
)

func NewRouter(
	plannerService *planner.Service,
	chatService *chat.Handler,
	chatStore *chat.Store,
	finder handlers.PlaceFinder,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	plannerHandler := handlers.NewPlannerHandler(plannerService)
	r.POST("/api/modes/plan-day", plannerHandler.PlanDay)
	r.POST("/api/modes/plan-day/complete", plannerHandler.Complete)
	r.GET("/api/modes/plan-day/status", plannerHandler.Status)

	modesHandler := handlers.NewModesHandler(finder)
	r.GET("/api/modes/free-places", modesHandler.FreePlaces)
	r.GET("/api/modes/explorer", modesHandler.Explorer)
	r.POST("/api/modes/meet-friend", modesHandler.MeetFriend)

	routeHandler := handlers.NewRouteHandler()
	r.POST("/api/routes/optimize", routeHandler.Optimize)

	chatHandler := handlers.NewChatHandler(chatService, chatStore)
	r.POST("/api/chat", chatHandler.Message)
	r.GET("/api/chat/user/:id", chatHandler.UserInfo)
	r.DELETE("/api/chat/user/:id", chatHandler.ClearConversation)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
