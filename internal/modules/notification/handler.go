package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hotelhub/internal/logger"
	"hotelhub/internal/middleware"
	"hotelhub/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/notifications", h.Subscribe)
}

// Subscribe upgrades the connection and parks it in the hub until the
// client goes away.
func (h *Handler) Subscribe(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Get().Warn("websocket upgrade failed", "error", err, "user_id", userID)
		return
	}

	h.hub.Register(userID, conn)

	go func() {
		defer h.hub.Unregister(userID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
