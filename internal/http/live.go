package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"visuddha-service/internal/http/middleware"
	"visuddha-service/internal/simulation"
)

// pongWait bounds the silence allowed from a live client.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) live(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	channel := c.Param("channel")
	view, ok := simulation.ChannelView(channel)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse("unknown live channel"))
		return
	}

	decision, err := h.appService.Authorize(c.Request.Context(), clientID, view)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !decision.Allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied", "denial": decision.Denial})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Str("channel", channel).Msg("websocket upgrade failed")
		return
	}

	h.hub.Register(channel, conn)
	defer func() {
		h.hub.Unregister(channel, conn)
		conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn().Err(err).Str("client_id", clientID.String()).Msg("live connection closed")
			}
			return
		}
	}
}
