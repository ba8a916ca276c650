package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fingertrack/internal/middleware"
	"fingertrack/internal/models"
	"fingertrack/internal/realtime"
)

type NotificationHandler struct {
	webHub      *realtime.NotificationHub
	desktopHub  *realtime.NotificationHub
	broadcaster *realtime.Broadcaster
}

func NewNotificationHandler(webHub, desktopHub *realtime.NotificationHub, broadcaster *realtime.Broadcaster) *NotificationHandler {
	return &NotificationHandler{webHub: webHub, desktopHub: desktopHub, broadcaster: broadcaster}
}

// @Summary      Subscribe to company notifications over WebSocket
// @Description  Token goes in the query string because browser WebSocket clients cannot set headers
// @Tags         Notifications
// @Param        token     query  string  true   "JWT access token"
// @Param        audience  query  string  false  "web (default) or desktop"
// @Success      101
// @Failure      401  {object}  map[string]string
// @Router       /ws [get]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token query parameter required"})
		return
	}
	claims, err := middleware.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if claims.CompanyID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token carries no company"})
		return
	}

	hub := h.webHub
	if c.Query("audience") == "desktop" {
		hub = h.desktopHub
	}

	conn, err := realtime.Upgrade(c.Writer, c.Request)
	if err != nil {
		log.Printf("[ws][subscribe] upgrade failed company=%s err=%v", claims.CompanyID, err)
		return
	}

	hub.Subscribe(claims.CompanyID, conn)
	defer hub.Unsubscribe(claims.CompanyID, conn)

	// Blocks until the client disconnects. Inbound data is drained, not
	// interpreted.
	if err := conn.DiscardIncoming(); err != nil {
		log.Printf("[ws][subscribe] reader stopped company=%s err=%v", claims.CompanyID, err)
	}
}

// @Summary      Republish a notification to the company channels
// @Description  Bridge for trusted internal producers (fingerprint devices, desktop agents)
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Param        notification  body      models.Notification  true  "Notification"
// @Success      200           {object}  map[string]string
// @Failure      400           {object}  map[string]string
// @Router       /notify [post]
func (h *NotificationHandler) Notify(c *gin.Context) {
	var notification models.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if notification.IDEntreprise == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idEntreprise required"})
		return
	}

	h.broadcaster.Publish(notification.IDEntreprise.String(), "NOTIFICATION", notification)
	c.JSON(http.StatusOK, gin.H{"message": "Notification dispatched"})
}
