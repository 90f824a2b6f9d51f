package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/freshkart/freshkart-backend/internal/app/service"
	apperrors "github.com/freshkart/freshkart-backend/internal/errors"
	"github.com/freshkart/freshkart-backend/internal/middleware"
	ws "github.com/freshkart/freshkart-backend/internal/websocket"
)

// CommunicationController is the internal Admin/Administrator chat: stored
// message history plus a websocket feed of new messages.
type CommunicationController struct {
	chatService    service.ChatService
	hub            *ws.Hub
	allowedOrigins map[string]bool
}

func NewCommunicationController(chatService service.ChatService, hub *ws.Hub, allowedOrigins []string) *CommunicationController {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = true
	}
	return &CommunicationController{
		chatService:    chatService,
		hub:            hub,
		allowedOrigins: origins,
	}
}

func (ctrl *CommunicationController) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return ctrl.allowedOrigins[r.Header.Get("Origin")]
		},
	}
}

// Messages returns the chat history inside the retention window
// GET /api/communication/messages
func (ctrl *CommunicationController) Messages(c *gin.Context) {
	messages, err := ctrl.chatService.List()
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list chat messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

type PostMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// PostMessage stores a chat message and broadcasts it to connected sessions.
// Sender name and role always come from the authenticated principal.
// POST /api/communication/messages
func (ctrl *CommunicationController) PostMessage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Message is required")
		return
	}

	sender, _ := middleware.GetPrincipalEmail(c)
	role, _ := middleware.GetPrincipalRole(c)

	message, err := ctrl.chatService.Post(sender, role, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Message is required")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "post chat message")
		return
	}

	if err := ctrl.hub.Broadcast(message); err != nil {
		log.Warn("Failed to broadcast chat message", map[string]interface{}{
			"message_id": message.ID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
	})
}

// WebSocket upgrades to the live chat feed. Auth middleware has already run;
// websocket clients pass the token as a query parameter.
// GET /api/communication/ws
func (ctrl *CommunicationController) WebSocket(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	principalID, ok := middleware.GetPrincipalID(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	upgrader := ctrl.upgrader()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket", err)
		return
	}

	client := &ws.Client{
		Hub:         ctrl.hub,
		Conn:        &ws.Conn{Conn: conn},
		PrincipalID: principalID,
		Send:        make(chan []byte, 256),
	}

	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	log.Info("Chat feed connected", map[string]interface{}{
		"principal_id": principalID,
	})
}
