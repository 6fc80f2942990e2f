package handler

import (
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/pkg/serverutils"
	"techmart-be/internal/service"
	internalWS "techmart-be/internal/websocket"
	"techmart-be/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type LiveFeedHandler struct {
	hub       *internalWS.Hub
	publisher service.IPublisherService
	logger    logger.ILogger
}

func NewLiveFeedHandler(hub *internalWS.Hub, publisher service.IPublisherService, log logger.ILogger) *LiveFeedHandler {
	return &LiveFeedHandler{
		hub:       hub,
		publisher: publisher,
		logger:    log,
	}
}

func (h *LiveFeedHandler) RegisterRoutes(r fiber.Router, sessionMiddleware, adminMiddleware fiber.Handler) {
	r.Get("/ws", sessionMiddleware, h.ServeSession)

	admin := r.Group("/admin")
	admin.Get("/ws", adminMiddleware, h.ServeAdmin)
	admin.Post("/live-feed/test", adminMiddleware, h.TriggerTestEvent)
}

// ServeSession streams the events of the caller's own session.
func (h *LiveFeedHandler) ServeSession(c *fiber.Ctx) error {
	sess := serverutils.CurrentSession(c)
	if sess == nil {
		return fiber.ErrUnauthorized
	}
	return h.upgrade(c, internalWS.SessionChannel(sess.ID))
}

// ServeAdmin streams every storefront event.
func (h *LiveFeedHandler) ServeAdmin(c *fiber.Ctx) error {
	return h.upgrade(c, internalWS.AdminChannel)
}

func (h *LiveFeedHandler) upgrade(c *fiber.Ctx, channel string) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("LiveFeed", "Starting WebSocket session", map[string]interface{}{"channel": channel})
		internalWS.ServeWs(h.hub, conn, channel)
		h.logger.Info("LiveFeed", "WebSocket session ended", map[string]interface{}{"channel": channel})
	})(c)
}

// TriggerTestEvent pushes a synthetic event through the bus so an admin can
// check the feed end to end.
func (h *LiveFeedHandler) TriggerTestEvent(c *fiber.Ctx) error {
	type request struct {
		Type    string                 `json:"type"`
		Payload map[string]interface{} `json:"payload"`
	}
	var req request
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if req.Type == "" {
		req.Type = "TEST_EVENT"
	}
	if req.Payload == nil {
		req.Payload = map[string]interface{}{}
	}

	if err := h.publisher.Publish(c.UserContext(), events.New(req.Type, req.Payload)); err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse("Event published", fiber.Map{"type": req.Type}))
}
