package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"visuddha-service/internal/auth"
	"visuddha-service/internal/http/middleware"
	"visuddha-service/internal/service"
	"visuddha-service/internal/socket"
)

type Handler struct {
	appService *service.AppService
	issuer     *auth.Issuer
	hub        *socket.Hub
	log        zerolog.Logger
}

func NewHandler(
	appService *service.AppService,
	issuer *auth.Issuer,
	hub *socket.Hub,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		appService: appService,
		issuer:     issuer,
		hub:        hub,
		log:        log,
	}
}

func (h *Handler) openClient(c *gin.Context) {
	session, screen, err := h.appService.OpenClient(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.issuer.Issue(session.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{
		"client_id": session.ID,
		"token":     token,
		"screen":    screen,
	}))
}

func (h *Handler) getScreen(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	screen, err := h.appService.Screen(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(screen))
}

func (h *Handler) navigate(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	var req struct {
		View string `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	screen, err := h.appService.Navigate(c.Request.Context(), clientID, strings.TrimSpace(req.View))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(screen))
}

func (h *Handler) back(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	screen, err := h.appService.Back(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(screen))
}

func (h *Handler) listRoutes(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	routes, err := h.appService.Routes(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": routes}))
}

func (h *Handler) listHistory(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	entries, err := h.appService.History(c.Request.Context(), clientID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": entries}))
}

func (h *Handler) getSession(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	user, err := h.appService.CurrentUser(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"user": user}))
}

func (h *Handler) login(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	var req struct {
		RoleType string `json:"role_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	screen, err := h.appService.Login(c.Request.Context(), clientID, req.RoleType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(screen))
}

func (h *Handler) logout(c *gin.Context) {
	clientID, ok := middleware.MustClient(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("client missing"))
		return
	}

	screen, err := h.appService.Logout(c.Request.Context(), clientID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(screen))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(service.ErrNotFound.Error()))
	case errors.Is(err, service.ErrSessionPending):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrLoginFailed):
		c.JSON(http.StatusBadGateway, errorResponse(service.ErrLoginFailed.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

type responseEnvelope struct {
	Data interface{} `json:"data"`
}

func successResponse(data interface{}) responseEnvelope {
	return responseEnvelope{Data: data}
}

func errorResponse(msg string) gin.H {
	return gin.H{"error": msg}
}
