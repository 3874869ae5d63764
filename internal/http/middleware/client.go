package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"visuddha-service/internal/auth"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer"
	tokenQueryParam     = "token"
	clientContextKey    = "client_id"
)

// Client resolves the client session from a bearer token. Websocket clients
// that cannot set headers pass the token as a query parameter.
func Client(parser *auth.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "client token missing"})
			return
		}
		claims, err := parser.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid client token"})
			return
		}
		c.Set(clientContextKey, claims.ClientID)
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader(authorizationHeader); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], bearerPrefix) {
			return "", false
		}
		token := strings.TrimSpace(parts[1])
		return token, token != ""
	}
	token := strings.TrimSpace(c.Query(tokenQueryParam))
	return token, token != ""
}

func MustClient(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(clientContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return id, true
}
