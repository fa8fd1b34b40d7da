package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nextgear/internal/store"
)

const sessionKey = "storefront.session"

// sessionMiddleware binds a store session for the request. Requests without
// initData get an unauthenticated session (reads still work); requests with
// initData that fails authentication are rejected outright rather than
// silently downgraded.
func sessionMiddleware(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := initDataFromRequest(c)
		if raw == "" {
			c.Set(sessionKey, deps.Store.Bind(nil))
			c.Next()
			return
		}

		identity, err := deps.Resolver.Resolve(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid init data"})
			return
		}
		c.Set(sessionKey, deps.Store.Bind(identity))
		c.Next()
	}
}

// initDataFromRequest accepts the Mini App convention "Authorization: tma
// <initData>" and the plain X-Telegram-Init-Data header.
func initDataFromRequest(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if raw, ok := strings.CutPrefix(auth, "tma "); ok {
			return raw
		}
	}
	return c.GetHeader("X-Telegram-Init-Data")
}

func requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentSession(c).Identity() == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *store.Session {
	return c.MustGet(sessionKey).(*store.Session)
}
