package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextViewerKey = "viewer_key"
	viewerCookieName = "jakduk_viewer"
	viewerCookieAge  = 60 * 60 * 24 * 365
)

// ViewerKeyMiddleware gives every client a stable anonymous identity used to
// deduplicate article view counts. The key is a plain uuid cookie; no
// server-side session backs it.
func ViewerKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(viewerCookieName)
		if err != nil || key == "" {
			key = uuid.NewString()
			c.SetCookie(viewerCookieName, key, viewerCookieAge, "/", "", false, true)
		}
		c.Set(ContextViewerKey, key)
		c.Next()
	}
}
