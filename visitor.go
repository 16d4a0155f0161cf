// visitor.go - anonymous visitor identity for server-side preferences
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor_id"
	// context key holding the hashed visitor id
	visitorKey = "visitor"

	preferenceMaxAge = int(365 * 24 * time.Hour / time.Second)
)

// Hash the visitor id so the raw cookie value never reaches storage.
func hashVisitor(id, salt string) string {
	hash := sha256.New()
	hash.Write([]byte(salt + ":" + id))
	return hex.EncodeToString(hash.Sum(nil))[:32]
}

func skipVisitor(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/favicon") ||
		strings.HasSuffix(path, ".pdf") ||
		strings.HasSuffix(path, ".png") ||
		path == "/healthz"
}

// Assigns a visitor id when preferences live server-side. Visitors sending
// DNT get none and keep their preferences in cookies instead.
func (a *app) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.prefs == nil || skipVisitor(c.Request.URL.Path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, preferenceMaxAge, "/", "", a.cfg.CookieSecure, true)
		}
		c.Set(visitorKey, hashVisitor(id, a.cfg.VisitorSalt))
		c.Next()
	}
}

func visitorFrom(c *gin.Context) string {
	return c.GetString(visitorKey)
}
