package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash categories shown by the templates.
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// Flash queues a one-shot message under the given category.
func Flash(c *gin.Context, category, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(message, category)
	sess.Save()
}

// TakeFlashes drains and returns the queued messages for a category.
func TakeFlashes(c *gin.Context, category string) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes(category)
	sess.Save()
	var out []string
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
