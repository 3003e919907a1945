package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/session"
)

const identityKey = "identity"

// RequireSession gates protected routes. Unauthenticated requests are
// redirected to the login page and the handler never runs. On success
// the resolved identity is stored in the request context for
// CurrentIdentity.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := deps.Verifier.Identify(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the authenticated identity set by
// RequireSession. It is the sole authorization token for store filtering.
func CurrentIdentity(c *gin.Context) session.Identity {
	identity, _ := c.Get(identityKey)
	id, _ := identity.(session.Identity)
	return id
}
