package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userKey = "username"

// Identity is the authenticated caller for one request. It is built by
// a Verifier and carried in the request context, never in a global.
type Identity struct {
	Username string
}

// Verifier resolves the current request to an identity. The cookie
// implementation is the default; tests plug in their own.
type Verifier interface {
	Identify(c *gin.Context) (Identity, bool)
}

// CookieVerifier reads the identity from the session cookie.
type CookieVerifier struct{}

func NewCookieVerifier() *CookieVerifier {
	return &CookieVerifier{}
}

func (CookieVerifier) Identify(c *gin.Context) (Identity, bool) {
	sess := sessions.Default(c)
	username, ok := sess.Get(userKey).(string)
	if !ok || username == "" {
		return Identity{}, false
	}
	return Identity{Username: username}, true
}

// SetUser stores the username in the session, logging the caller in.
func SetUser(c *gin.Context, username string) {
	sess := sessions.Default(c)
	sess.Set(userKey, username)
	sess.Save()
}

// Clear removes the identity from the session.
func Clear(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete(userKey)
	sess.Save()
}
