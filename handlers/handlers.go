package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/repository"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/services"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/session"
)

// Deps are the collaborators the handlers call into. Configure must run
// before routes are served; tests wire in fakes here.
type Deps struct {
	Store     repository.Store
	Completer services.Completer
	Uploader  *services.Uploader
	Verifier  session.Verifier
}

var deps Deps

// Configure injects the handler dependencies.
func Configure(d Deps) {
	deps = d
}

// render draws a template with any pending flash messages merged in.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["errors"]; !ok {
		data["errors"] = session.TakeFlashes(c, session.FlashError)
	}
	data["successes"] = session.TakeFlashes(c, session.FlashSuccess)
	c.HTML(status, name, data)
}
