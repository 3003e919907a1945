package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/services"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/session"
)

// ShowDashboard renders the question/upload form. GET /dashboard
func ShowDashboard(c *gin.Context) {
	render(c, http.StatusOK, "dashboard.html", gin.H{
		"username": CurrentIdentity(c).Username,
		"answer":   "",
	})
}

// SubmitDashboard runs exactly one of the two flows per POST: the
// completion flow when a question is present, otherwise the upload flow
// when a file is attached. Neither present means a plain re-render.
// POST /dashboard
func SubmitDashboard(c *gin.Context) {
	identity := CurrentIdentity(c)
	answer := ""

	question := c.PostForm("question")
	if question != "" {
		exam := c.PostForm("exam")
		action := c.PostForm("action")

		prompt := services.ComposePrompt(question, exam, action)
		text, err := deps.Completer.Complete(c.Request.Context(), prompt)
		if err != nil {
			// Failed upstream calls are not retried; render with an
			// empty answer and the raw error as a flash.
			session.Flash(c, session.FlashError, "Error: "+err.Error())
		} else {
			answer = text
			// The original question is persisted, not the composed prompt.
			if _, err := deps.Store.AppendHistory(identity.Username, question, answer); err != nil {
				session.Flash(c, session.FlashError, "Error: "+err.Error())
			}
		}
	} else if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			session.Flash(c, session.FlashError, "Unsupported file type")
		} else {
			defer src.Close()
			name, err := deps.Uploader.Save(file.Filename, src)
			if err != nil {
				if errors.Is(err, services.ErrUnsupportedFile) {
					session.Flash(c, session.FlashError, "Unsupported file type")
				} else {
					session.Flash(c, session.FlashError, "Error: "+err.Error())
				}
			} else {
				deps.Store.RecordUpload(identity.Username, name, file.Size)
				session.Flash(c, session.FlashSuccess, "Uploaded file: "+name)
			}
		}
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"username": identity.Username,
		"answer":   answer,
	})
}
