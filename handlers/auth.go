package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/repository"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/session"
)

// ShowLogin renders the login form. GET /login
func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login checks the submitted credentials. POST /login
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := deps.Store.FindUser(username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			render(c, http.StatusOK, "login.html", gin.H{
				"errors": []string{"Invalid login details"},
			})
			return
		}
		render(c, http.StatusInternalServerError, "login.html", gin.H{
			"errors": []string{"Something went wrong, try again"},
		})
		return
	}

	session.SetUser(c, user.Username)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister renders the registration form. GET /register
func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register creates the user and logs them in immediately. POST /register
func Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := deps.Store.CreateUser(username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			render(c, http.StatusOK, "register.html", gin.H{
				"errors": []string{"Username already taken"},
			})
			return
		}
		render(c, http.StatusInternalServerError, "register.html", gin.H{
			"errors": []string{"Something went wrong, try again"},
		})
		return
	}

	session.SetUser(c, user.Username)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session. GET /logout
func Logout(c *gin.Context) {
	session.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
