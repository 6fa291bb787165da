package handlers

import (
	"errors"
	"net/http"

	"goblog/internal/forms"
	"goblog/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Log in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		Render(c, http.StatusBadRequest, "auth/login.html", gin.H{
			"Title":  "Log in",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := services.AuthenticateUser(form.Username, form.Password)
	if err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Log in",
			"Form":  form,
			"Error": "Invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/posts")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Register"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := services.RegisterUser(form.Username, form.Password)
	if err != nil {
		status := http.StatusInternalServerError
		errs := gin.H{
			"Title": "Register",
			"Form":  form,
			"Error": "Registration failed",
		}
		if errors.Is(err, services.ErrUsernameTaken) {
			status = http.StatusConflict
			errs["Errors"] = map[string]string{"username": "Username already taken"}
			delete(errs, "Error")
		}
		Render(c, status, "auth/register.html", errs)
		return
	}

	// Log the new user in right away
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/posts")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
