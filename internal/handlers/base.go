package handlers

import (
	"goblog/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash kinds. Notices survive exactly one redirect.
const (
	FlashNotice = "notice"
	FlashAlert  = "alert"
)

// Render injects request-scoped variables (current user, flash notices,
// path) and renders the named template. obj may come from the page cache,
// so every injected key is overwritten unconditionally.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	obj["CurrentUser"] = middleware.CurrentUser(c)
	obj["CurrentPath"] = c.Request.URL.Path

	session := sessions.Default(c)
	obj["Notice"] = firstFlash(session, FlashNotice)
	obj["Alert"] = firstFlash(session, FlashAlert)
	session.Save()

	c.HTML(code, name, obj)
}

// AddFlash queues a one-shot notice for the next rendered page.
func AddFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	session.Save()
}

func firstFlash(session sessions.Session, kind string) string {
	flashes := session.Flashes(kind)
	if len(flashes) == 0 {
		return ""
	}
	if s, ok := flashes[0].(string); ok {
		return s
	}
	return ""
}

// RenderError shows the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}
