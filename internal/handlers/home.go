package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	Render(c, http.StatusOK, "home.html", gin.H{"Title": "Home"})
}
