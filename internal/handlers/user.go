package handlers

import (
	"net/http"

	"goblog/internal/db"
	"goblog/internal/middleware"
	"goblog/internal/models"
	"goblog/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile - public user page /u/:id
func (h *UserHandler) Profile(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	var profile models.Profile
	db.DB.Where("user_id = ?", user.ID).First(&profile)

	var posts []models.Post
	db.DB.Preload("User").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(20).
		Find(&posts)
	fillCommentCounts(posts)

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":   user.Username,
		"User":    user,
		"Profile": profile,
		"Posts":   posts,
	})
}

// ShowSettings renders the profile settings form of the session user.
func (h *UserHandler) ShowSettings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var profile models.Profile
	db.DB.Where("user_id = ?", user.ID).First(&profile)

	Render(c, http.StatusOK, "user/settings.html", gin.H{
		"Title":   "Settings",
		"Profile": profile,
	})
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	bio := c.PostForm("bio")
	if err := services.UpdateBio(user.ID, bio); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save settings")
		return
	}

	AddFlash(c, FlashNotice, "Settings saved.")
	c.Redirect(http.StatusFound, "/settings")
}
