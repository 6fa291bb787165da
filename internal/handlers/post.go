package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"goblog/internal/db"
	"goblog/internal/forms"
	"goblog/internal/middleware"
	"goblog/internal/models"
	"goblog/internal/utils"

	"github.com/gin-gonic/gin"
)

const postsPerPage = 5

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillCommentCounts batch-fills the comment count of each listed post.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type CountResult struct {
		PostID uint
		Count  int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

func listCacheKey(page int) string {
	return fmt.Sprintf("post:list:page:%d", page)
}

func detailCacheKey(postID uint) string {
	return fmt.Sprintf("post:detail:%d", postID)
}

// List shows all posts, five per page. A missing or garbled page parameter
// falls back to the first page, one past the end to the last page.
func (h *PostHandler) List(c *gin.Context) {
	var total int64
	db.DB.Model(&models.Post{}).Count(&total)

	pg := utils.Paginate(c.Query("page"), postsPerPage, total)

	cacheKey := listCacheKey(pg.Page)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if hData, ok := cached.(gin.H); ok {
			Render(c, http.StatusOK, "post/list.html", hData)
			return
		}
	}

	// No explicit ordering: the list keeps the table's natural order.
	var posts []models.Post
	db.DB.Preload("User").
		Limit(pg.PerPage).
		Offset(pg.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	renderData := gin.H{
		"Title":      "Posts",
		"Posts":      posts,
		"Pagination": pg,
	}

	utils.GetCache().Set(cacheKey, renderData, 1*time.Minute)

	Render(c, http.StatusOK, "post/list.html", renderData)
}

// CreateCommentFromList handles the comment box on the list page. The target
// post comes from the post_id form field.
func (h *PostHandler) CreateCommentFromList(c *gin.Context) {
	h.createComment(c, c.PostForm("post_id"))
}

// CreateComment handles the comment box on the detail page.
func (h *PostHandler) CreateComment(c *gin.Context) {
	h.createComment(c, c.Param("id"))
}

// createComment persists a comment on the given post. Invalid input is
// discarded: the user gets a notice and the detail page, never a re-filled
// form.
func (h *PostHandler) createComment(c *gin.Context, postID string) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var form forms.CommentForm
	c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		AddFlash(c, FlashAlert, "Your comment could not be saved.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   form.Text,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save comment")
		return
	}

	utils.GetCache().Delete(detailCacheKey(post.ID))
	utils.GetCache().Delete(listCacheKey(1))

	AddFlash(c, FlashNotice, "Comment added.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// renderedComment pairs a comment with its sanitized HTML body.
type renderedComment struct {
	models.Comment
	TextHTML template.HTML
}

func (h *PostHandler) Detail(c *gin.Context) {
	id := c.Param("id")

	var post models.Post
	if err := db.DB.Preload("User").First(&post, "id = ?", id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	cacheKey := detailCacheKey(post.ID)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if hData, ok := cached.(gin.H); ok {
			Render(c, http.StatusOK, "post/detail.html", hData)
			return
		}
	}

	var comments []models.Comment
	db.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments)

	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	renderData := gin.H{
		"Title":       post.Title,
		"Post":        post,
		"PostContent": utils.RenderMarkdown(post.Content),
		"Comments":    rendered,
	}

	utils.GetCache().Set(cacheKey, renderData, 5*time.Minute)

	Render(c, http.StatusOK, "post/detail.html", renderData)
}

// ShowNew renders the blank post form. Also mounted at /posts/:id/edit: that
// alias has always produced a fresh create form rather than loading the post
// in the URL, and is kept for URL compatibility.
func (h *PostHandler) ShowNew(c *gin.Context) {
	Render(c, http.StatusOK, "post/form.html", gin.H{"Title": "New post"})
}

// CreateNew persists a new post for the session user. It never updates an
// existing post, whichever route it was reached through.
func (h *PostHandler) CreateNew(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form forms.PostForm
	c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		Render(c, http.StatusBadRequest, "post/form.html", gin.H{
			"Title":  "New post",
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	post := models.Post{UserID: user.ID}
	form.Apply(&post)

	if err := db.DB.Create(&post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "post/form.html", gin.H{
			"Title": "New post",
			"Form":  form,
			"Error": "Could not save post",
		})
		return
	}

	utils.GetCache().Delete(listCacheKey(1))

	c.Redirect(http.StatusFound, "/posts")
}

// findOwnedPost fetches a post by id and author in one query, so a missing
// post and someone else's post are both "not found".
func findOwnedPost(postID string, userID uint) (*models.Post, error) {
	var post models.Post
	err := db.DB.Where("id = ? AND user_id = ?", postID, userID).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	post, err := findOwnedPost(c.Param("id"), user.ID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	Render(c, http.StatusOK, "post/edit.html", gin.H{
		"Title": "Edit post",
		"Post":  post,
		"Form":  forms.PostForm{Title: post.Title, Content: post.Content},
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	post, err := findOwnedPost(c.Param("id"), user.ID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	var form forms.PostForm
	c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) > 0 {
		// Invalid input stays on the form for correction
		Render(c, http.StatusBadRequest, "post/edit.html", gin.H{
			"Title":  "Edit post",
			"Post":   post,
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	form.Apply(post)
	if err := db.DB.Save(post).Error; err != nil {
		Render(c, http.StatusInternalServerError, "post/edit.html", gin.H{
			"Title": "Edit post",
			"Post":  post,
			"Form":  form,
			"Error": "Could not save post",
		})
		return
	}

	utils.GetCache().Delete(detailCacheKey(post.ID))
	utils.GetCache().Delete(listCacheKey(1))

	AddFlash(c, FlashNotice, "Post updated.")
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.ID))
}

// Delete removes the post on any request to its route, comments cascade away
// with it. There is no confirmation step.
func (h *PostHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	post, err := findOwnedPost(c.Param("id"), user.ID)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := db.DB.Delete(post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete post")
		return
	}

	utils.GetCache().Delete(detailCacheKey(post.ID))
	utils.GetCache().Delete(listCacheKey(1))

	AddFlash(c, FlashNotice, "Post deleted.")
	c.Redirect(http.StatusFound, "/posts")
}
