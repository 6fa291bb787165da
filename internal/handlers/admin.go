package handlers

import (
	"net/http"

	"goblog/internal/db"
	"goblog/internal/models"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// adminColumn is one column of an admin listing: a header plus the function
// extracting that cell from a row. The column sets below are the whole
// configuration of the admin pages.
type adminColumn[T any] struct {
	Header string
	Value  func(T) string
}

var postColumns = []adminColumn[models.Post]{
	{"Title", func(p models.Post) string { return p.Title }},
	{"Author", func(p models.Post) string { return p.User.Username }},
	{"Created", func(p models.Post) string { return p.CreatedAt.Format("2006-01-02 15:04") }},
}

var commentColumns = []adminColumn[models.Comment]{
	{"Author", func(c models.Comment) string { return c.User.Username }},
	{"Post", func(c models.Comment) string { return c.Post.Title }},
	{"Created", func(c models.Comment) string { return c.CreatedAt.Format("2006-01-02 15:04") }},
}

func buildTable[T any](cols []adminColumn[T], items []T) (headers []string, rows [][]string) {
	headers = make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
	}
	rows = make([][]string, len(items))
	for i, item := range items {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = col.Value(item)
		}
		rows[i] = row
	}
	return headers, rows
}

func (h *AdminHandler) Posts(c *gin.Context) {
	var posts []models.Post
	db.DB.Preload("User").Order("created_at DESC").Find(&posts)

	headers, rows := buildTable(postColumns, posts)
	Render(c, http.StatusOK, "admin/list.html", gin.H{
		"Title":   "Posts",
		"Headers": headers,
		"Rows":    rows,
	})
}

func (h *AdminHandler) Comments(c *gin.Context) {
	var comments []models.Comment
	db.DB.Preload("User").Preload("Post").Order("created_at DESC").Find(&comments)

	headers, rows := buildTable(commentColumns, comments)
	Render(c, http.StatusOK, "admin/list.html", gin.H{
		"Title":   "Comments",
		"Headers": headers,
		"Rows":    rows,
	})
}
