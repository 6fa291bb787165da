// Package forms holds one struct per user-facing input form. Each form is
// populated by gin's form binding and checked by its Validate method, which
// returns a field name -> message map; an empty map means the input is good.
// Mapping into the persisted models stays explicit in the handlers.
package forms

import (
	"strings"

	"goblog/internal/models"
)

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *LoginForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

type RegisterForm struct {
	Username  string `form:"username"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

func (f *RegisterForm) Validate() map[string]string {
	errs := make(map[string]string)
	username := strings.TrimSpace(f.Username)
	if username == "" {
		errs["username"] = "Username is required"
	} else if len(username) < 3 || len(username) > 30 {
		errs["username"] = "Username must be 3-30 characters"
	}
	if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if f.Password != f.Password2 {
		errs["password2"] = "Passwords do not match"
	}
	return errs
}

type PostForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

func (f *PostForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	} else if len(f.Title) > 255 {
		errs["title"] = "Title must be at most 255 characters"
	}
	if strings.TrimSpace(f.Content) == "" {
		errs["content"] = "Content is required"
	}
	return errs
}

// Apply copies the validated fields onto a post. Author and timestamps are
// never taken from the form.
func (f *PostForm) Apply(post *models.Post) {
	post.Title = f.Title
	post.Content = f.Content
}

type CommentForm struct {
	Text string `form:"text"`
}

func (f *CommentForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "Comment text is required"
	}
	return errs
}
