package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"goblog/internal/db"
	"goblog/internal/middleware"
	"goblog/internal/models"
	"goblog/internal/router"
	"goblog/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupApp wires a fresh in-memory database and a router with the real
// middleware and route table, but stub templates that print the render data
// in an assertable form.
func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.DB = gdb

	// Page cache is a process-wide singleton, never share it between tests
	utils.GetCache().Purge()

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("goblog_session", store))
	r.HTMLRender = testTemplates()
	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)
	return r
}

func testTemplates() multitemplate.Renderer {
	r := multitemplate.NewRenderer()
	r.AddFromString("home.html", "home")
	r.AddFromString("auth/login.html", "login{{range $k, $v := .Errors}}|{{$k}}:{{$v}}{{end}}{{with .Error}}|error:{{.}}{{end}}")
	r.AddFromString("auth/register.html", "register{{range $k, $v := .Errors}}|{{$k}}:{{$v}}{{end}}")
	r.AddFromString("post/list.html", "{{range .Posts}}[{{.ID}}:{{.Title}}]{{end}}|page={{.Pagination.Page}}/{{.Pagination.TotalPages}}")
	r.AddFromString("post/detail.html", "{{.Post.Title}}{{range .Comments}}<c>{{.Text}}</c>{{end}}|notice={{.Notice}}|alert={{.Alert}}")
	r.AddFromString("post/form.html", "form{{range $k, $v := .Errors}}|{{$k}}:{{$v}}{{end}}")
	r.AddFromString("post/edit.html", "edit:{{.Form.Title}}{{range $k, $v := .Errors}}|{{$k}}:{{$v}}{{end}}")
	r.AddFromString("user/profile.html", "profile:{{.User.Username}}|bio={{.Profile.Bio}}")
	r.AddFromString("user/settings.html", "settings|bio={{.Profile.Bio}}")
	r.AddFromString("admin/list.html", "admin:{{.Title}}|rows={{len .Rows}}")
	r.AddFromString("error.html", "error:{{.Error}}")
	return r
}

// client is a cookie-carrying test client, one per simulated browser.
type client struct {
	t       *testing.T
	app     *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, app *gin.Engine) *client {
	return &client{t: t, app: app, cookies: make(map[string]*http.Cookie)}
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	cl.app.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		cl.cookies[ck.Name] = ck
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, path, nil)
}

func (cl *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, path, form)
}

// register signs up a user and leaves the session cookie on the client.
func (cl *client) register(username string) *models.User {
	cl.t.Helper()

	w := cl.post("/register", url.Values{
		"username":  {username},
		"password":  {"secret123"},
		"password2": {"secret123"},
	})
	if w.Code != http.StatusFound {
		cl.t.Fatalf("register %s: code %d, body %s", username, w.Code, w.Body.String())
	}

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		cl.t.Fatalf("registered user %s not found: %v", username, err)
	}
	return &user
}

// createPost publishes a post as the client's session user.
func (cl *client) createPost(title, content string) *models.Post {
	cl.t.Helper()

	w := cl.post("/posts/new", url.Values{
		"title":   {title},
		"content": {content},
	})
	if w.Code != http.StatusFound {
		cl.t.Fatalf("create post %q: code %d, body %s", title, w.Code, w.Body.String())
	}

	var post models.Post
	if err := db.DB.Where("title = ?", title).Order("id DESC").First(&post).Error; err != nil {
		cl.t.Fatalf("created post %q not found: %v", title, err)
	}
	return &post
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func wantRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("code = %d, want 302 (body: %s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("redirect to %q, want %q", got, location)
	}
}
