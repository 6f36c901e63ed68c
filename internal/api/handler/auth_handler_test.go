package handler_test

import (
	"Amity/internal/api"
	"Amity/internal/api/handler"
	"Amity/internal/pkg/filedb"
	"Amity/internal/service"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := filedb.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	userRepo := filedb.NewUserRepo(store)
	postRepo := filedb.NewPostRepo(store)
	commentRepo := filedb.NewCommentRepo(store)
	likeRepo := filedb.NewPostLikeRepo(store)
	viewRepo := filedb.NewViewHistoryRepo(store)
	sessionRepo := filedb.NewLoginSessionRepo(store)

	authSvc := service.NewAuthService(userRepo, postRepo, sessionRepo)
	userSvc := service.NewUserService(userRepo)
	postSvc := service.NewPostService(postRepo, userRepo, commentRepo, likeRepo, viewRepo)
	actionSvc := service.NewPostActionService(postRepo, userRepo, commentRepo, likeRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authSvc),
		UserHandler:       handler.NewUserHandler(userSvc),
		PostHandler:       handler.NewPostHandler(postSvc),
		PostActionHandler: handler.NewPostActionHandler(actionSvc),
	}
	return api.SetupRouter(handlers, authSvc)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doForm(t *testing.T, r *gin.Engine, method, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func signupForm(email, nickname string) url.Values {
	password := base64.StdEncoding.EncodeToString([]byte("Abc123!@"))
	return url.Values{
		"email":           {email},
		"password":        {password},
		"passwordChecker": {password},
		"nickname":        {nickname},
	}
}

func TestSignupAndDuplicate(t *testing.T) {
	r := newTestRouter(t)

	w := doForm(t, r, http.MethodPost, "/api/v1/auth/signup", signupForm("a@b.com", "alice"), "")
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d, body = %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Code != 2001 {
		t.Fatalf("expected business code 2001, got %d", env.Code)
	}

	// 邮箱重复
	w = doForm(t, r, http.MethodPost, "/api/v1/auth/signup", signupForm("a@b.com", "other"), "")
	env = decodeEnvelope(t, w)
	if env.Code != 4009 {
		t.Fatalf("expected business code 4009, got %d", env.Code)
	}
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter(t)

	// 缺少必填字段
	w := doForm(t, r, http.MethodPost, "/api/v1/auth/signup", url.Values{"email": {"a@b.com"}}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}

	// 密码复杂度不足
	weak := base64.StdEncoding.EncodeToString([]byte("weakpass"))
	form := url.Values{
		"email":           {"a@b.com"},
		"password":        {weak},
		"passwordChecker": {weak},
		"nickname":        {"alice"},
	}
	w = doForm(t, r, http.MethodPost, "/api/v1/auth/signup", form, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", w.Code)
	}
}

func TestSigninAndSessionFlow(t *testing.T) {
	r := newTestRouter(t)
	doForm(t, r, http.MethodPost, "/api/v1/auth/signup", signupForm("a@b.com", "alice"), "")

	password := base64.StdEncoding.EncodeToString([]byte("Abc123!@"))
	w := doForm(t, r, http.MethodPost, "/api/v1/auth/signin",
		url.Values{"email": {"a@b.com"}, "password": {password}}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("signin status = %d, body = %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Code != 2000 {
		t.Fatalf("expected business code 2000, got %d", env.Code)
	}

	var sessionCookie string
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			sessionCookie = c.Name + "=" + c.Value
		}
	}
	if sessionCookie == "" {
		t.Fatal("signin did not set session cookie")
	}

	// 带会话访问受保护接口
	w = doForm(t, r, http.MethodGet, "/api/v1/users/me", nil, sessionCookie)
	if w.Code != http.StatusOK {
		t.Fatalf("users/me status = %d, body = %s", w.Code, w.Body.String())
	}

	// 不带会话则 401
	w = doForm(t, r, http.MethodGet, "/api/v1/users/me", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w.Code)
	}

	// 登出后会话失效
	w = doForm(t, r, http.MethodPost, "/api/v1/auth/logout", nil, sessionCookie)
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d", w.Code)
	}
	w = doForm(t, r, http.MethodGet, "/api/v1/users/me", nil, sessionCookie)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestSigninWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	doForm(t, r, http.MethodPost, "/api/v1/auth/signup", signupForm("a@b.com", "alice"), "")

	wrong := base64.StdEncoding.EncodeToString([]byte("Wrong99!a"))
	w := doForm(t, r, http.MethodPost, "/api/v1/auth/signin",
		url.Values{"email": {"a@b.com"}, "password": {wrong}}, "")
	env := decodeEnvelope(t, w)
	if env.Code != 4001 {
		t.Fatalf("expected business code 4001, got %d", env.Code)
	}
}

func TestCheckNicknameAvailability(t *testing.T) {
	r := newTestRouter(t)
	doForm(t, r, http.MethodPost, "/api/v1/auth/signup", signupForm("a@b.com", "alice"), "")

	w := doForm(t, r, http.MethodGet, "/api/v1/auth/check-nickname?nickname=alice", nil, "")
	env := decodeEnvelope(t, w)
	if env.Code != 4009 {
		t.Fatalf("expected 4009 for taken nickname, got %d", env.Code)
	}

	w = doForm(t, r, http.MethodGet, "/api/v1/auth/check-nickname?nickname=bob", nil, "")
	env = decodeEnvelope(t, w)
	if env.Code != 2000 {
		t.Fatalf("expected 2000 for free nickname, got %d", env.Code)
	}
}
