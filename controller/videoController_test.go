package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinay-goud/KLIP/dao"
	"github.com/vinay-goud/KLIP/middleware/jwt"
	uSrvImp "github.com/vinay-goud/KLIP/service/user/impl"
	vSrvImp "github.com/vinay-goud/KLIP/service/video/impl"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	require.NoError(t, dao.Connect("sqlite", dsn))
	jwt.Init("test-secret", time.Hour)

	userSrv := uSrvImp.NewUserService()
	videoSrv := vSrvImp.NewVideoService(vSrvImp.NewLikeService())
	videoCtl := NewVideoController(videoSrv)
	userCtl := NewUserController(userSrv)

	eng := gin.New()
	klipGrp := eng.Group("/klip")
	klipGrp.Use(ErrHandler)
	klipGrp.GET("/feed", videoCtl.Feed)

	videoGrp := klipGrp.Group("/videos")
	videoGrp.Use(jwt.AuthorizationMiddleware)
	videoGrp.POST("", videoCtl.Create)
	videoGrp.POST("/:video_id/like", videoCtl.ToggleLike)

	userGrp := klipGrp.Group("/users")
	userGrp.POST("/signup", userCtl.Signup)
	userGrp.POST("/login", userCtl.Login)
	userGrp.GET("/:user_id", userCtl.GetProfile)
	userGrp.GET("/:user_id/videos", videoCtl.ListUserVideos)
	userGrp.GET("/:user_id/likes", videoCtl.ListUserLikedVideos)
	return eng
}

func doJSON(t *testing.T, eng *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	eng.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func signupAndLogin(t *testing.T, eng *gin.Engine, name, email string) (userId, token string) {
	t.Helper()

	w, resp := doJSON(t, eng, http.MethodPost, "/klip/users/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	userId = resp["user"].(map[string]any)["id"].(string)

	w, resp = doJSON(t, eng, http.MethodPost, "/klip/users/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token = resp["token"].(string)
	return userId, token
}

func createVideo(t *testing.T, eng *gin.Engine, token, title string) string {
	t.Helper()
	w, resp := doJSON(t, eng, http.MethodPost, "/klip/videos", token, gin.H{
		"title": title,
		"url":   "https://cdn.example.com/" + title + ".mp4",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return resp["video"].(map[string]any)["id"].(string)
}

func TestSignupValidation(t *testing.T) {
	eng := setupRouter(t)

	w, _ := doJSON(t, eng, http.MethodPost, "/klip/users/signup", "", gin.H{
		"name":     "A",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	eng := setupRouter(t)
	signupAndLogin(t, eng, "Alice", "alice@example.com")

	w, _ := doJSON(t, eng, http.MethodPost, "/klip/users/signup", "", gin.H{
		"name":     "Another Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFeedLimitValidation(t *testing.T) {
	eng := setupRouter(t)

	for _, q := range []string{"limit=0", "limit=101", "limit=abc"} {
		w, _ := doJSON(t, eng, http.MethodGet, "/klip/feed?"+q, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}

	w, resp := doJSON(t, eng, http.MethodGet, "/klip/feed?limit=100", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp["items"])
	assert.NotContains(t, resp, "next_cursor")
}

func TestFeedPagination(t *testing.T) {
	eng := setupRouter(t)
	_, token := signupAndLogin(t, eng, "Alice", "alice@example.com")

	for i := 0; i < 3; i++ {
		createVideo(t, eng, token, fmt.Sprintf("clip-%d", i))
	}

	w, resp := doJSON(t, eng, http.MethodGet, "/klip/feed?limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp["items"].([]any)
	require.Len(t, items, 2)
	cursor := resp["next_cursor"].(string)
	require.NotEmpty(t, cursor)

	w, resp = doJSON(t, eng, http.MethodGet, "/klip/feed?limit=2&cursor="+cursor, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items = resp["items"].([]any)
	require.Len(t, items, 1)
	assert.NotContains(t, resp, "next_cursor")
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	eng := setupRouter(t)

	w, _ := doJSON(t, eng, http.MethodPost, "/klip/videos/some-id/like", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleLikeFlow(t *testing.T) {
	eng := setupRouter(t)
	_, ownerToken := signupAndLogin(t, eng, "Owner", "owner@example.com")
	_, fanToken := signupAndLogin(t, eng, "Fan", "fan@example.com")

	videoId := createVideo(t, eng, ownerToken, "clip")

	w, resp := doJSON(t, eng, http.MethodPost, "/klip/videos/"+videoId+"/like", fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, resp["is_liked"])

	// the fan's feed shows the flag and the incremented count
	w, resp = doJSON(t, eng, http.MethodGet, "/klip/feed", fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	item := resp["items"].([]any)[0].(map[string]any)
	assert.Equal(t, true, item["is_liked"])
	assert.EqualValues(t, 1, item["like_count"])

	// an anonymous feed shows the count only
	w, resp = doJSON(t, eng, http.MethodGet, "/klip/feed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	item = resp["items"].([]any)[0].(map[string]any)
	assert.Equal(t, false, item["is_liked"])
	assert.EqualValues(t, 1, item["like_count"])

	// second toggle flips back
	w, resp = doJSON(t, eng, http.MethodPost, "/klip/videos/"+videoId+"/like", fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["is_liked"])
}

func TestToggleLikeMissingVideo(t *testing.T) {
	eng := setupRouter(t)
	_, token := signupAndLogin(t, eng, "Fan", "fan@example.com")

	w, _ := doJSON(t, eng, http.MethodPost, "/klip/videos/no-such-video/like", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserProfileAndVideos(t *testing.T) {
	eng := setupRouter(t)
	userId, token := signupAndLogin(t, eng, "Alice", "alice@example.com")
	videoId := createVideo(t, eng, token, "clip")

	w, resp := doJSON(t, eng, http.MethodGet, "/klip/users/"+userId, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := resp["user"].(map[string]any)
	assert.Equal(t, "Alice", user["name"])
	assert.NotContains(t, user, "email")

	w, resp = doJSON(t, eng, http.MethodGet, "/klip/users/"+userId+"/videos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	videos := resp["videos"].([]any)
	require.Len(t, videos, 1)
	assert.Equal(t, videoId, videos[0].(map[string]any)["id"])

	w, _ = doJSON(t, eng, http.MethodGet, "/klip/users/no-such-user/videos", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateVideoValidation(t *testing.T) {
	eng := setupRouter(t)
	_, token := signupAndLogin(t, eng, "Alice", "alice@example.com")

	w, _ := doJSON(t, eng, http.MethodPost, "/klip/videos", token, gin.H{
		"title": "clip",
		"url":   "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
