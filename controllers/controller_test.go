package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blogapi/controllers"
	"blogapi/handlers"
	"blogapi/models"
	"blogapi/routes"
	"blogapi/services"
	"blogapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Group{}, &models.Post{}))

	feedService := services.NewFeedService()

	r := gin.New()
	routes.SetupRoutes(r,
		controllers.NewPostController(db, feedService),
		controllers.NewGroupController(db),
		controllers.NewAuthController(db),
		handlers.NewFeedHandler(feedService),
	)

	return r, db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
		Password: "secret123",
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)

	return user
}

func createPost(t *testing.T, db *gorm.DB, text string, authorID uint, groupID *uint) *models.Post {
	t.Helper()

	post := &models.Post{
		Text:     text,
		PubDate:  time.Now(),
		AuthorID: authorID,
		GroupID:  groupID,
	}
	require.NoError(t, db.Create(post).Error)

	return post
}

func authToken(t *testing.T, userID uint) string {
	t.Helper()

	token, err := utils.GenerateJWT(userID)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r *gin.Engine, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type pageResponse struct {
	Data struct {
		Items      []models.Post `json:"items"`
		Number     int           `json:"number"`
		Total      int64         `json:"total"`
		TotalPages int           `json:"total_pages"`
	} `json:"data"`
	Group  *models.Group `json:"group"`
	Author *models.User  `json:"author"`
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) pageResponse {
	t.Helper()

	var resp pageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
