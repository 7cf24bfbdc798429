package services

import (
	"fmt"
	"testing"
	"time"

	"blogapi/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Group{}, &models.Post{}))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
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

func createTestGroup(t *testing.T, db *gorm.DB, title, slug, description string) *models.Group {
	t.Helper()

	group := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	require.NoError(t, db.Create(group).Error)

	return group
}

func createTestPost(t *testing.T, db *gorm.DB, text string, authorID uint, groupID *uint, pubDate time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		Text:     text,
		PubDate:  pubDate,
		AuthorID: authorID,
		GroupID:  groupID,
	}
	require.NoError(t, db.Create(post).Error)

	return post
}

func postCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	return count
}
