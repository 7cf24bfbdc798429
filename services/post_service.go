package services

import (
	"errors"
	"time"

	"blogapi/forms"
	"blogapi/models"

	"gorm.io/gorm"
)

// ErrNotAuthor is returned when a user other than the post's author tries
// to mutate it.
var ErrNotAuthor = errors.New("requester is not the post author")

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Create validates the form and persists a new post for the author. On
// validation failure it returns the field errors and persists nothing.
func (s *PostService) Create(authorID uint, form *forms.PostForm) (*models.Post, map[string]string, error) {
	fieldErrors, err := form.Validate(s.db)
	if err != nil {
		return nil, nil, err
	}
	if fieldErrors != nil {
		return nil, fieldErrors, nil
	}

	post := &models.Post{
		Text:     form.Text,
		PubDate:  time.Now(),
		AuthorID: authorID,
		GroupID:  form.GroupID,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, nil, err
	}

	if err := s.db.Preload("Author").Preload("Group").First(post, post.ID).Error; err != nil {
		return nil, nil, err
	}

	return post, nil, nil
}

// Update edits an existing post's text and group in place. Only the author
// may mutate; ID, AuthorID and PubDate never change.
func (s *PostService) Update(postID, requesterID uint, form *forms.PostForm) (*models.Post, map[string]string, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, nil, err
	}

	if post.AuthorID != requesterID {
		return nil, nil, ErrNotAuthor
	}

	fieldErrors, err := form.Validate(s.db)
	if err != nil {
		return nil, nil, err
	}
	if fieldErrors != nil {
		return nil, fieldErrors, nil
	}

	err = s.db.Model(&post).
		Select("text", "group_id").
		Updates(map[string]interface{}{
			"text":     form.Text,
			"group_id": form.GroupID,
		}).Error
	if err != nil {
		return nil, nil, err
	}

	if err := s.db.Preload("Author").Preload("Group").First(&post, post.ID).Error; err != nil {
		return nil, nil, err
	}

	return &post, nil, nil
}

// GetByID returns a post with its author and group loaded.
func (s *PostService) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByAuthorAndID returns the post only when it belongs to the named
// author; otherwise gorm.ErrRecordNotFound.
func (s *PostService) GetByAuthorAndID(username string, postID uint) (*models.Post, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		return nil, err
	}

	var post models.Post
	err := s.db.Where("id = ? AND author_id = ?", postID, author.ID).
		Preload("Author").
		Preload("Group").
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}
