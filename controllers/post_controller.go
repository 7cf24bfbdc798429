package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"blogapi/forms"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db             *gorm.DB
	postService    *services.PostService
	listingService *services.ListingService
	feedService    *services.FeedService
}

func NewPostController(db *gorm.DB, feedService *services.FeedService) *PostController {
	return &PostController{
		db:             db,
		postService:    services.NewPostService(db),
		listingService: services.NewListingService(db),
		feedService:    feedService,
	}
}

// ListPosts serves the global listing, newest first, ten posts per page.
func (pc *PostController) ListPosts(c *gin.Context) {
	page, err := pc.listingService.ListAll(pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": page})
}

// ListGroupPosts serves one group's listing plus the group itself.
func (pc *PostController) ListGroupPosts(c *gin.Context) {
	group, page, err := pc.listingService.ListByGroup(c.Param("slug"), pageParam(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": page, "group": group})
}

// GetProfile serves an author's listing plus the author.
func (pc *PostController) GetProfile(c *gin.Context) {
	author, page, err := pc.listingService.ListByAuthor(c.Param("username"), pageParam(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": page, "author": author})
}

// GetPost serves a single post addressed by author username and post id.
func (pc *PostController) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := pc.postService.GetByAuthorAndID(c.Param("username"), uint(postID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// CreatePost persists a new post for the authenticated user and redirects
// to the global listing. Validation failures return the form state with
// field errors and persist nothing.
func (pc *PostController) CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, fieldErrors, err := pc.postService.Create(userID.(uint), &form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors, "form": form})
		return
	}

	if pc.feedService != nil {
		pc.feedService.BroadcastPostCreated(post)
	}

	c.Redirect(http.StatusSeeOther, "/api/v1/posts")
}

// GetEditForm returns the current form state of a post. Any authenticated
// user may view it; only the author may submit the edit.
func (pc *PostController) GetEditForm(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	post, err := pc.postService.GetByID(uint(postID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form": forms.PostForm{Text: post.Text, GroupID: post.GroupID},
		"post": post,
	})
}

// UpdatePost mutates a post's text and group in place and redirects to the
// single-post view. Only the author's submission is accepted.
func (pc *PostController) UpdatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var form forms.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, fieldErrors, err := pc.postService.Update(uint(postID), userID.(uint), &form)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if errors.Is(err, services.ErrNotAuthor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can edit this post"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors, "form": form})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/users/%s/posts/%d", post.Author.Username, post.ID))
}

// pageParam reads the page query parameter, defaulting to the first page.
// Out-of-range values are clamped by the listing service.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
