package controllers

import (
	"errors"
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GroupController struct {
	db           *gorm.DB
	groupService *services.GroupService
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{
		db:           db,
		groupService: services.NewGroupService(db),
	}
}

func (gc *GroupController) GetGroups(c *gin.Context) {
	groups, err := gc.groupService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": groups})
}

func (gc *GroupController) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := gc.groupService.Create(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Group with this slug already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": group})
}

// DeleteGroup removes a group; posts that referenced it survive with the
// reference cleared.
func (gc *GroupController) DeleteGroup(c *gin.Context) {
	err := gc.groupService.Delete(c.Param("slug"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete group"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}
