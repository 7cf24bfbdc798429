package services

import (
	"blogapi/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

// Create persists a new group. When no slug is submitted one is derived
// from the title. Slugs are unique across all groups.
func (s *GroupService) Create(req *models.CreateGroupRequest) (*models.Group, error) {
	groupSlug := req.Slug
	if groupSlug == "" {
		groupSlug = slug.Make(req.Title)
	} else {
		groupSlug = slug.Make(groupSlug)
	}

	group := &models.Group{
		Title:       req.Title,
		Slug:        groupSlug,
		Description: req.Description,
	}

	if err := s.db.Create(group).Error; err != nil {
		return nil, err
	}

	return group, nil
}

func (s *GroupService) GetBySlug(groupSlug string) (*models.Group, error) {
	var group models.Group
	err := s.db.Where("slug = ?", groupSlug).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *GroupService) GetAll() ([]models.Group, error) {
	var groups []models.Group
	err := s.db.Order("title ASC").Find(&groups).Error
	return groups, err
}

// Delete removes the group and clears the group reference on its posts.
// The posts themselves survive. Both steps run in one transaction.
func (s *GroupService) Delete(groupSlug string) error {
	var group models.Group
	if err := s.db.Where("slug = ?", groupSlug).First(&group).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, group.ID).Error
	})
}
