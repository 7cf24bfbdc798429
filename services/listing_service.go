package services

import (
	"blogapi/models"

	"gorm.io/gorm"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 10

// Page is one slice of a pub_date-descending post listing.
type Page struct {
	Items       []models.Post `json:"items"`
	Number      int           `json:"number"`
	Total       int64         `json:"total"`
	TotalPages  int           `json:"total_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// ListAll returns the requested page of the global listing.
func (s *ListingService) ListAll(page int) (*Page, error) {
	return s.listPosts(page, "", nil)
}

// ListByGroup resolves the group by slug and returns the requested page of
// its posts. An unknown slug yields gorm.ErrRecordNotFound.
func (s *ListingService) ListByGroup(slug string, page int) (*models.Group, *Page, error) {
	var group models.Group
	if err := s.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, nil, err
	}

	p, err := s.listPosts(page, "group_id = ?", []interface{}{group.ID})
	if err != nil {
		return nil, nil, err
	}
	return &group, p, nil
}

// ListByAuthor resolves the author by username and returns the requested
// page of their posts. An unknown username yields gorm.ErrRecordNotFound.
func (s *ListingService) ListByAuthor(username string, page int) (*models.User, *Page, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		return nil, nil, err
	}

	p, err := s.listPosts(page, "author_id = ?", []interface{}{author.ID})
	if err != nil {
		return nil, nil, err
	}
	return &author, p, nil
}

// listPosts pages the filtered listing. Out-of-range page numbers are
// clamped to the nearest valid page rather than rejected, so page 1 of an
// empty listing and any page past the last both succeed.
func (s *ListingService) listPosts(page int, query string, args []interface{}) (*Page, error) {
	base := func() *gorm.DB {
		q := s.db.Model(&models.Post{})
		if query != "" {
			q = q.Where(query, args...)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var posts []models.Post
	err := base().
		Order("pub_date DESC, id DESC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Preload("Author").
		Preload("Group").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &Page{
		Items:       posts,
		Number:      page,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}
