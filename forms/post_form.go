package forms

import (
	"errors"
	"strings"

	"blogapi/models"

	"gorm.io/gorm"
)

// PostForm carries the user-submitted fields of a post. It binds from both
// JSON bodies and classic form posts.
type PostForm struct {
	Text    string `json:"text" form:"text"`
	GroupID *uint  `json:"group" form:"group"`
}

// Validate checks the submitted fields against the store and returns
// field-keyed error messages. A nil map means the form is clean; a non-nil
// error means the store could not be consulted at all. Nothing is
// persisted here.
func (f *PostForm) Validate(db *gorm.DB) (map[string]string, error) {
	fieldErrors := make(map[string]string)

	f.Text = strings.TrimSpace(f.Text)
	if f.Text == "" {
		fieldErrors["text"] = "Text is required"
	}

	// A form post with no group selected arrives as group=, which the
	// binder turns into a zero id. Group ids start at 1, so zero means
	// "no group".
	if f.GroupID != nil && *f.GroupID == 0 {
		f.GroupID = nil
	}

	if f.GroupID != nil {
		var group models.Group
		err := db.Select("id").First(&group, *f.GroupID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldErrors["group"] = "Group does not exist"
		} else if err != nil {
			return nil, err
		}
	}

	if len(fieldErrors) == 0 {
		return nil, nil
	}
	return fieldErrors, nil
}
