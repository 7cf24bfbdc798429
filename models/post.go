package models

import "time"

// Post is a single authored text entry. PubDate is set once when the post
// is created and never updated afterwards. Deleting the author deletes the
// post; deleting the group only clears GroupID.
type Post struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	PubDate  time.Time `json:"pub_date" gorm:"column:pub_date;not null;index"`
	AuthorID uint      `json:"author_id" gorm:"not null;index"`
	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID  *uint     `json:"group_id,omitempty" gorm:"index"`
	Group    *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}
