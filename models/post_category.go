package models

import "time"

// PostCategory groups posts for category listing pages.
type PostCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`

	Posts []Post `gorm:"foreignKey:PostsCategoryID" json:"-"`
}
