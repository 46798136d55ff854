package models

import "time"

// Post is a published article. The slug is derived from the title on every
// create and update; identical titles produce colliding slugs, which is not
// deduplicated (matches the upstream schema).
type Post struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Slug            string    `gorm:"size:255;not null;index" json:"slug"`
	Description     string    `gorm:"size:1024" json:"description"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	Image           string    `gorm:"size:512" json:"image"`
	Promoted        bool      `gorm:"not null;default:false;index" json:"promoted"`
	Vip             bool      `gorm:"not null;default:false;index" json:"vip"`
	ReadTime        int       `gorm:"not null;default:0" json:"read_time"`
	PostsCategoryID uint      `gorm:"index;not null" json:"postsCategoryId"`
	UserID          uint      `gorm:"index;not null" json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	PostsCategory *PostCategory `gorm:"foreignKey:PostsCategoryID" json:"postsCategory,omitempty"`
	Comments      []Comment     `json:"comments,omitempty"`
	User          *User         `json:"user,omitempty"`
	LikePosts     []LikePost    `json:"likePosts,omitempty"`
}
