package models

import "time"

// ReportPost is a user complaint against a post.
type ReportPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"postId"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Reason    string    `gorm:"size:1024;not null" json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReportComment is a user complaint against a comment.
type ReportComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CommentID uint      `gorm:"index;not null" json:"commentId"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Reason    string    `gorm:"size:1024;not null" json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReportChildComment is a user complaint against a child comment.
type ReportChildComment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ChildCommentID uint      `gorm:"index;not null" json:"childCommentId"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Reason         string    `gorm:"size:1024;not null" json:"reason"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
