package models

import "time"

// UploadedFile records a locally stored upload so the cleanup worker can
// remove it after its TTL elapses.
type UploadedFile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	FilePath  string    `gorm:"size:1024;not null" json:"-"` // filesystem path, not exposed
	URL       string    `gorm:"size:1024;not null" json:"url"`
	Size      int64     `gorm:"not null;default:0" json:"size"`
	ExpireAt  time.Time `gorm:"index" json:"expireAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
