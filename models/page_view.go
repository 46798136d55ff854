package models

import "time"

// PageView stores aggregated hit counts for named static pages.
type PageView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Page      string    `gorm:"size:255;not null;uniqueIndex" json:"page"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
