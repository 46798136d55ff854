// Package repository provides the data-access layer: per-entity repositories
// over an injected *gorm.DB, plus the shared pagination query builder used by
// every listing endpoint.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInvalidSortColumn is returned when a sortBy value is not in the
// entity's whitelist. Callers translate it to a validation error instead of
// letting arbitrary strings reach the store.
var ErrInvalidSortColumn = errors.New("invalid sort column")

// PageQuery is the (page, limit, sortBy) tuple shared by all listing
// endpoints. Page is 1-based; SortBy is an API-level column name that must
// pass the per-entity whitelist.
type PageQuery struct {
	Page   int
	Limit  int
	SortBy string
}

// Offset computes the row offset for the query.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// TotalPages computes ceil(count/limit). Zero rows yield zero pages.
func TotalPages(count int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((count + int64(limit) - 1) / int64(limit))
}

// postSortColumns maps accepted sortBy values to their columns. Both the
// wire names (readTime, createdAt) and the raw column names are accepted.
var postSortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"slug":       "slug",
	"readTime":   "read_time",
	"read_time":  "read_time",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
}

// orderColumn resolves an API sortBy name against a whitelist. Empty input
// falls back to id, anything unknown fails.
func orderColumn(sortBy string, allowed map[string]string) (string, error) {
	if sortBy == "" {
		return "id", nil
	}
	col, ok := allowed[sortBy]
	if !ok {
		return "", ErrInvalidSortColumn
	}
	return col, nil
}

// paginate applies descending order, offset and limit for the given query.
// The column must already be whitelisted.
func paginate(db *gorm.DB, col string, q PageQuery) *gorm.DB {
	return db.Order(col + " DESC").Offset(q.Offset()).Limit(q.Limit)
}
