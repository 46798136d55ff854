package utils

import "github.com/gosimple/slug"

// Slugify derives a lowercase URL slug from a post title. Recomputed on
// every create and update; identical titles collide, which is accepted.
func Slugify(title string) string {
	return slug.Make(title)
}
