package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello World", "hello-world"},
		{"  Spaces  Around  ", "spaces-around"},
		{"Go 1.24 Release Notes", "go-1-24-release-notes"},
		{"UPPER case TiTLe", "upper-case-title"},
		// Apostrophes are dropped rather than hyphenated; accents transliterate.
		{"c'est déjà l'été", "cest-deja-lete"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestSlugifyIdenticalTitlesCollide(t *testing.T) {
	// Collisions are not deduplicated; both rows keep the same slug.
	assert.Equal(t, Slugify("Same Title"), Slugify("Same Title"))
}
