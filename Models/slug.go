package Models

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	slugSpacesRe   = regexp.MustCompile(`\s+`)
	slugMaxRetries = 1000
)

// Slugify lowercases a title and reduces it to letters, digits and dashes.
// Unicode letters survive, so Persian titles keep readable slugs.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugSpacesRe.ReplaceAllString(strings.TrimSpace(slug), "-")
	return strings.Trim(slug, "-")
}

// GenerateBlogSlug returns a slug unique among blogs, appending -1, -2, ...
// on collision. ignoreID skips the row being updated so a post does not
// collide with itself.
func GenerateBlogSlug(db *gorm.DB, title string, ignoreID uint) string {
	return uniqueSlug(db, &Blog{}, title, ignoreID)
}

// GenerateCourseSlug returns a slug unique among courses.
func GenerateCourseSlug(db *gorm.DB, title string, ignoreID uint) string {
	return uniqueSlug(db, &Course{}, title, ignoreID)
}

func uniqueSlug(db *gorm.DB, model interface{}, title string, ignoreID uint) string {
	base := Slugify(title)
	slug := base
	for counter := 1; counter < slugMaxRetries; counter++ {
		query := db.Model(model).Where("slug = ?", slug)
		if ignoreID != 0 {
			query = query.Where("id != ?", ignoreID)
		}
		var count int64
		query.Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	return slug
}
