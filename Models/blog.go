package Models

import (
	"time"

	"gorm.io/gorm"
)

// Blog statuses
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

type Blog struct {
	gorm.Model
	TitleFa         string     `json:"title_fa" gorm:"not null"`
	Content         string     `json:"content" gorm:"type:text"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description" gorm:"type:text"`
	Slug            string     `json:"slug" gorm:"uniqueIndex"`
	AdminID         uint       `json:"admin_id" gorm:"not null"`
	Status          string     `json:"status" gorm:"index;default:draft"`
	FeaturedImage   *string    `json:"featured_image"`
	PublishedAt     *time.Time `json:"published_at"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:blog_tags;"`
}

func (Blog) TableName() string {
	return "blogs"
}

type Tag struct {
	gorm.Model
	Name string `json:"name" gorm:"not null;uniqueIndex"`

	Blogs []Blog `json:"-" gorm:"many2many:blog_tags;"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagWithCount is the tag listing projection including how many posts
// carry the tag.
type TagWithCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BlogCount int    `json:"blog_count"`
}

// BlogStats is the admin dashboard counter block for posts.
type BlogStats struct {
	TotalBlogs     int64 `json:"total_blogs"`
	PublishedBlogs int64 `json:"published_blogs"`
	DraftBlogs     int64 `json:"draft_blogs"`
	TotalTags      int64 `json:"total_tags"`
}
