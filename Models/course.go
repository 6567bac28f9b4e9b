package Models

import (
	"time"

	"gorm.io/gorm"
)

// Course statuses and levels
const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"

	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"
)

// Enrollment statuses
const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusCancelled = "cancelled"
)

type Course struct {
	gorm.Model
	TitleFa         string     `json:"title_fa" gorm:"not null"`
	Description     string     `json:"description" gorm:"type:text"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description" gorm:"type:text"`
	Slug            string     `json:"slug" gorm:"uniqueIndex"`
	AdminID         uint       `json:"admin_id" gorm:"not null"`
	Price           float64    `json:"price" gorm:"default:0"`
	Duration        string     `json:"duration"`
	Level           string     `json:"level" gorm:"default:beginner"`
	Status          string     `json:"status" gorm:"index;default:draft"`
	PublishedAt     *time.Time `json:"published_at"`

	Lessons     []CourseLesson     `json:"lessons,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Enrollments []CourseEnrollment `json:"enrollments,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`

	// Filled by list queries, not stored
	EnrollmentCount int64 `json:"enrollment_count" gorm:"-"`
}

func (Course) TableName() string {
	return "courses"
}

type CourseLesson struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	TitleFa  string `json:"title_fa" gorm:"not null"`
	Content  string `json:"content" gorm:"type:text"`
	OrderNum int    `json:"order_num" gorm:"not null"`
}

func (CourseLesson) TableName() string {
	return "course_lessons"
}

type CourseEnrollment struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID       uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	PaymentID      *uint     `json:"payment_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Status         string    `json:"status" gorm:"default:active"`
}

func (CourseEnrollment) TableName() string {
	return "course_enrollments"
}

// CourseStats is the admin dashboard counter block for courses.
type CourseStats struct {
	TotalCourses     int64 `json:"total_courses"`
	PublishedCourses int64 `json:"published_courses"`
	DraftCourses     int64 `json:"draft_courses"`
	TotalEnrollments int64 `json:"total_enrollments"`
}
