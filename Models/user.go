package Models

import "gorm.io/gorm"

// User exists as the join target for enrollments. Authentication lives
// outside this service.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"not null;uniqueIndex"`
	Email    string `json:"email" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}
