package Models

import "gorm.io/gorm"

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusRejected  = "rejected"
)

// Payment is owned by the payments flow; the performance engine only counts
// pending rows for the real-time dashboard.
type Payment struct {
	gorm.Model
	UserID   uint    `json:"user_id" gorm:"index;not null"`
	CourseID uint    `json:"course_id" gorm:"index"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status" gorm:"index;default:pending"`
}

func (Payment) TableName() string {
	return "payments"
}
