package gorm

import (
	"time"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
)

// MembershipApplication is a public-submitted join request. Status starts at
// pending and only moves through admin review.
type MembershipApplication struct {
	ID         string                      `gorm:"column:id;primaryKey" json:"id"`
	Name       string                      `gorm:"column:name" json:"name"`
	Email      string                      `gorm:"column:email;uniqueIndex" json:"email"`
	StudentID  string                      `gorm:"column:student_id" json:"studentId"`
	Department string                      `gorm:"column:department" json:"department"`
	Motivation string                      `gorm:"column:motivation" json:"motivation"`
	Status     constants.ApplicationStatus `gorm:"column:status;default:pending" json:"status"`
	CreatedAt  time.Time                   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (MembershipApplication) TableName() string {
	return "membership_applications"
}
