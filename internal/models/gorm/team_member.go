package gorm

import (
	"time"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/constants"
)

// TeamMember is one person record on the team page. Role holds the free-text
// display label; RoleKey is an optional explicit category override with "none"
// meaning unset, in which case the classifier derives the category from Role.
type TeamMember struct {
	ID          string                 `gorm:"column:id;primaryKey" json:"id"`
	Name        string                 `gorm:"column:name" json:"name"`
	Role        string                 `gorm:"column:role" json:"role"`
	RoleKey     constants.RoleCategory `gorm:"column:role_key;default:none" json:"roleKey"`
	Bio         string                 `gorm:"column:bio" json:"bio"`
	PhotoURL    string                 `gorm:"column:photo_url" json:"photoUrl"`
	Priority    int                    `gorm:"column:priority;default:0" json:"priority"`
	Affiliation constants.Affiliation  `gorm:"column:affiliation;default:main" json:"affiliation"`
	Chapter     string                 `gorm:"column:chapter" json:"chapter"`
	Email       string                 `gorm:"column:email" json:"email,omitempty"`
	LinkedinURL string                 `gorm:"column:linkedin_url" json:"linkedinUrl,omitempty"`
	FacebookURL string                 `gorm:"column:facebook_url" json:"facebookUrl,omitempty"`
	GithubURL   string                 `gorm:"column:github_url" json:"githubUrl,omitempty"`
	CreatedAt   time.Time              `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (TeamMember) TableName() string {
	return "team_members"
}
