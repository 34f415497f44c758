package gorm

import "time"

type Event struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Slug        string    `gorm:"column:slug;uniqueIndex" json:"slug"`
	Description string    `gorm:"column:description" json:"description"`
	Venue       string    `gorm:"column:venue" json:"venue"`
	CoverURL    string    `gorm:"column:cover_url" json:"coverUrl"`
	StartsAt    time.Time `gorm:"column:starts_at" json:"startsAt"`
	EndsAt      time.Time `gorm:"column:ends_at" json:"endsAt"`
	RegisterURL string    `gorm:"column:register_url" json:"registerUrl,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

type NewsPost struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Title     string    `gorm:"column:title" json:"title"`
	Slug      string    `gorm:"column:slug;uniqueIndex" json:"slug"`
	Body      string    `gorm:"column:body" json:"body"`
	CoverURL  string    `gorm:"column:cover_url" json:"coverUrl"`
	Published bool      `gorm:"column:published;default:false" json:"published"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (NewsPost) TableName() string {
	return "news_posts"
}

type GalleryImage struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	Caption   string    `gorm:"column:caption" json:"caption"`
	URL       string    `gorm:"column:url" json:"url"`
	PublicID  string    `gorm:"column:public_id" json:"publicId"`
	Album     string    `gorm:"column:album" json:"album,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for GORM
func (GalleryImage) TableName() string {
	return "gallery_images"
}
