package model

import "time"

// Newsletter represents a newsletter subscription. Sorted by createdAt only;
// there is no ordering field.
type Newsletter struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	NewsletterEmail  string     `json:"newsletterEmail" gorm:"type:varchar(255);not null"`
	NewsletterStatus bool       `json:"newsletterStatus" gorm:"default:true"`
	IsDeleted        bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt        *time.Time `json:"deletedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
