package model

import "time"

// Faq represents a frequently asked question entry.
type Faq struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	FaqQuestion string     `json:"faqQuestion" gorm:"type:text;not null"`
	FaqAnswer   string     `json:"faqAnswer" gorm:"type:text"`
	FaqOrder    int        `json:"faqOrder" gorm:"not null;default:0"`
	FaqStatus   bool       `json:"faqStatus" gorm:"default:true"`
	IsDeleted   bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt   *time.Time `json:"deletedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
