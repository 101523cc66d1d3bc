package model

import "time"

// Slider represents a home-page slider banner.
type Slider struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	SliderTitle    string     `json:"sliderTitle" gorm:"type:varchar(255);not null"`
	SliderImageUrl string     `json:"sliderImageUrl" gorm:"type:varchar(512)"`
	SliderOrder    int        `json:"sliderOrder" gorm:"not null;default:0"`
	SliderStatus   bool       `json:"sliderStatus" gorm:"default:true"`
	IsDeleted      bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
