package model

import "time"

// Choose represents a "why choose us" home-page block.
type Choose struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	ChooseTitle    string     `json:"chooseTitle" gorm:"type:varchar(255);not null"`
	ChooseImageUrl string     `json:"chooseImageUrl" gorm:"type:varchar(512)"`
	ChooseOrder    int        `json:"chooseOrder" gorm:"not null;default:0"`
	ChooseStatus   bool       `json:"chooseStatus" gorm:"default:true"`
	IsDeleted      bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
