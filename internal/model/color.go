package model

import "time"

// Color represents a product color swatch (name plus hex code).
type Color struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ColorName   string     `json:"colorName" gorm:"type:varchar(100);not null"`
	ColorCode   string     `json:"colorCode" gorm:"type:varchar(20);not null"`
	ColorOrder  int        `json:"colorOrder" gorm:"not null;default:0"`
	ColorStatus bool       `json:"colorStatus" gorm:"default:true"`
	IsDeleted   bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt   *time.Time `json:"deletedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
