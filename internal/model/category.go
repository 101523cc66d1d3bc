package model

import "time"

// Category represents a top-level catalogue category.
//
// Soft delete uses an explicit isDeleted/deletedAt pair instead of
// gorm.DeletedAt: legacy rows may carry NULL in is_deleted and must still be
// treated as live, so every query filters with "is_deleted IS NOT TRUE".
type Category struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	CategoryName   string     `json:"categoryName" gorm:"type:varchar(255);not null"`
	CategoryImage  string     `json:"categoryImage" gorm:"type:varchar(512)"`
	CategoryOrder  int        `json:"categoryOrder" gorm:"not null;default:0"`
	CategoryStatus bool       `json:"categoryStatus" gorm:"default:true"`
	IsDeleted      bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
