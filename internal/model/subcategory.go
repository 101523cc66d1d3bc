package model

import "time"

// SubCategory represents a second-level category under a parent category.
// Soft-deleting the parent does not cascade; ParentCategory preloads as nil
// when the parent is dead.
type SubCategory struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	SubCategoryName   string     `json:"subCategoryName" gorm:"type:varchar(255);not null"`
	ParentCategoryID  *uint      `json:"parentCategoryId" gorm:"index"`
	ParentCategory    *Category  `json:"parentCategory,omitempty" gorm:"foreignKey:ParentCategoryID"`
	SubCategoryImage  string     `json:"subCategoryImage" gorm:"type:varchar(512)"`
	SubCategoryOrder  int        `json:"subCategoryOrder" gorm:"not null;default:0"`
	SubCategoryStatus bool       `json:"subCategoryStatus" gorm:"default:true"`
	Slug              string     `json:"slug" gorm:"type:varchar(255)"`
	IsDeleted         bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt         *time.Time `json:"deletedAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
