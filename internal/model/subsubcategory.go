package model

import "time"

// SubSubCategory represents a third-level category nested under a sub-category.
type SubSubCategory struct {
	ID                   uint         `json:"id" gorm:"primaryKey"`
	SubSubCategoryName   string       `json:"subSubCategoryName" gorm:"type:varchar(255);not null"`
	ParentCategoryID     *uint        `json:"parentCategoryId" gorm:"index"`
	ParentCategory       *Category    `json:"parentCategory,omitempty" gorm:"foreignKey:ParentCategoryID"`
	SubCategoryID        *uint        `json:"subCategoryId" gorm:"index"`
	SubCategory          *SubCategory `json:"subCategory,omitempty" gorm:"foreignKey:SubCategoryID"`
	SubSubCategoryImage  string       `json:"subSubCategoryImage" gorm:"type:varchar(512)"`
	SubSubCategoryOrder  int          `json:"subSubCategoryOrder" gorm:"not null;default:0"`
	SubSubCategoryStatus bool         `json:"subSubCategoryStatus" gorm:"default:true"`
	IsDeleted            bool         `json:"isDeleted" gorm:"default:false"`
	DeletedAt            *time.Time   `json:"deletedAt"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}
