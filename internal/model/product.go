package model

import "time"

// Product represents a furniture product with its category, material and
// color references. Reference fields are nullable; an empty value on update
// means "unset". ProductType is a display bucket: "1" featured, "2" new
// arrivals, "3" discontinued.
type Product struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	ProductName         string          `json:"productName" gorm:"type:varchar(255);not null"`
	ProductType         string          `json:"productType" gorm:"type:varchar(10)"`
	ProductImage        string          `json:"productImage" gorm:"type:varchar(512)"`
	ProductBackImage    string          `json:"productBackImage" gorm:"type:varchar(512)"`
	ProductImageGallery []string        `json:"productImageGallery" gorm:"serializer:json"`
	ProductDescription  string          `json:"productDescription" gorm:"type:text"`
	ProductPrice        float64         `json:"productPrice" gorm:"not null"`
	ProductSalePrice    float64         `json:"productSalePrice"`
	ProductStock        int             `json:"productStock" gorm:"not null;default:0"`
	ProductOrder        int             `json:"productOrder" gorm:"not null;default:0"`
	ProductBestSelling  bool            `json:"productBestSelling" gorm:"default:false"`
	ProductTopRated     bool            `json:"productTopRated" gorm:"default:false"`
	ProductTrending     bool            `json:"productTrending" gorm:"default:false"`
	ProductUpsell       bool            `json:"productUpsell" gorm:"default:false"`
	ProductStatus       bool            `json:"productStatus" gorm:"default:true"`
	ParentCategoryID    *uint           `json:"parentCategoryId" gorm:"index"`
	ParentCategory      *Category       `json:"parentCategory,omitempty" gorm:"foreignKey:ParentCategoryID"`
	SubCategoryID       *uint           `json:"subCategoryId" gorm:"index"`
	SubCategory         *SubCategory    `json:"subCategory,omitempty" gorm:"foreignKey:SubCategoryID"`
	SubsubCategoryID    *uint           `json:"subsubCategoryId" gorm:"index"`
	SubsubCategory      *SubSubCategory `json:"subsubCategory,omitempty" gorm:"foreignKey:SubsubCategoryID"`
	MaterialID          *uint           `json:"materialId" gorm:"index"`
	Material            *Material       `json:"material,omitempty" gorm:"foreignKey:MaterialID"`
	ColorID             *uint           `json:"colorId" gorm:"index"`
	Color               *Color          `json:"color,omitempty" gorm:"foreignKey:ColorID"`
	IsDeleted           bool            `json:"isDeleted" gorm:"default:false"`
	DeletedAt           *time.Time      `json:"deletedAt"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}
