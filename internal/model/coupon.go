package model

import "time"

// CouponPriceRange bounds the order value a coupon applies to.
type CouponPriceRange struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// CouponValidBetween is the coupon's validity window.
type CouponValidBetween struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Coupon represents a discount coupon. The code is the natural key.
type Coupon struct {
	ID                    uint               `json:"id" gorm:"primaryKey"`
	CouponName            string             `json:"couponName" gorm:"type:varchar(255);not null"`
	CouponCode            string             `json:"couponCode" gorm:"type:varchar(100);not null"`
	CouponDiscountPercent float64            `json:"couponDiscountPercent" gorm:"not null"`
	CouponPriceRange      CouponPriceRange   `json:"couponPriceRange" gorm:"serializer:json"`
	CouponValidBetween    CouponValidBetween `json:"couponValidBetween" gorm:"serializer:json"`
	CouponImageUrl        string             `json:"couponImageUrl" gorm:"type:varchar(512)"`
	CouponOrder           int                `json:"couponOrder" gorm:"not null;default:0"`
	CouponStatus          bool               `json:"couponStatus" gorm:"default:true"`
	IsDeleted             bool               `json:"isDeleted" gorm:"default:false"`
	DeletedAt             *time.Time         `json:"deletedAt"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
}
