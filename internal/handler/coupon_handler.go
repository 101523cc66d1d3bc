package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

// Coupons are keyed by code. The price range and validity window arrive as
// nested objects, or as JSON strings when the dashboard posts multipart.
func NewCouponResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "coupon",
		Label:  "Coupon",
		Entity: func() interface{} { return &model.Coupon{} },
		Slice:  func() interface{} { return &[]model.Coupon{} },
		Fields: []string{
			"couponName", "couponCode", "couponDiscountPercent",
			"couponPriceRange", "couponValidBetween", "couponImageUrl",
			"couponOrder", "couponStatus",
		},
		Required:     []string{"couponName", "couponCode", "couponDiscountPercent"},
		NaturalKey:   []string{"couponCode"},
		SearchFields: []string{"couponName", "couponCode"},
		NumberFields: []string{"couponDiscountPercent", "couponOrder"},
		BoolFields:   []string{"couponStatus"},
		JSONFields:   []string{"couponPriceRange", "couponValidBetween"},
		StatusField:  "couponStatus",
		OrderField:   "couponOrder",
		ImageFields:  map[string]string{"couponImage": "couponImageUrl"},
	})
}
