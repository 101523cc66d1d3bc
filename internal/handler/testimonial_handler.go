package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewTestimonialResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "testimonial",
		Label:  "Testimonial",
		Entity: func() interface{} { return &model.Testimonial{} },
		Slice:  func() interface{} { return &[]model.Testimonial{} },
		Fields: []string{
			"testimonialName", "testimonialDesignation", "testimonialMessage",
			"testimonialRating", "testimonialImageUrl", "testimonialOrder",
			"testimonialStatus",
		},
		Required:     []string{"testimonialName", "testimonialMessage"},
		NaturalKey:   []string{"testimonialName"},
		SearchFields: []string{"testimonialName", "testimonialDesignation"},
		NumberFields: []string{"testimonialRating", "testimonialOrder"},
		BoolFields:   []string{"testimonialStatus"},
		StatusField:  "testimonialStatus",
		OrderField:   "testimonialOrder",
		ImageFields:  map[string]string{"testimonialImage": "testimonialImageUrl"},
	})
}
