package model

import "time"

// Testimonial represents a customer testimonial shown on the storefront.
type Testimonial struct {
	ID                     uint       `json:"id" gorm:"primaryKey"`
	TestimonialName        string     `json:"testimonialName" gorm:"type:varchar(255);not null"`
	TestimonialDesignation string     `json:"testimonialDesignation" gorm:"type:varchar(255)"`
	TestimonialMessage     string     `json:"testimonialMessage" gorm:"type:text"`
	TestimonialRating      float64    `json:"testimonialRating" gorm:"default:5"`
	TestimonialImageUrl    string     `json:"testimonialImageUrl" gorm:"type:varchar(512)"`
	TestimonialOrder       int        `json:"testimonialOrder" gorm:"not null;default:0"`
	TestimonialStatus      bool       `json:"testimonialStatus" gorm:"default:true"`
	IsDeleted              bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt              *time.Time `json:"deletedAt"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}
