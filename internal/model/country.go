package model

import "time"

// Country represents a shipping country.
type Country struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	CountryName   string     `json:"countryName" gorm:"type:varchar(100);not null"`
	CountryOrder  int        `json:"countryOrder" gorm:"not null;default:0"`
	CountryStatus bool       `json:"countryStatus" gorm:"default:true"`
	IsDeleted     bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt     *time.Time `json:"deletedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
