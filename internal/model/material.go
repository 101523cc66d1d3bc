package model

import "time"

// Material represents a furniture material (wood, metal, fabric, ...).
type Material struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	MaterialName   string     `json:"materialName" gorm:"type:varchar(100);not null"`
	MaterialOrder  int        `json:"materialOrder" gorm:"not null;default:0"`
	MaterialStatus bool       `json:"materialStatus" gorm:"default:true"`
	IsDeleted      bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
