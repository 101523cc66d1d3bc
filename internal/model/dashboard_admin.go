package model

import "time"

// DashboardAdmin represents a back-office administrator account record.
// Email is the natural key.
type DashboardAdmin struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	DashboardAdminName   string     `json:"dashboardAdminName" gorm:"type:varchar(255);not null"`
	DashboardAdminEmail  string     `json:"dashboardAdminEmail" gorm:"type:varchar(255);not null"`
	DashboardAdminMobile string     `json:"dashboardAdminMobile" gorm:"type:varchar(50)"`
	DashboardAdminStatus bool       `json:"dashboardAdminStatus" gorm:"default:true"`
	IsDeleted            bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt            *time.Time `json:"deletedAt"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}
