package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewDashboardAdminResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "dashboardAdmin",
		Label:  "Dashboard admin",
		Entity: func() interface{} { return &model.DashboardAdmin{} },
		Slice:  func() interface{} { return &[]model.DashboardAdmin{} },
		Fields: []string{
			"dashboardAdminName", "dashboardAdminEmail",
			"dashboardAdminMobile", "dashboardAdminStatus",
		},
		Required:     []string{"dashboardAdminName", "dashboardAdminEmail"},
		NaturalKey:   []string{"dashboardAdminEmail"},
		SearchFields: []string{"dashboardAdminName", "dashboardAdminEmail"},
		BoolFields:   []string{"dashboardAdminStatus"},
		EmailFields:  []string{"dashboardAdminEmail"},
		StatusField:  "dashboardAdminStatus",
	})
}
