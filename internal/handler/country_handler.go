package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewCountryResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:        "country",
		Label:       "Country",
		PluralLabel: "Countries",
		Entity:      func() interface{} { return &model.Country{} },
		Slice:       func() interface{} { return &[]model.Country{} },
		Fields: []string{
			"countryName", "countryOrder", "countryStatus",
		},
		Required:     []string{"countryName"},
		NaturalKey:   []string{"countryName"},
		SearchFields: []string{"countryName"},
		NumberFields: []string{"countryOrder"},
		BoolFields:   []string{"countryStatus"},
		StatusField:  "countryStatus",
		OrderField:   "countryOrder",
	})
}
