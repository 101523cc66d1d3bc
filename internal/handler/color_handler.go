package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewColorResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "color",
		Label:  "Color",
		Entity: func() interface{} { return &model.Color{} },
		Slice:  func() interface{} { return &[]model.Color{} },
		Fields: []string{
			"colorName", "colorCode", "colorOrder", "colorStatus",
		},
		Required:     []string{"colorName", "colorCode"},
		NaturalKey:   []string{"colorName"},
		SearchFields: []string{"colorName", "colorCode"},
		NumberFields: []string{"colorOrder"},
		BoolFields:   []string{"colorStatus"},
		StatusField:  "colorStatus",
		OrderField:   "colorOrder",
	})
}
