package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewMaterialResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "material",
		Label:  "Material",
		Entity: func() interface{} { return &model.Material{} },
		Slice:  func() interface{} { return &[]model.Material{} },
		Fields: []string{
			"materialName", "materialOrder", "materialStatus",
		},
		Required:     []string{"materialName"},
		NaturalKey:   []string{"materialName"},
		SearchFields: []string{"materialName"},
		NumberFields: []string{"materialOrder"},
		BoolFields:   []string{"materialStatus"},
		StatusField:  "materialStatus",
		OrderField:   "materialOrder",
	})
}
