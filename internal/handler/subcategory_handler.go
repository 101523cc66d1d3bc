package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

// Sub-category names are unique per parent category, not globally, so the
// natural key spans both fields.
func NewSubCategoryResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:        "subCategory",
		Label:       "Sub category",
		PluralLabel: "Sub categories",
		Entity:      func() interface{} { return &model.SubCategory{} },
		Slice:       func() interface{} { return &[]model.SubCategory{} },
		Fields: []string{
			"subCategoryName", "parentCategoryId", "subCategoryImage",
			"subCategoryOrder", "subCategoryStatus", "slug",
		},
		Required:     []string{"subCategoryName", "parentCategoryId"},
		NaturalKey:   []string{"subCategoryName", "parentCategoryId"},
		SearchFields: []string{"subCategoryName"},
		NumberFields: []string{"subCategoryOrder"},
		BoolFields:   []string{"subCategoryStatus"},
		RefFields:    []string{"parentCategoryId"},
		StatusField:  "subCategoryStatus",
		OrderField:   "subCategoryOrder",
		Preloads:     []string{"ParentCategory"},
		ParentChecks: []ParentCheck{
			{
				Field: "parentCategoryId",
				Model: func() interface{} { return &model.Category{} },
				Label: "Parent category",
			},
		},
		ImageFields:    map[string]string{"subCategoryImage": "subCategoryImage"},
		RequiredImages: []string{"subCategoryImage"},
	})
}
