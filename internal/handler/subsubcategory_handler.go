package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewSubSubCategoryResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:        "subSubCategory",
		Label:       "Sub sub category",
		PluralLabel: "Sub sub categories",
		Entity:      func() interface{} { return &model.SubSubCategory{} },
		Slice:       func() interface{} { return &[]model.SubSubCategory{} },
		Fields: []string{
			"subSubCategoryName", "parentCategoryId", "subCategoryId",
			"subSubCategoryImage", "subSubCategoryOrder", "subSubCategoryStatus",
		},
		Required:     []string{"subSubCategoryName", "parentCategoryId", "subCategoryId"},
		NaturalKey:   []string{"subSubCategoryName", "subCategoryId"},
		SearchFields: []string{"subSubCategoryName"},
		NumberFields: []string{"subSubCategoryOrder"},
		BoolFields:   []string{"subSubCategoryStatus"},
		RefFields:    []string{"parentCategoryId", "subCategoryId"},
		StatusField:  "subSubCategoryStatus",
		OrderField:   "subSubCategoryOrder",
		Preloads:     []string{"ParentCategory", "SubCategory"},
		ParentChecks: []ParentCheck{
			{
				Field: "parentCategoryId",
				Model: func() interface{} { return &model.Category{} },
				Label: "Parent category",
			},
			{
				Field: "subCategoryId",
				Model: func() interface{} { return &model.SubCategory{} },
				Label: "Sub category",
			},
		},
		ImageFields:    map[string]string{"subSubCategoryImage": "subSubCategoryImage"},
		RequiredImages: []string{"subSubCategoryImage"},
	})
}
