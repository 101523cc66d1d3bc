package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

// Choose entries back the "why choose us" blocks on the storefront home page
func NewChooseResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "choose",
		Label:  "Choose item",
		Entity: func() interface{} { return &model.Choose{} },
		Slice:  func() interface{} { return &[]model.Choose{} },
		Fields: []string{
			"chooseTitle", "chooseImageUrl", "chooseOrder", "chooseStatus",
		},
		Required:       []string{"chooseTitle"},
		NaturalKey:     []string{"chooseTitle"},
		SearchFields:   []string{"chooseTitle"},
		NumberFields:   []string{"chooseOrder"},
		BoolFields:     []string{"chooseStatus"},
		StatusField:    "chooseStatus",
		OrderField:     "chooseOrder",
		ImageFields:    map[string]string{"chooseImage": "chooseImageUrl"},
		RequiredImages: []string{"chooseImage"},
	})
}
