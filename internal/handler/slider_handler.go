package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewSliderResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "slider",
		Label:  "Slider",
		Entity: func() interface{} { return &model.Slider{} },
		Slice:  func() interface{} { return &[]model.Slider{} },
		Fields: []string{
			"sliderTitle", "sliderImageUrl", "sliderOrder", "sliderStatus",
		},
		Required:       []string{"sliderTitle"},
		NaturalKey:     []string{"sliderTitle"},
		SearchFields:   []string{"sliderTitle"},
		NumberFields:   []string{"sliderOrder"},
		BoolFields:     []string{"sliderStatus"},
		StatusField:    "sliderStatus",
		OrderField:     "sliderOrder",
		ImageFields:    map[string]string{"sliderImage": "sliderImageUrl"},
		RequiredImages: []string{"sliderImage"},
	})
}
