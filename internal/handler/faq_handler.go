package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

func NewFaqResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:   "faq",
		Label:  "FAQ",
		Entity: func() interface{} { return &model.Faq{} },
		Slice:  func() interface{} { return &[]model.Faq{} },
		Fields: []string{
			"faqQuestion", "faqAnswer", "faqOrder", "faqStatus",
		},
		Required:     []string{"faqQuestion", "faqAnswer"},
		NaturalKey:   []string{"faqQuestion"},
		SearchFields: []string{"faqQuestion"},
		NumberFields: []string{"faqOrder"},
		BoolFields:   []string{"faqStatus"},
		StatusField:  "faqStatus",
		OrderField:   "faqOrder",
	})
}
