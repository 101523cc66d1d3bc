package handler

import (
	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/storage"
	"gorm.io/gorm"
)

// Newsletter subscriptions have no display order, so listing falls back to
// newest-first only.
func NewNewsletterResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:        "newsletter",
		Label:       "Newsletter subscription",
		PluralLabel: "Newsletter subscriptions",
		Entity:      func() interface{} { return &model.Newsletter{} },
		Slice:       func() interface{} { return &[]model.Newsletter{} },
		Fields: []string{
			"newsletterEmail", "newsletterStatus",
		},
		Required:     []string{"newsletterEmail"},
		NaturalKey:   []string{"newsletterEmail"},
		SearchFields: []string{"newsletterEmail"},
		BoolFields:   []string{"newsletterStatus"},
		EmailFields:  []string{"newsletterEmail"},
		StatusField:  "newsletterStatus",
	})
}
