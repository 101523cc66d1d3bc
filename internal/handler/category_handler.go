package handler

import (
	"net/http"

	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func NewCategoryResource(db *gorm.DB, store storage.Storage) *Resource {
	return NewResource(db, store, ResourceConfig{
		Name:        "category",
		Label:       "Category",
		PluralLabel: "Categories",
		Entity:      func() interface{} { return &model.Category{} },
		Slice:       func() interface{} { return &[]model.Category{} },
		Fields: []string{
			"categoryName", "categoryImage", "categoryOrder", "categoryStatus",
		},
		Required:       []string{"categoryName"},
		NaturalKey:     []string{"categoryName"},
		SearchFields:   []string{"categoryName"},
		NumberFields:   []string{"categoryOrder"},
		BoolFields:     []string{"categoryStatus"},
		StatusField:    "categoryStatus",
		OrderField:     "categoryOrder",
		ImageFields:    map[string]string{"categoryImage": "categoryImage"},
		RequiredImages: []string{"categoryImage"},
	})
}

// ListParentCategories serves the live, active categories that populate the
// parent select on the sub-category, sub-sub-category and product forms.
func ListParentCategories(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var categories []model.Category
		err := liveScope(db).Where("category_status = ?", true).
			Order("category_order ASC").Find(&categories).Error
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK,
			apiutil.NewResponse(http.StatusOK, categories, "Parent categories retrieved successfully"))
	}
}
