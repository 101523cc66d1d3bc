package handler

import (
	"net/http"

	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ProductHandler extends the generic engine with the cascading category
// selects the dashboard's product form drives.
type ProductHandler struct {
	*Resource
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB, store storage.Storage) *ProductHandler {
	res := NewResource(db, store, ResourceConfig{
		Name:   "product",
		Label:  "Product",
		Entity: func() interface{} { return &model.Product{} },
		Slice:  func() interface{} { return &[]model.Product{} },
		Fields: []string{
			"productName", "productType", "productImage", "productBackImage",
			"productImageGallery", "productDescription", "productPrice",
			"productSalePrice", "productStock", "productOrder",
			"productBestSelling", "productTopRated", "productTrending",
			"productUpsell", "productStatus", "parentCategoryId",
			"subCategoryId", "subsubCategoryId", "materialId", "colorId",
		},
		Required:     []string{"productName", "productPrice", "productStock", "parentCategoryId"},
		NaturalKey:   []string{"productName"},
		SearchFields: []string{"productName", "productDescription"},
		NumberFields: []string{
			"productPrice", "productSalePrice", "productStock", "productOrder",
		},
		BoolFields: []string{
			"productBestSelling", "productTopRated", "productTrending",
			"productUpsell", "productStatus",
		},
		RefFields: []string{
			"parentCategoryId", "subCategoryId", "subsubCategoryId",
			"materialId", "colorId",
		},
		StatusField: "productStatus",
		OrderField:  "productOrder",
		Preloads: []string{
			"ParentCategory", "SubCategory", "SubsubCategory", "Material", "Color",
		},
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
			{
				Field: "subsubCategoryId",
				Model: func() interface{} { return &model.SubSubCategory{} },
				Label: "Sub sub category",
			},
		},
		ImageFields: map[string]string{
			"productImage":     "productImage",
			"productBackImage": "productBackImage",
		},
		GalleryFields: map[string]string{
			"productImageGallery": "productImageGallery",
		},
	})
	return &ProductHandler{Resource: res, db: db}
}

// GetSubCategories lists the live, active sub-categories under one parent
func (h *ProductHandler) GetSubCategories(c echo.Context) error {
	parentID, err := parseID(c.Param("parentId"))
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid parent category id")
	}
	var subCategories []model.SubCategory
	err = liveScope(h.db).
		Where("parent_category_id = ? AND sub_category_status = ?", parentID, true).
		Order("sub_category_order ASC").Find(&subCategories).Error
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, subCategories, "Sub categories retrieved successfully"))
}

// GetSubSubCategories lists the live, active third-level categories under
// one sub-category
func (h *ProductHandler) GetSubSubCategories(c echo.Context) error {
	subCategoryID, err := parseID(c.Param("subCategoryId"))
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid sub category id")
	}
	var subSubCategories []model.SubSubCategory
	err = liveScope(h.db).
		Where("sub_category_id = ? AND sub_sub_category_status = ?", subCategoryID, true).
		Order("sub_sub_category_order ASC").Find(&subSubCategories).Error
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, subSubCategories, "Sub sub categories retrieved successfully"))
}

// RegisterProduct wires the product routes, including the cascade selects
// and the detail view
func (h *ProductHandler) RegisterProduct(g *echo.Group, uploadMW ...echo.MiddlewareFunc) {
	h.Register(g, uploadMW...)
	g.GET("/parentCategory", ListParentCategories(h.db))
	g.GET("/subCategory/:parentId", h.GetSubCategories)
	g.GET("/subSubCategory/:subCategoryId", h.GetSubSubCategories)
	g.GET("/productDetails/:id", h.Detail)
	g.GET("/details/:id", h.Detail)
}
