package handler

import (
	"github.com/dataria445/Monsta/internal/middleware"
	"github.com/dataria445/Monsta/pkg/config"
	"github.com/dataria445/Monsta/pkg/jwtutil"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the admin catalogue groups and the web-facing
// surface. The admin routes carry no auth guard, matching the dashboard,
// which calls them without credentials; only logout and update-password
// sit behind the token middleware.
func RegisterRoutes(e *echo.Echo, db *gorm.DB, store storage.Storage, jwtUtil *jwtutil.JWTUtil, cfg *config.Config) {
	authMW := middleware.AuthMiddleware(db, jwtUtil)
	upload := func(folder string) *middleware.Uploader {
		return middleware.Upload(&cfg.Upload, folder)
	}

	categoryGroup := e.Group("/admin/category")
	NewCategoryResource(db, store).Register(categoryGroup,
		upload("categoryImages").Single("categoryImage"))

	subCategoryGroup := e.Group("/admin/subCategory")
	NewSubCategoryResource(db, store).Register(subCategoryGroup,
		upload("subCategoryImages").Single("subCategoryImage"))
	subCategoryGroup.GET("/parentCategory", ListParentCategories(db))

	subSubCategoryGroup := e.Group("/admin/subSubCategory")
	NewSubSubCategoryResource(db, store).Register(subSubCategoryGroup,
		upload("subSubCategoryImages").Single("subSubCategoryImage"))
	subSubCategoryGroup.GET("/parentCategory", ListParentCategories(db))

	product := NewProductHandler(db, store)
	product.RegisterProduct(e.Group("/admin/product"),
		upload("productImages").Fields(
			middleware.FileField{Name: "productImage", MaxCount: 1},
			middleware.FileField{Name: "productBackImage", MaxCount: 1},
			middleware.FileField{Name: "productImageGallery", MaxCount: 10},
		))

	NewColorResource(db, store).Register(e.Group("/admin/color"))
	NewMaterialResource(db, store).Register(e.Group("/admin/material"))
	NewCouponResource(db, store).Register(e.Group("/admin/coupon"),
		upload("couponImages").Single("couponImage"))
	NewSliderResource(db, store).Register(e.Group("/admin/slider"),
		upload("sliderImages").Single("sliderImage"))
	NewChooseResource(db, store).Register(e.Group("/admin/choose"),
		upload("chooseImages").Single("chooseImage"))
	NewTestimonialResource(db, store).Register(e.Group("/admin/testimonial"),
		upload("testimonialImages").Single("testimonialImage"))
	NewFaqResource(db, store).Register(e.Group("/admin/faq"))
	NewCountryResource(db, store).Register(e.Group("/admin/country"))
	NewNewsletterResource(db, store).Register(e.Group("/admin/newsletter"))
	NewDashboardAdminResource(db, store).Register(e.Group("/admin/dashboardAdmin"))

	enquiry := NewContactEnquiryHandler(db, store)
	enquiry.RegisterEnquiry(e.Group("/admin/contactEnquiry"))
	// Public storefront contact form
	e.POST("/web/contact/create", enquiry.Create)

	user := NewUserHandler(db, jwtUtil, store)
	user.RegisterUser(e.Group("/web/user"), authMW,
		upload("users").Fields(
			middleware.FileField{Name: "avatar", MaxCount: 1},
			middleware.FileField{Name: "coverImage", MaxCount: 1},
		))
}
