package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dataria445/Monsta/internal/model"
	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/logger"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/dataria445/Monsta/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactEnquiryHandler wraps the generic engine for enquiries, whose status
// is a workflow state (pending/resolved/closed) rather than an active flag.
type ContactEnquiryHandler struct {
	*Resource
	db *gorm.DB
}

func NewContactEnquiryHandler(db *gorm.DB, store storage.Storage) *ContactEnquiryHandler {
	res := NewResource(db, store, ResourceConfig{
		Name:        "contactEnquiry",
		Label:       "Contact enquiry",
		PluralLabel: "Contact enquiries",
		Entity:      func() interface{} { return &model.ContactEnquiry{} },
		Slice:       func() interface{} { return &[]model.ContactEnquiry{} },
		Fields: []string{
			"contactName", "contactEmail", "contactPhone", "contactMessage",
		},
		Required: []string{
			"contactName", "contactEmail", "contactPhone", "contactMessage",
		},
		SearchFields: []string{
			"contactName", "contactEmail", "contactPhone", "contactMessage",
		},
		EmailFields: []string{"contactEmail"},
	})
	return &ContactEnquiryHandler{Resource: res, db: db}
}

// ChangeStatus moves enquiries through their workflow. An explicit status is
// validated against the known states; without one, pending and resolved flip
// and closed enquiries stay closed.
func (h *ContactEnquiryHandler) ChangeStatus(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordCatalogOperation("contactEnquiry", "changeStatus")

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}

	const flipExpr = "CASE contact_status" +
		" WHEN 'pending' THEN 'resolved'" +
		" WHEN 'resolved' THEN 'pending'" +
		" ELSE contact_status END"

	if rawIDs, ok := fields["ids"]; ok {
		ids, err := parseIDList(rawIDs)
		if err != nil {
			return err
		}
		defer prometheus.TrackDBOperation("update")(time.Now())
		res := h.db.Model(&model.ContactEnquiry{}).Where("id IN ?", ids).
			Update("contact_status", gorm.Expr(flipExpr))
		if res.Error != nil {
			return res.Error
		}
		log.Info("enquiry statuses toggled", zap.Int64("modified", res.RowsAffected))
		return c.JSON(http.StatusOK, apiutil.NewResponse(http.StatusOK,
			echo.Map{}, "Statuses toggled successfully"))
	}

	rawID, ok := fields["id"]
	if !ok || isBlank(rawID) {
		return apiutil.NewError(http.StatusBadRequest, "ID or IDs are required")
	}
	id, ok2 := toUint(rawID)
	if !ok2 {
		return apiutil.NewError(http.StatusBadRequest, "Invalid id")
	}

	var enquiry model.ContactEnquiry
	if err := h.db.First(&enquiry, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apiutil.NewError(http.StatusNotFound, "Contact enquiry not found")
		}
		return err
	}

	newStatus := enquiry.ContactStatus
	if raw, ok := fields["status"]; ok && !isBlank(raw) {
		newStatus = asString(raw)
		if !model.ValidEnquiryStatus(newStatus) {
			return apiutil.NewError(http.StatusBadRequest,
				fmt.Sprintf("Invalid status '%s'. Allowed values are pending, resolved, closed", newStatus))
		}
	} else {
		switch enquiry.ContactStatus {
		case model.EnquiryStatusPending:
			newStatus = model.EnquiryStatusResolved
		case model.EnquiryStatusResolved:
			newStatus = model.EnquiryStatusPending
		}
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.db.Model(&enquiry).Update("contact_status", newStatus).Error; err != nil {
		return err
	}
	log.Info("enquiry status updated", zap.Uint("id", id), zap.String("status", newStatus))
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, &enquiry, "Status updated successfully"))
}

// RegisterEnquiry wires the admin routes, keeping the workflow-aware
// changeStatus in place of the generic toggle
func (h *ContactEnquiryHandler) RegisterEnquiry(g *echo.Group) {
	g.POST("/create", h.Create)
	g.GET("/view", h.View)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/delete/:id", h.Delete)
	g.POST("/multiDelete", h.MultiDelete)
	g.POST("/changeStatus", h.ChangeStatus)
}
