package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dataria445/Monsta/internal/middleware"
	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/logger"
	"github.com/dataria445/Monsta/pkg/storage"
	"github.com/dataria445/Monsta/prometheus"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ParentCheck declares a reference field whose target must exist and be live
// before a document can be created under it.
type ParentCheck struct {
	Field string
	Model func() interface{}
	Label string
}

// ResourceConfig describes one catalogue entity to the generic engine. Each
// entity registers its own config from a thin per-entity file; the engine
// drives binding, validation, persistence and the response envelope from it.
type ResourceConfig struct {
	Name        string
	Label       string
	PluralLabel string

	Entity func() interface{}
	Slice  func() interface{}

	// Fields is the full set of client-writable JSON fields. Anything not
	// listed here is silently dropped from create and update payloads.
	Fields   []string
	Required []string

	// NaturalKey lists the fields whose combination must be unique among
	// live rows. Soft-deleted rows do not count, so their keys are reusable.
	NaturalKey []string

	SearchFields []string
	NumberFields []string
	BoolFields   []string
	RefFields    []string
	JSONFields   []string
	EmailFields  []string

	StatusField string
	OrderField  string

	Preloads     []string
	ParentChecks []ParentCheck

	// ImageFields maps multipart file field names to the JSON field that
	// stores the resulting path. GalleryFields accumulate into a slice.
	ImageFields    map[string]string
	GalleryFields  map[string]string
	RequiredImages []string
}

// Resource is the shared CRUD engine behind every catalogue entity.
type Resource struct {
	db    *gorm.DB
	store storage.Storage
	cfg   ResourceConfig
}

func NewResource(db *gorm.DB, store storage.Storage, cfg ResourceConfig) *Resource {
	if cfg.PluralLabel == "" {
		cfg.PluralLabel = cfg.Label + "s"
	}
	return &Resource{db: db, store: store, cfg: cfg}
}

// Register wires the standard admin routes onto a group. The upload
// interceptor, when given, guards only the body-carrying routes.
func (r *Resource) Register(g *echo.Group, uploadMW ...echo.MiddlewareFunc) {
	g.POST("/create", r.Create, uploadMW...)
	g.GET("/view", r.View)
	g.PUT("/update/:id", r.Update, uploadMW...)
	g.DELETE("/delete/:id", r.Delete)
	g.POST("/multiDelete", r.MultiDelete)
	g.POST("/changeStatus", r.ChangeStatus)
}

// liveScope restricts a query to rows that have not been soft-deleted.
// "IS NOT TRUE" keeps legacy rows with a NULL flag visible.
func liveScope(q *gorm.DB) *gorm.DB {
	return q.Where("is_deleted IS NOT TRUE")
}

func (r *Resource) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordCatalogOperation(r.cfg.Name, "create")

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}

	if missing := missingRequired(fields, r.cfg.Required); len(missing) > 0 {
		return apiutil.NewError(http.StatusBadRequest, requiredMessage(missing))
	}
	if err := r.checkEmails(fields); err != nil {
		return err
	}
	if err := r.checkParents(fields); err != nil {
		return err
	}

	if len(r.cfg.NaturalKey) > 0 {
		dup, err := r.duplicateExists(fields, 0)
		if err != nil {
			return err
		}
		if dup {
			return apiutil.NewError(http.StatusConflict, r.conflictMessage(fields))
		}
	}

	if err := r.coerce(fields); err != nil {
		return err
	}
	if r.cfg.StatusField != "" {
		if _, ok := fields[r.cfg.StatusField]; !ok {
			fields[r.cfg.StatusField] = true
		}
	}
	doc := r.pick(fields)

	for _, f := range r.cfg.RequiredImages {
		if middleware.FormFile(c, f) == nil {
			return apiutil.NewError(http.StatusBadRequest,
				fmt.Sprintf("%s file is required", capitalize(humanize(f))))
		}
	}
	if err := r.applyUploads(c, doc); err != nil {
		return err
	}

	entity := r.cfg.Entity()
	if err := decodeInto(doc, entity); err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid field values")
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := r.db.Create(entity).Error; err != nil {
		return err
	}

	log.Info("document created", zap.String("entity", r.cfg.Name))
	return c.JSON(http.StatusCreated,
		apiutil.NewResponse(http.StatusCreated, entity, r.cfg.Label+" created successfully"))
}

func (r *Resource) View(c echo.Context) error {
	prometheus.RecordCatalogOperation(r.cfg.Name, "view")

	query := liveScope(r.db.Model(r.cfg.Entity()))

	if search := strings.TrimSpace(c.QueryParam("search")); search != "" && len(r.cfg.SearchFields) > 0 {
		var conds []string
		var args []interface{}
		for _, f := range r.cfg.SearchFields {
			conds = append(conds, "LOWER("+toColumn(f)+") LIKE ?")
			args = append(args, "%"+strings.ToLower(search)+"%")
		}
		if r.cfg.OrderField != "" {
			if n, err := strconv.Atoi(search); err == nil {
				conds = append(conds, toColumn(r.cfg.OrderField)+" = ?")
				args = append(args, n)
			}
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}

	for _, p := range r.cfg.Preloads {
		query = query.Preload(p, "is_deleted IS NOT TRUE")
	}
	if r.cfg.OrderField != "" {
		query = query.Order(toColumn(r.cfg.OrderField) + " ASC")
	}
	query = query.Order("created_at DESC")

	list := r.cfg.Slice()
	defer prometheus.TrackDBOperation("select")(time.Now())
	if err := query.Find(list).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, list, r.cfg.PluralLabel+" retrieved successfully"))
}

// Detail returns a single live document by id, with live parents preloaded
func (r *Resource) Detail(c echo.Context) error {
	prometheus.RecordCatalogOperation(r.cfg.Name, "detail")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid id")
	}
	entity, err := r.fetchLive(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, entity, r.cfg.Label+" retrieved successfully"))
}

func (r *Resource) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordCatalogOperation(r.cfg.Name, "update")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid id")
	}

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}
	if err := r.checkEmails(fields); err != nil {
		return err
	}

	// Re-check the natural key only when the client resubmits all its fields
	if len(r.cfg.NaturalKey) > 0 && r.hasNaturalKey(fields) {
		dup, err := r.duplicateExists(fields, id)
		if err != nil {
			return err
		}
		if dup {
			return apiutil.NewError(http.StatusConflict, r.conflictMessage(fields))
		}
	}

	if err := r.coerce(fields); err != nil {
		return err
	}
	doc := r.pick(fields)
	if err := r.applyUploads(c, doc); err != nil {
		return err
	}

	entity := r.cfg.Entity()
	if err := liveScope(r.db).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiutil.NewError(http.StatusNotFound, r.cfg.Label+" not found")
		}
		return err
	}

	if len(doc) > 0 {
		updates := make(map[string]interface{}, len(doc))
		for f, v := range doc {
			updates[toColumn(f)] = v
		}
		defer prometheus.TrackDBOperation("update")(time.Now())
		if err := r.db.Model(entity).Updates(updates).Error; err != nil {
			return err
		}
	}

	entity, err = r.fetchLive(id)
	if err != nil {
		return err
	}
	log.Info("document updated", zap.String("entity", r.cfg.Name), zap.Uint("id", id))
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, entity, r.cfg.Label+" updated successfully"))
}

func (r *Resource) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordCatalogOperation(r.cfg.Name, "delete")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid id")
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	res := r.db.Model(r.cfg.Entity()).Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apiutil.NewError(http.StatusNotFound, r.cfg.Label+" not found")
	}

	log.Info("document deleted", zap.String("entity", r.cfg.Name), zap.Uint("id", id))
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, echo.Map{}, r.cfg.Label+" deleted successfully"))
}

func (r *Resource) MultiDelete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordCatalogOperation(r.cfg.Name, "multiDelete")

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}
	ids, err := parseIDList(fields["ids"])
	if err != nil {
		return err
	}

	var matched int64
	if err := r.db.Model(r.cfg.Entity()).Where("id IN ?", ids).Count(&matched).Error; err != nil {
		return err
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	res := liveScope(r.db.Model(r.cfg.Entity())).Where("id IN ?", ids).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}

	log.Info("documents deleted",
		zap.String("entity", r.cfg.Name),
		zap.Int64("matched", matched),
		zap.Int64("modified", res.RowsAffected))
	return c.JSON(http.StatusOK, apiutil.NewResponse(http.StatusOK,
		echo.Map{"matchedCount": matched, "modifiedCount": res.RowsAffected},
		r.cfg.PluralLabel+" deleted successfully"))
}

func (r *Resource) ChangeStatus(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordCatalogOperation(r.cfg.Name, "changeStatus")

	if r.cfg.StatusField == "" {
		return apiutil.NewError(http.StatusBadRequest, r.cfg.Label+" has no status field")
	}
	col := toColumn(r.cfg.StatusField)

	fields, err := bindFields(c)
	if err != nil {
		return apiutil.NewError(http.StatusBadRequest, "Invalid request body")
	}

	// Bulk form: invert every listed document in a single statement
	if rawIDs, ok := fields["ids"]; ok {
		ids, err := parseIDList(rawIDs)
		if err != nil {
			return err
		}
		defer prometheus.TrackDBOperation("update")(time.Now())
		res := r.db.Model(r.cfg.Entity()).Where("id IN ?", ids).
			Update(col, gorm.Expr("NOT "+col))
		if res.Error != nil {
			return res.Error
		}
		log.Info("statuses toggled",
			zap.String("entity", r.cfg.Name), zap.Int64("modified", res.RowsAffected))
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

	var current []bool
	if err := r.db.Model(r.cfg.Entity()).Where("id = ?", id).Pluck(col, &current).Error; err != nil {
		return err
	}
	if len(current) == 0 {
		return apiutil.NewError(http.StatusNotFound, r.cfg.Label+" not found")
	}

	newStatus := !current[0]
	if raw, ok := fields["status"]; ok && !isBlank(raw) {
		newStatus = toBool(raw)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := r.db.Model(r.cfg.Entity()).Where("id = ?", id).Update(col, newStatus).Error; err != nil {
		return err
	}

	entity := r.cfg.Entity()
	if err := r.db.First(entity, "id = ?", id).Error; err != nil {
		return err
	}
	log.Info("status updated",
		zap.String("entity", r.cfg.Name), zap.Uint("id", id), zap.Bool("status", newStatus))
	return c.JSON(http.StatusOK,
		apiutil.NewResponse(http.StatusOK, entity, "Status updated successfully"))
}

// fetchLive loads a live document with its live parents preloaded. Parents
// that were soft-deleted after the child was created come back as null.
func (r *Resource) fetchLive(id uint) (interface{}, error) {
	query := liveScope(r.db)
	for _, p := range r.cfg.Preloads {
		query = query.Preload(p, "is_deleted IS NOT TRUE")
	}
	entity := r.cfg.Entity()
	if err := query.First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiutil.NewError(http.StatusNotFound, r.cfg.Label+" not found")
		}
		return nil, err
	}
	return entity, nil
}

// duplicateExists checks the natural key among live rows only
func (r *Resource) duplicateExists(fields map[string]interface{}, excludeID uint) (bool, error) {
	query := liveScope(r.db.Model(r.cfg.Entity()))
	for _, f := range r.cfg.NaturalKey {
		v := fields[f]
		if id, ok := toUint(v); ok && r.isRefField(f) {
			query = query.Where(toColumn(f)+" = ?", id)
		} else {
			query = query.Where(toColumn(f)+" = ?", asString(v))
		}
	}
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Resource) conflictMessage(fields map[string]interface{}) string {
	key := r.cfg.NaturalKey[0]
	return fmt.Sprintf("%s with %s '%v' already exists", r.cfg.Label, humanize(key), fields[key])
}

func (r *Resource) hasNaturalKey(fields map[string]interface{}) bool {
	for _, f := range r.cfg.NaturalKey {
		if v, ok := fields[f]; !ok || isBlank(v) {
			return false
		}
	}
	return true
}

func (r *Resource) isRefField(f string) bool {
	for _, rf := range r.cfg.RefFields {
		if rf == f {
			return true
		}
	}
	return false
}

func (r *Resource) checkEmails(fields map[string]interface{}) error {
	for _, f := range r.cfg.EmailFields {
		if v, ok := fields[f]; ok && !isBlank(v) {
			if err := validate.Var(asString(v), "email"); err != nil {
				return apiutil.NewError(http.StatusBadRequest, "Invalid email format")
			}
		}
	}
	return nil
}

func (r *Resource) checkParents(fields map[string]interface{}) error {
	for _, pc := range r.cfg.ParentChecks {
		v, ok := fields[pc.Field]
		if !ok || isBlank(v) {
			continue
		}
		id, ok2 := toUint(v)
		if !ok2 {
			return apiutil.NewError(http.StatusBadRequest, fmt.Sprintf("Invalid %s", humanize(pc.Field)))
		}
		var count int64
		if err := liveScope(r.db.Model(pc.Model())).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apiutil.NewError(http.StatusNotFound, pc.Label+" not found or has been deleted")
		}
	}
	return nil
}

// coerce applies the per-entity type rules to a raw field map in place
func (r *Resource) coerce(fields map[string]interface{}) error {
	for _, f := range r.cfg.NumberFields {
		v, ok := fields[f]
		if !ok {
			continue
		}
		if isBlank(v) {
			delete(fields, f)
			continue
		}
		n, ok2 := toFloat(v)
		if !ok2 {
			return apiutil.NewError(http.StatusBadRequest, fmt.Sprintf("%s must be a number", humanize(f)))
		}
		fields[f] = n
	}
	for _, f := range r.cfg.BoolFields {
		if v, ok := fields[f]; ok {
			fields[f] = toBool(v)
		}
	}
	for _, f := range r.cfg.RefFields {
		v, ok := fields[f]
		if !ok {
			continue
		}
		// An empty string clears the reference
		if isBlank(v) {
			fields[f] = nil
			continue
		}
		id, ok2 := toUint(v)
		if !ok2 {
			return apiutil.NewError(http.StatusBadRequest, fmt.Sprintf("Invalid %s", humanize(f)))
		}
		fields[f] = id
	}
	for _, f := range r.cfg.JSONFields {
		v, ok := fields[f]
		if !ok {
			continue
		}
		// Multipart forms carry nested objects as JSON strings
		if s, isStr := v.(string); isStr {
			var parsed interface{}
			if err := json.Unmarshal([]byte(s), &parsed); err != nil {
				return apiutil.NewError(http.StatusBadRequest, fmt.Sprintf("Invalid %s", humanize(f)))
			}
			fields[f] = parsed
		}
	}
	return nil
}

// pick drops everything the entity does not declare as client-writable
func (r *Resource) pick(fields map[string]interface{}) map[string]interface{} {
	doc := make(map[string]interface{}, len(fields))
	for _, f := range r.cfg.Fields {
		if v, ok := fields[f]; ok {
			doc[f] = v
		}
	}
	return doc
}

// applyUploads stores any uploaded files and writes their public paths into
// the document map
func (r *Resource) applyUploads(c echo.Context, doc map[string]interface{}) error {
	folder := middleware.UploadFolder(c)
	if folder == "" {
		return nil
	}
	for formField, jsonField := range r.cfg.ImageFields {
		fh := middleware.FormFile(c, formField)
		if fh == nil {
			continue
		}
		path, err := r.saveFile(folder, fh)
		if err != nil {
			return err
		}
		doc[jsonField] = path
	}
	for formField, jsonField := range r.cfg.GalleryFields {
		fhs := middleware.FormFiles(c, formField)
		if len(fhs) == 0 {
			continue
		}
		paths := make([]string, 0, len(fhs))
		for _, fh := range fhs {
			path, err := r.saveFile(folder, fh)
			if err != nil {
				return err
			}
			paths = append(paths, path)
		}
		doc[jsonField] = paths
	}
	return nil
}

func (r *Resource) saveFile(folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path, err := r.store.Save(folder, filename, src)
	if err != nil {
		return "", err
	}
	prometheus.UploadCounter.WithLabelValues(folder).Inc()
	return path, nil
}

func parseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(n), nil
}

// parseIDList coerces the tolerant "ids" payload, which may mix JSON numbers
// and numeric strings
func parseIDList(raw interface{}) ([]uint, error) {
	list, ok := raw.([]interface{})
	if !ok || len(list) == 0 {
		return nil, apiutil.NewError(http.StatusBadRequest, "Valid array of IDs is required")
	}
	ids := make([]uint, 0, len(list))
	for _, v := range list {
		id, ok := toUint(v)
		if !ok {
			return nil, apiutil.NewError(http.StatusBadRequest, fmt.Sprintf("Invalid id '%v'", v))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
