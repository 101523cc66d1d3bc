package middleware

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/config"
	"github.com/labstack/echo/v4"
)

const uploadFolderKey = "uploadFolder"

// FileField names a multipart field the interceptor accepts and how many
// files it may carry.
type FileField struct {
	Name     string
	MaxCount int
}

// Uploader is the per-route upload interceptor factory. Routes mount one of
// Single/Array/Fields/Any; the parsed files stay buffered on the request and
// handlers pick them up through FormFile/FormFiles.
type Uploader struct {
	cfg    *config.UploadConfig
	folder string
}

// Upload builds an interceptor whose files are tagged with the given
// destination folder, e.g. "category" -> "monsta/category".
func Upload(cfg *config.UploadConfig, folder string) *Uploader {
	full := strings.Trim(cfg.FolderPrefix+"/"+folder, "/")
	return &Uploader{cfg: cfg, folder: full}
}

// Single accepts at most one file under the given field name
func (u *Uploader) Single(field string) echo.MiddlewareFunc {
	return u.interceptor([]FileField{{Name: field, MaxCount: 1}}, false)
}

// Array accepts up to max files under one field name
func (u *Uploader) Array(field string, max int) echo.MiddlewareFunc {
	return u.interceptor([]FileField{{Name: field, MaxCount: max}}, false)
}

// Fields accepts a fixed set of named fields with per-field limits
func (u *Uploader) Fields(fields ...FileField) echo.MiddlewareFunc {
	return u.interceptor(fields, false)
}

// Any accepts files under any field name
func (u *Uploader) Any() echo.MiddlewareFunc {
	return u.interceptor(nil, true)
}

func (u *Uploader) interceptor(fields []FileField, anyField bool) echo.MiddlewareFunc {
	allowed := make(map[string]int, len(fields))
	for _, f := range fields {
		allowed[f.Name] = f.MaxCount
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(uploadFolderKey, u.folder)

			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
				return next(c)
			}

			if err := c.Request().ParseMultipartForm(u.cfg.MaxFileSize); err != nil {
				return apiutil.NewError(http.StatusBadRequest, "Invalid multipart form data")
			}

			form := c.Request().MultipartForm
			if form != nil {
				for field, files := range form.File {
					if !anyField {
						max, ok := allowed[field]
						if !ok {
							return apiutil.NewError(http.StatusBadRequest,
								fmt.Sprintf("Unexpected file field '%s'", field))
						}
						if len(files) > max {
							return apiutil.NewError(http.StatusBadRequest,
								fmt.Sprintf("Too many files for field '%s'. Maximum allowed is %d", field, max))
						}
					}
					for _, fh := range files {
						if fh.Size > u.cfg.MaxFileSize {
							return apiutil.NewError(http.StatusBadRequest,
								fmt.Sprintf("File is too large. Maximum size allowed is %dMB",
									u.cfg.MaxFileSize/(1024*1024)))
						}
					}
				}
			}

			return next(c)
		}
	}
}

// UploadFolder returns the destination folder tagged by the interceptor,
// or "" when the route has no upload interceptor mounted
func UploadFolder(c echo.Context) string {
	folder, _ := c.Get(uploadFolderKey).(string)
	return folder
}

// FormFile returns the first uploaded file under a field, or nil
func FormFile(c echo.Context, field string) *multipart.FileHeader {
	files := FormFiles(c, field)
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// FormFiles returns all uploaded files under a field
func FormFiles(c echo.Context, field string) []*multipart.FileHeader {
	form := c.Request().MultipartForm
	if form == nil {
		return nil
	}
	return form.File[field]
}
