package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	trues := []interface{}{true, "true", "1", 1, float64(1)}
	for _, v := range trues {
		assert.True(t, toBool(v), "expected %v (%T) to coerce to true", v, v)
	}

	falses := []interface{}{false, "false", "0", 0, float64(0), "yes", nil, "TRUE"}
	for _, v := range falses {
		assert.False(t, toBool(v), "expected %v (%T) to coerce to false", v, v)
	}
}

func TestToUint(t *testing.T) {
	cases := []struct {
		in   interface{}
		want uint
		ok   bool
	}{
		{float64(42), 42, true},
		{"42", 42, true},
		{" 7 ", 7, true},
		{float64(-1), 0, false},
		{float64(1.5), 0, false},
		{"abc", 0, false},
		{nil, 0, false},
	}
	for _, tc := range cases {
		got, ok := toUint(tc.in)
		assert.Equal(t, tc.ok, ok, "input %v", tc.in)
		if ok {
			assert.Equal(t, tc.want, got, "input %v", tc.in)
		}
	}
}

func TestToColumn(t *testing.T) {
	assert.Equal(t, "category_name", toColumn("categoryName"))
	assert.Equal(t, "parent_category_id", toColumn("parentCategoryId"))
	assert.Equal(t, "sub_sub_category_status", toColumn("subSubCategoryStatus"))
	assert.Equal(t, "slug", toColumn("slug"))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "product name", humanize("productName"))
	assert.Equal(t, "coupon discount percent", humanize("couponDiscountPercent"))
}

func TestRequiredMessage(t *testing.T) {
	assert.Equal(t, "Category name is required", requiredMessage([]string{"categoryName"}))
	assert.Equal(t, "Color name, color code are required",
		requiredMessage([]string{"colorName", "colorCode"}))
}

func TestBindFieldsJSON(t *testing.T) {
	e := echo.New()
	body := `{"categoryName":"Sofas","categoryOrder":3,"categoryStatus":"true"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	fields, err := bindFields(c)
	assert.NoError(t, err)
	assert.Equal(t, "Sofas", fields["categoryName"])
	assert.Equal(t, float64(3), fields["categoryOrder"])
	assert.Equal(t, "true", fields["categoryStatus"])
}

func TestBindFieldsForm(t *testing.T) {
	e := echo.New()
	form := "categoryName=Chairs&categoryOrder=2"
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, httptest.NewRecorder())

	fields, err := bindFields(c)
	assert.NoError(t, err)
	assert.Equal(t, "Chairs", fields["categoryName"])
	// Form values stay strings until the coercion pass
	assert.Equal(t, "2", fields["categoryOrder"])
}

func TestBindFieldsInvalidJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := bindFields(c)
	assert.Error(t, err)
}
