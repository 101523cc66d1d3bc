package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// bindFields reads the request body into a flat field map. JSON bodies keep
// their decoded types; form and multipart bodies arrive as strings and rely
// on the tolerant coercion helpers below.
func bindFields(c echo.Context) (map[string]interface{}, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		fields := map[string]interface{}{}
		if c.Request().ContentLength == 0 {
			return fields, nil
		}
		if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	}

	params, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	fields := make(map[string]interface{}, len(params))
	for k, v := range params {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	return fields, nil
}

// toBool implements the tolerant boolean contract: "true", true, "1" and 1
// all coerce to true. The dashboard submits booleans as form-encoded strings,
// so this looseness is part of the API contract.
func toBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1"
	case float64:
		return val == 1
	case int:
		return val == 1
	}
	return false
}

// toFloat coerces JSON numbers and numeric strings
func toFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toUint coerces identifier values, which arrive as JSON numbers or strings
func toUint(v interface{}) (uint, bool) {
	f, ok := toFloat(v)
	if !ok || f < 0 || f != float64(uint64(f)) {
		return 0, false
	}
	return uint(f), true
}

func asString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// isBlank reports whether a field value is absent for validation purposes
func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// toColumn converts a camelCase JSON field name to its database column name,
// e.g. "parentCategoryId" -> "parent_category_id". Matches GORM's default
// naming for the model structs.
func toColumn(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// humanize turns a JSON field name into a readable label,
// e.g. "productName" -> "product name".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// capitalize upper-cases the first letter of a label
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// missingRequired returns the required fields that are absent or blank
func missingRequired(fields map[string]interface{}, required []string) []string {
	var missing []string
	for _, f := range required {
		if v, ok := fields[f]; !ok || isBlank(v) {
			missing = append(missing, f)
		}
	}
	return missing
}

// requiredMessage builds the 400 message listing the missing fields
func requiredMessage(missing []string) string {
	labels := make([]string, len(missing))
	for i, f := range missing {
		labels[i] = humanize(f)
	}
	if len(labels) == 1 {
		return fmt.Sprintf("%s is required", capitalize(labels[0]))
	}
	return fmt.Sprintf("%s are required", capitalize(strings.Join(labels, ", ")))
}

// decodeInto copies a coerced field map into a model struct via its JSON tags
func decodeInto(fields map[string]interface{}, entity interface{}) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, entity)
}
