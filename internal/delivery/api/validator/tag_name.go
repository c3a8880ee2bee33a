package validator

import (
	"reflect"
	"strings"
)

// jsonFieldName names a field after its json tag, dropping the root struct name
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
