package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// metadataFields are bookkeeping columns never reported as changes.
var metadataFields = map[string]struct{}{
	"id":          {},
	"create_time": {},
	"update_time": {},
	"created_at":  {},
	"updated_at":  {},
	"deleted_at":  {},
}

var timeType = reflect.TypeOf(time.Time{})

// Changes compares two values of the same struct type field by field and returns
// the fields whose values differ, keyed by json name, holding desired's value.
// Models keep json names equal to column names so the result can be passed to
// gorm's Updates directly. Relation fields (slices, nested structs) are ignored.
func Changes(current, desired interface{}, exclude ...string) (map[string]interface{}, error) {
	cv, err := structValue(current)
	if err != nil {
		return nil, err
	}
	dv, err := structValue(desired)
	if err != nil {
		return nil, err
	}
	if cv.Type() != dv.Type() {
		return nil, fmt.Errorf("diff: type mismatch %s != %s", cv.Type(), dv.Type())
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		skip[name] = struct{}{}
	}

	changes := make(map[string]interface{})
	t := dv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || isRelation(f.Type) {
			continue
		}
		name := fieldName(f)
		if name == "" {
			continue
		}
		if _, ok := metadataFields[name]; ok {
			continue
		}
		if _, ok := skip[name]; ok {
			continue
		}
		a, err := json.Marshal(cv.Field(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("diff: field %s: %w", name, err)
		}
		b, err := json.Marshal(dv.Field(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("diff: field %s: %w", name, err)
		}
		if !bytes.Equal(a, b) {
			changes[name] = dv.Field(i).Interface()
		}
	}
	return changes, nil
}

func structValue(v interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("diff: nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("diff: %s is not a struct", rv.Type())
	}
	return rv, nil
}

func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return strings.ToLower(f.Name)
}

func isRelation(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice:
		return t.Elem().Kind() != reflect.Uint8
	case reflect.Struct:
		return t != timeType
	case reflect.Map:
		return true
	}
	return false
}
