package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the db-tagged exported fields of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	fields, err := modelFields(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(fields.columns...).
		Values(fields.values...).
		Suffix(suffix).
		ToSQL()
}

// SetModel adds one SET clause per db-tagged field of model. A bad model is
// reported by ToSQL.
func (b *UpdateBuilder) SetModel(model any) *UpdateBuilder {
	fields, err := modelFields(model)
	if err != nil {
		b.err = err
		return b
	}
	for i, col := range fields.columns {
		b.Set(col, fields.values[i])
	}
	return b
}

// Columns lists the db column names of a row struct in field order. It is
// meant for package-level column lists and panics on a non-struct.
func Columns(model any) []string {
	fields, err := modelFields(model)
	if err != nil {
		panic(fmt.Sprintf("querybuilder: %v", err))
	}
	return fields.columns
}

type taggedFields struct {
	columns []string
	values  []any
}

func modelFields(model any) (taggedFields, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return taggedFields{}, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return taggedFields{}, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	out := taggedFields{
		columns: make([]string, 0, typ.NumField()),
		values:  make([]any, 0, typ.NumField()),
	}
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		out.columns = append(out.columns, col)
		out.values = append(out.values, value.Field(i).Interface())
	}

	if len(out.columns) == 0 {
		return taggedFields{}, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return out, nil
}
