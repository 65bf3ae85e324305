package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/sllt/sqlkit/pkg/sqlkit/logging"
)

var (
	errSelectDataNotPointer = errors.New("[session] select destination is not a pointer")
	errSelectUnsupported    = errors.New("[session] unsupported select destination type")
)

type queryFunc func(ctx context.Context, query string, args ...any) (*sql.Rows, error)

func selectData(ctx context.Context, logger logging.Logger, queryContext queryFunc, data any, query string, args ...any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Destination must be settable so callers can read scanned results.
	rvo := reflect.ValueOf(data)
	if !rvo.IsValid() || rvo.Kind() != reflect.Ptr || rvo.IsNil() {
		if logger != nil {
			logger.Error("select destination is not a settable pointer")
		}

		return errSelectDataNotPointer
	}

	rv := rvo.Elem()

	switch rv.Kind() {
	case reflect.Slice:
		return selectSlice(ctx, logger, queryContext, query, args, rvo, rv)
	case reflect.Struct:
		return selectStruct(ctx, logger, queryContext, query, args, rv)
	default:
		if logger != nil {
			logger.Debugf("a pointer to %v was not expected.", rv.Kind().String())
		}

		return fmt.Errorf("%w: %s", errSelectUnsupported, rv.Kind())
	}
}

func selectSlice(ctx context.Context, logger logging.Logger, queryContext queryFunc, query string, args []any, rvo, rv reflect.Value) error {
	rows, err := queryContext(ctx, query, args...)
	if err != nil {
		if logger != nil {
			logger.Errorf("error running query: %v", err)
		}

		return err
	}

	defer rows.Close()

	for rows.Next() {
		val := reflect.New(rv.Type().Elem())

		if rv.Type().Elem().Kind() == reflect.Struct {
			if err := rowsToStruct(rows, val); err != nil {
				return err
			}
		} else if err := rows.Scan(val.Interface()); err != nil {
			return err
		}

		rv = reflect.Append(rv, val.Elem())
	}

	if err := rows.Err(); err != nil {
		if logger != nil {
			logger.Errorf("error parsing rows : %v", err)
		}

		return err
	}

	if rvo.Elem().CanSet() {
		rvo.Elem().Set(rv)
	}

	return nil
}

func selectStruct(ctx context.Context, logger logging.Logger, queryContext queryFunc, query string, args []any, rv reflect.Value) error {
	rows, err := queryContext(ctx, query, args...)
	if err != nil {
		if logger != nil {
			logger.Errorf("error running query: %v", err)
		}

		return err
	}

	defer rows.Close()

	rowFound := false

	for rows.Next() {
		rowFound = true
		if err := rowsToStruct(rows, rv); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		if logger != nil {
			logger.Errorf("error parsing rows : %v", err)
		}

		return err
	}

	if !rowFound {
		return sql.ErrNoRows
	}

	return nil
}

func rowsToStruct(rows *sql.Rows, vo reflect.Value) error {
	v := vo
	if vo.Kind() == reflect.Ptr {
		v = vo.Elem()
	}

	// Map fields and their indexes by normalized name
	fieldNameIndex := map[string]int{}

	for i := 0; i < v.Type().NumField(); i++ {
		var name string

		f := v.Type().Field(i)
		tag := f.Tag.Get("db")

		if tag != "" {
			name = tag
		} else {
			name = ToSnakeCase(f.Name)
		}

		fieldNameIndex[name] = i
	}

	fields := []any{}
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	for _, c := range columns {
		if i, ok := fieldNameIndex[c]; ok {
			fields = append(fields, v.Field(i).Addr().Interface())
		} else {
			var i any

			fields = append(fields, &i)
		}
	}

	if err := rows.Scan(fields...); err != nil {
		return err
	}

	if vo.CanSet() {
		vo.Set(v)
	}

	return nil
}

var matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
var matchAllCap = regexp.MustCompile("([a-z0-9])([A-Z])")

// ToSnakeCase converts a Go field name to the snake_case column name used
// when no db tag is present.
func ToSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}
