// Package scalar defines the custom GraphQL scalars used by digested types.
package scalar

import (
	"math"
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// DateLayout is the JSON form of a JavaScript Date, always in UTC.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Date carries timestamps such as createdAt and updatedAt.
var Date = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "GraphQL Date type",
	Serialize:   serializeDate,
	ParseValue:  parseDate,
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch v := valueAST.(type) {
		case *ast.StringValue:
			return parseDate(v.Value)
		case *ast.IntValue:
			ms, err := strconv.ParseInt(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			return time.UnixMilli(ms).UTC()
		default:
			return nil
		}
	},
})

// FormatDate renders t the way Date serializes it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func serializeDate(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		return FormatDate(v)
	case *time.Time:
		if v == nil {
			return nil
		}
		return FormatDate(*v)
	case string:
		if t, ok := parseDate(v).(time.Time); ok {
			return FormatDate(t)
		}
		return nil
	default:
		return nil
	}
}

// parseDate accepts RFC 3339 strings, bare dates and epoch milliseconds.
func parseDate(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC()
			}
		}
		return nil
	case *string:
		if v == nil {
			return nil
		}
		return parseDate(*v)
	case int:
		return time.UnixMilli(int64(v)).UTC()
	case int64:
		return time.UnixMilli(v).UTC()
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return time.UnixMilli(int64(v)).UTC()
	case time.Time:
		return v.UTC()
	default:
		return nil
	}
}
