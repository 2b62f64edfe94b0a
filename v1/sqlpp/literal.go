package sqlpp

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harbourml/vectorstore/v1/filter"
)

// RenderLiteral converts a constant into its SQL-like literal form.
// Strings are single-quoted with embedded quotes doubled; numerics use
// invariant, round-trippable formatting without grouping separators;
// datetimes and UUIDs render as quoted canonical strings.
func RenderLiteral(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		// Callers rewrite null comparisons to IS [NOT] NULL; a bare
		// NULL literal only appears inside membership lists.
		return "NULL", nil
	case string:
		return quoteString(c), nil
	case bool:
		if c {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.FormatInt(int64(c), 10), nil
	case int32:
		return strconv.FormatInt(int64(c), 10), nil
	case int64:
		return strconv.FormatInt(c, 10), nil
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64), nil
	case decimal.Decimal:
		return c.String(), nil
	case time.Time:
		return quoteString(c.UTC().Format(time.RFC3339Nano)), nil
	case uuid.UUID:
		return quoteString(c.String()), nil
	default:
		return "", fmt.Errorf("%w: %T has no literal form", filter.ErrUnsupportedLiteralType, v)
	}
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
