package warehouse

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storhub/bqsync/pkg/logger"
)

// dateLayouts are tried in order when a date arrives as a string.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// unwrap removes a boxed scalar wrapper if the raw value carries one. It
// checks only for a nested "value" key and makes no assumption about the
// specific wrapper type the warehouse client used.
func unwrap(v any) any {
	if m, ok := v.(map[string]any); ok {
		if inner, ok := m["value"]; ok {
			return inner
		}
	}
	return v
}

// ToDate converts a raw date column into a timestamp. A boxed value is
// unwrapped first; absent or unparsable values yield nil.
func ToDate(row Row, field string) *time.Time {
	v, ok := row[field]
	if !ok || v == nil {
		return nil
	}

	switch t := unwrap(v).(type) {
	case time.Time:
		return &t
	case civil.Date:
		ts := t.In(time.UTC)
		return &ts
	case civil.DateTime:
		ts := t.In(time.UTC)
		return &ts
	case string:
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, strings.TrimSpace(t)); err == nil {
				return &ts
			}
		}
		return nil
	default:
		return nil
	}
}

// ToDecimal converts a raw numeric column into an arbitrary-precision
// decimal rounded to exactly two fractional digits. The value is rendered
// with a fixed '.' separator and no digit grouping before being handed to
// the decimal constructor, so parsing never depends on the host locale.
// Corrupt input is logged and nulled, never raised.
func ToDecimal(row Row, field string) *decimal.Decimal {
	v, ok := row[field]
	if !ok || v == nil {
		return nil
	}

	raw := unwrap(v)
	f, ok := toFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		logger.Warn("invalid numeric value",
			zap.String("field", field),
			zap.Any("value", raw))
		return nil
	}

	rounded := math.Round(f*100) / 100
	formatted := strconv.FormatFloat(rounded, 'f', 2, 64)

	d, err := decimal.NewFromString(formatted)
	if err != nil {
		logger.Warn("failed to process decimal field",
			zap.String("field", field),
			zap.Any("value", raw),
			zap.Error(err))
		return nil
	}
	return &d
}

// ToInteger converts a raw column into a base-10 integer. Absent or
// unparsable values yield nil; fractional numeric input is truncated.
func ToInteger(row Row, field string) *int64 {
	v, ok := row[field]
	if !ok || v == nil {
		return nil
	}

	switch t := v.(type) {
	case int64:
		return &t
	case int:
		n := int64(t)
		return &n
	case int32:
		n := int64(t)
		return &n
	case float64:
		n := int64(t)
		return &n
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			n := int64(f)
			return &n
		}
		return nil
	default:
		return nil
	}
}

// ToString passes a string column through, defaulting to nil when the value
// is absent or empty. Numeric identifiers are rendered in base 10.
func ToString(row Row, field string) *string {
	v, ok := row[field]
	if !ok || v == nil {
		return nil
	}

	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return &t
	case int64:
		s := strconv.FormatInt(t, 10)
		return &s
	case int:
		s := strconv.Itoa(t)
		return &s
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	default:
		return nil
	}
}

// ToBoolString coerces a column that is ambiguously boolean-or-string:
// genuine booleans are stringified, strings pass through unchanged, and
// anything else yields nil.
func ToBoolString(row Row, field string) *string {
	v, ok := row[field]
	if !ok || v == nil {
		return nil
	}

	switch t := v.(type) {
	case bool:
		s := strconv.FormatBool(t)
		return &s
	case string:
		if t == "" {
			return nil
		}
		return &t
	default:
		return nil
	}
}

// toFloat coerces the scalar representations the warehouse client may
// return for numeric columns.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case *big.Rat:
		f, _ := t.Float64()
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
