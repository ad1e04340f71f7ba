package csvimport

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTimestampLayouts are tried, in order, before any configured layout.
var DefaultTimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

var (
	thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

	truthy = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "y": {}, "on": {}, "active": {}}
	falsy  = map[string]struct{}{"0": {}, "false": {}, "no": {}, "n": {}, "off": {}, "inactive": {}}
)

// stripThousands removes comma grouping such as "1,234.50". A lone comma is
// left alone so "19,99" stays unparsable instead of becoming 1999.
func stripThousands(raw string) string {
	s := strings.TrimSpace(raw)
	if thousandsGrouped.MatchString(s) {
		return strings.ReplaceAll(s, ",", "")
	}

	return s
}

// ToDecimal parses a numeric string. Empty or unparsable input yields def.
func ToDecimal(raw string, def decimal.Decimal) decimal.Decimal {
	s := stripThousands(raw)
	if s == "" {
		return def
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}

	return d
}

// IsDecimal reports whether ToDecimal would parse raw rather than fall back.
func IsDecimal(raw string) bool {
	s := stripThousands(raw)
	if s == "" {
		return false
	}
	_, err := decimal.NewFromString(s)

	return err == nil
}

// ToInt parses an integer. A finite decimal literal is truncated toward
// zero. Empty or unparsable input yields def.
func ToInt(raw string, def int) int {
	s := stripThousands(raw)
	if s == "" {
		return def
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return def
	}

	return int(f)
}

// ToBool recognizes common truthy and falsy tokens, case-insensitively.
// Anything else, including empty input, yields def.
func ToBool(raw string, def bool) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := truthy[s]; ok {
		return true
	}
	if _, ok := falsy[s]; ok {
		return false
	}

	return def
}

// ToTimestamp parses raw with the default layouts, then extra, then as unix
// seconds or milliseconds. Empty or unparsable input yields fallback, so a
// missing date cannot be told apart from the import time afterwards.
func ToTimestamp(raw string, fallback time.Time, extra ...string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback
	}

	for _, layout := range DefaultTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	for _, layout := range extra {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil && len(s) >= 9 {
		// 12 digits or more cannot be seconds before year 5000.
		if len(s) >= 12 {
			return time.UnixMilli(n).UTC()
		}

		return time.Unix(n, 0).UTC()
	}

	return fallback
}

// ToOptionalString returns nil for blank input.
func ToOptionalString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	return &s
}

// NormalizeImagePath rewrites paths under the legacy upload prefix onto
// basePath. Other values are returned trimmed.
func NormalizeImagePath(raw, legacyPrefix, basePath string) string {
	s := strings.TrimSpace(raw)
	if s == "" || legacyPrefix == "" || !strings.HasPrefix(s, legacyPrefix) {
		return s
	}

	rest := strings.TrimLeft(strings.TrimPrefix(s, legacyPrefix), "/")
	if basePath == "" {
		return rest
	}

	return strings.TrimRight(basePath, "/") + "/" + rest
}
