package mapping

import (
	"encoding/json"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
)

// The coercers below accept the union of value types the adapters actually
// hand us: MySQL driver scans (string, []byte, int64, float64, nil),
// JSON-decoded bodies from the hosted backend (string, float64, bool, nil,
// []any) and already-typed Go values from the in-memory store.

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

func asFloat(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	default:
		return int(asFloat(v))
	}
}

// asBool normalizes whatever the column holds into a boolean. MySQL stores
// these as tinyint, the hosted backend as real booleans, and stray string
// values show up in hand-edited rows.
func asBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return parseBoolString(b)
	case []byte:
		return parseBoolString(string(b))
	default:
		return asFloat(v) != 0
	}
}

func parseBoolString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "f", "no", "null":
		return false
	default:
		return true
	}
}

// asStrings decodes an array column. A malformed JSON value degrades to an
// empty slice for this field only so a single bad column cannot make the
// whole row unreadable.
func asStrings(v any, col string) []string {
	switch a := v.(type) {
	case nil:
		return []string{}
	case []string:
		if a == nil {
			return []string{}
		}
		return a
	case []any:
		out := make([]string, 0, len(a))
		for _, e := range a {
			out = append(out, asString(e))
		}
		return out
	case string:
		return parseStringArray(a, col)
	case []byte:
		return parseStringArray(string(a), col)
	case json.RawMessage:
		return parseStringArray(string(a), col)
	default:
		return []string{}
	}
}

func parseStringArray(s string, col string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		log.Printf("mapping: malformed JSON in column %s, defaulting to empty: %v", col, err)
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Now()
	case time.Time:
		if t.IsZero() {
			return time.Now()
		}
		return t
	case string:
		return parseTimeString(t)
	case []byte:
		return parseTimeString(string(t))
	default:
		return time.Now()
	}
}

func parseTimeString(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
