// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"encoding/json"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Rejection reasons
const (
	ReasonInvalidVoter = "Invalid voter"
	ReasonUnderage     = "Underage"
	missingPrefix      = "Missing "
)

// Rules configure a voter validator
type Rules struct {
	MinAge         float64  `json:"min_age" yaml:"min_age"`
	RequiredFields []string `json:"required_fields" yaml:"required_fields"`
}

// Record is a loosely shaped voter value, as decoded from JSON or YAML
type Record map[string]any

// Verdict is the outcome of validating one Record
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Func validates a single voter record
type Func func(Record) Verdict

// NewVoterValidator returns a validation function bound to rules
func NewVoterValidator(rules Rules) Func {
	minAge := rules.MinAge
	required := slices.Clone(rules.RequiredFields)

	return func(voter Record) Verdict {
		if voter == nil {
			return Verdict{Reason: ReasonInvalidVoter}
		}

		for _, field := range required {
			if v, ok := voter[field]; !ok || v == nil {
				return Verdict{Reason: missingPrefix + field}
			}
		}

		if age, ok := voter["age"]; ok {
			if n, ok := loose(age); ok && n < minAge {
				return Verdict{Reason: ReasonUnderage}
			}
		}

		return Verdict{Valid: true}
	}
}

// MissingField reports the field name behind a "Missing <field>" reason
func MissingField(reason string) (string, bool) {
	return strings.CutPrefix(reason, missingPrefix)
}

var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// loose coerces a present age the way a relaxed numeric comparison does:
// null and blank strings are 0, booleans are 0 or 1, and the words
// Infinity and -Infinity are accepted. Values that become NaN report false.
func loose(v any) (float64, bool) {
	switch a := v.(type) {
	case nil:
		return 0, true
	case bool:
		if a {
			return 1, true
		}
		return 0, true
	case string:
		switch s := strings.TrimSpace(a); s {
		case "":
			return 0, true
		case "Infinity", "+Infinity":
			return math.Inf(1), true
		case "-Infinity":
			return math.Inf(-1), true
		}
	}
	return Number(v)
}

// Number coerces a decoded value to float64.
// Strings must hold plain decimal text; anything else reports false.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		text := strings.TrimSpace(n)
		if !decimal.MatchString(text) {
			return 0, false
		}
		f, err := strconv.ParseFloat(text, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
