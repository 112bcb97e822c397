package charts

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DataPoint is one backend-shaped record; values are strings or numbers.
type DataPoint map[string]interface{}

type Type string

const (
	TypeLine Type = "line"
	TypeBar  Type = "bar"
)

// Shapes that mark an x axis as a timeline: ISO-ish dates, month names,
// clock times, day names, "Week N", "Q1".."Q4".
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}[-/]\d{2}[-/]\d{2}`),
	regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`),
	regexp.MustCompile(`^\d{1,2}:\d{2}`),
	regexp.MustCompile(`(?i)^(mon|tue|wed|thu|fri|sat|sun)`),
	regexp.MustCompile(`(?i)^week\s*\d+`),
	regexp.MustCompile(`(?i)^q[1-4]`),
}

// Select decides how tabular data reads best. Callers pass arbitrary
// backend-shaped rows without declaring semantics, so the decision is
// inferred from string shape and row count. First match wins:
// forced type, empty → bar, timeline x → line, >20 rows → line,
// ≤5 rows → bar, strictly increasing numeric x → line, default bar.
func Select(data []DataPoint, xKey, yKey string, force Type) Type {
	if force == TypeLine || force == TypeBar {
		return force
	}
	if len(data) == 0 {
		return TypeBar
	}
	if looksLikeTimeline(stringify(data[0][xKey])) {
		return TypeLine
	}
	if len(data) > 20 {
		return TypeLine
	}
	if len(data) <= 5 {
		return TypeBar
	}
	if strictlyIncreasingNumeric(data, xKey) {
		return TypeLine
	}
	return TypeBar
}

func looksLikeTimeline(value string) bool {
	value = strings.TrimSpace(value)
	for _, pattern := range timePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

func strictlyIncreasingNumeric(data []DataPoint, xKey string) bool {
	for i := 1; i < len(data); i++ {
		prev, okPrev := toNumber(data[i-1][xKey])
		next, okNext := toNumber(data[i][xKey])
		if !okPrev || !okNext || next <= prev {
			return false
		}
	}
	return true
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
