// Package dates resolves heterogeneous resume date strings into exact month
// arithmetic and an experience-level classification. Everything here is a
// pure function; free-text date reasoning never reaches the generative stage.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// YearMonth is a calendar-resolved date at month precision.
type YearMonth struct {
	Year  int
	Month int
}

// monthNames is indexed by month number minus one. Lookup accepts any
// unambiguous leading fragment of at least three letters, which covers both
// full names and common abbreviations like "Sept".
var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var (
	monthYearPattern = regexp.MustCompile(`^([a-zA-Z]+)\s+(\d{4})$`)
	numericPattern   = regexp.MustCompile(`^(\d{1,2})[/-](\d{4})$`)
	isoPattern       = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	yearPattern      = regexp.MustCompile(`^(\d{4})$`)
)

// NormalizeDateToken strips surrounding punctuation and collapses interior
// whitespace so that "Feb. 2023," and "Feb 2023" parse identically.
func NormalizeDateToken(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, ".,;:()[]")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return cleaned
}

// ParseDate resolves a raw date string against a reference date string.
// Accepted forms: the keywords present/current/ongoing (resolved to the
// reference), "Month Year" with full or abbreviated month names, MM/YYYY,
// MM-YYYY, YYYY-MM, and bare four-digit years (month defaults to January).
// The second return value is false when the string is unparseable; callers
// must exclude such roles from duration math, never count them as zero.
func ParseDate(raw string, reference string) (YearMonth, bool) {
	cleaned := strings.ToLower(NormalizeDateToken(raw))
	if cleaned == "" {
		return YearMonth{}, false
	}

	switch cleaned {
	case "present", "current", "ongoing":
		return resolveReference(reference), true
	}

	if m := monthYearPattern.FindStringSubmatch(cleaned); m != nil {
		month, ok := lookupMonth(m[1])
		if !ok {
			return YearMonth{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return YearMonth{Year: year, Month: month}, true
	}

	if m := numericPattern.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		if month < 1 || month > 12 {
			return YearMonth{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return YearMonth{Year: year, Month: month}, true
	}

	if m := isoPattern.FindStringSubmatch(cleaned); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return YearMonth{}, false
		}
		return YearMonth{Year: year, Month: month}, true
	}

	if m := yearPattern.FindStringSubmatch(cleaned); m != nil {
		year, _ := strconv.Atoi(m[1])
		return YearMonth{Year: year, Month: 1}, true
	}

	return YearMonth{}, false
}

// lookupMonth matches a month name or abbreviation of at least three letters.
func lookupMonth(name string) (int, bool) {
	if len(name) < 3 {
		return 0, false
	}
	for i, full := range monthNames {
		if strings.HasPrefix(full, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// resolveReference parses the reference date string, falling back to the
// current month when it is not itself parseable.
func resolveReference(reference string) YearMonth {
	cleaned := strings.ToLower(NormalizeDateToken(reference))

	if m := monthYearPattern.FindStringSubmatch(cleaned); m != nil {
		if month, ok := lookupMonth(m[1]); ok {
			year, _ := strconv.Atoi(m[2])
			return YearMonth{Year: year, Month: month}
		}
	}
	if m := numericPattern.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return YearMonth{Year: year, Month: month}
		}
	}
	if m := isoPattern.FindStringSubmatch(cleaned); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return YearMonth{Year: year, Month: month}
		}
	}

	now := time.Now()
	return YearMonth{Year: now.Year(), Month: int(now.Month())}
}
