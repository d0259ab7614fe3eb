package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphenRun  = regexp.MustCompile(`-+`)

	timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(?i:(AM|PM))?$`)
)

// dateLayouts are the accepted input layouts for NormalizeDate. Only
// locale-independent, unambiguous forms are listed; day-first vs
// month-first numeric forms like 02/03/2025 are deliberately absent.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// Slugify converts a title into a URL-safe lowercase slug: trim, strip
// characters outside [a-z0-9\s-], collapse whitespace runs and repeated
// hyphens into single hyphens, and strip leading/trailing hyphens.
// Deterministic, and not unique by itself; uniqueness comes from the
// store's index.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeDate parses input as a calendar date and returns it as
// YYYY-MM-DD. Unrecognized input fails with ErrInvalidFormat.
func NormalizeDate(input string) (string, error) {
	in := strings.TrimSpace(input)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", invalidFormatf("unrecognized date %q", input)
}

// NormalizeTime parses H:MM or HH:MM, optionally suffixed with AM/PM
// (case-insensitive), and returns 24-hour HH:MM. 12 AM maps to 00,
// 12 PM stays 12, other PM hours add 12. Hours above 23 or minutes
// above 59 fail with ErrInvalidFormat.
func NormalizeTime(input string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", invalidFormatf("time %q must be HH:MM or HH:MM AM/PM", input)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return "", invalidFormatf("time %q must be HH:MM or HH:MM AM/PM", input)
	}
	minutes, _ := strconv.Atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}

	if hours > 23 || minutes > 59 {
		return "", invalidFormatf("time %q is out of range", input)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}
