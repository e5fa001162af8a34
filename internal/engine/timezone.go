package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/untd/internal/config"
)

// ResolveTimezone maps a selector to a concrete *time.Location. The selector
// is resolved once per run and every instant of that run carries the result.
//
// Accepted forms:
//   - "" or "local": the process-local timezone
//   - "UTC": Coordinated Universal Time
//   - "JST": shortcut for Asia/Tokyo
//   - a fixed numeric offset such as "+0900" or "-05:30"
//   - an IANA zone name such as "Europe/Paris"
//
// Anything else fails with ErrUnknownTimezone.
func ResolveTimezone(selector string) (*time.Location, error) {
	switch {
	case selector == "" || strings.EqualFold(selector, config.SelectorLocal):
		return time.Local, nil
	case strings.EqualFold(selector, config.SelectorUTC):
		return time.UTC, nil
	case strings.EqualFold(selector, config.SelectorJST):
		loc, err := time.LoadLocation(config.ZoneJST)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTimezone, selector, err)
		}
		return loc, nil
	}

	if loc, ok := parseFixedOffset(selector); ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, selector)
	}
	return loc, nil
}

// parseFixedOffset recognizes ±HHMM and ±HH:MM selectors and builds a fixed
// zone named after the selector itself.
func parseFixedOffset(selector string) (*time.Location, bool) {
	if len(selector) == 0 || (selector[0] != '+' && selector[0] != '-') {
		return nil, false
	}

	digits := selector[1:]
	if len(digits) == 5 && digits[2] == ':' {
		digits = digits[:2] + digits[3:]
	}
	if len(digits) != 4 {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}

	hours, _ := strconv.Atoi(digits[:2])
	minutes, _ := strconv.Atoi(digits[2:])
	if hours > 23 || minutes > 59 {
		return nil, false
	}

	seconds := hours*3600 + minutes*60
	if selector[0] == '-' {
		seconds = -seconds
	}
	return time.FixedZone(selector, seconds), true
}
