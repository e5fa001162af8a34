package engine

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tartampluch/untd/internal/config"
)

// Offset is a signed relative shift carrying exactly one unit: either a
// calendar-day component or a clock duration. The zero value is the identity
// shift.
type Offset struct {
	// Days holds a calendar-day component. Days are applied with AddDate,
	// which preserves the wall clock across DST transitions.
	Days int

	// Duration holds an hours/minutes/seconds component, applied as an
	// absolute duration.
	Duration time.Duration
}

// IsZero reports whether applying the offset leaves an instant unchanged.
func (o Offset) IsZero() bool {
	return o.Days == 0 && o.Duration == 0
}

// Apply shifts t by the offset.
func (o Offset) Apply(t time.Time) time.Time {
	if o.Days != 0 {
		t = t.AddDate(0, 0, o.Days)
	}
	if o.Duration != 0 {
		t = t.Add(o.Duration)
	}
	return t
}

// ParseOffset parses an expression of the form [sign]<integer><unit>, where
// sign is "-" or an implicit (or explicit) "+" and unit is one of
// "d" (calendar days), "h", "m" or "s". The empty string is the identity
// offset. Any other shape fails with ErrInvalidOffsetFormat, as does a
// magnitude whose shift cannot be represented as a time.Duration.
func ParseOffset(expr string) (Offset, error) {
	if expr == "" {
		return Offset{}, nil
	}

	body := expr
	negative := false
	switch body[0] {
	case '-':
		negative = true
		body = body[1:]
	case '+':
		body = body[1:]
	}

	// At minimum one digit followed by the unit letter.
	if len(body) < 2 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffsetFormat, expr)
	}

	digits := 0
	for digits < len(body) && body[digits] >= '0' && body[digits] <= '9' {
		digits++
	}
	if digits != len(body)-1 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffsetFormat, expr)
	}

	magnitude, err := strconv.Atoi(body[:digits])
	if err != nil {
		return Offset{}, fmt.Errorf("%w: %q: %v", ErrInvalidOffsetFormat, expr, err)
	}

	scale, isDays := unitScale(string(body[digits]))
	if scale == 0 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffsetFormat, expr)
	}
	if int64(magnitude) > math.MaxInt64/int64(scale) {
		return Offset{}, fmt.Errorf("%w: %q: magnitude out of range", ErrInvalidOffsetFormat, expr)
	}

	value := magnitude
	if negative {
		value = -value
	}
	if isDays {
		return Offset{Days: value}, nil
	}
	return Offset{Duration: time.Duration(value) * scale}, nil
}

// unitScale returns the span of one unit and whether the unit counts calendar
// days. A zero scale marks an unknown unit.
func unitScale(unit string) (time.Duration, bool) {
	switch unit {
	case config.UnitDays:
		// Nominal span: days are applied via AddDate, the scale only
		// bounds the magnitude.
		return 24 * time.Hour, true
	case config.UnitHours:
		return time.Hour, false
	case config.UnitMinutes:
		return time.Minute, false
	case config.UnitSeconds:
		return time.Second, false
	default:
		return 0, false
	}
}
