package engine

import "errors"

// Error kinds reported by the engine. Each failure is wrapped with the
// offending input, so callers match the kind with errors.Is and still see
// what was rejected.
var (
	// ErrInvalidOffsetFormat reports an offset expression that does not
	// match [sign]<integer><unit> with unit one of d, h, m, s.
	ErrInvalidOffsetFormat = errors.New("invalid offset format")

	// ErrUnknownTimezone reports a selector that is neither a shortcut,
	// a fixed numeric offset, nor a loadable IANA zone name.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrInvalidRangeCount reports a day-range count below 1.
	ErrInvalidRangeCount = errors.New("invalid range count")

	// ErrFormatRender reports a FormatSpec that cannot be rendered:
	// an empty custom template or an unrecognized kind.
	ErrFormatRender = errors.New("format render failed")
)
