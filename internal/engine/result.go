package engine

import (
	"strings"
	"time"
)

// Result is the complete outcome of one run. It decouples the output and
// clipboard layers from the computation pipeline.
type Result struct {
	// Anchor is the fully resolved reference instant: the clock sample (or
	// the caller-supplied timestamp) placed in the requested timezone with
	// the offset applied.
	Anchor time.Time

	// Instants is the expanded run of consecutive calendar days, anchor
	// first, in chronological order.
	Instants []time.Time

	// Lines holds the rendered form of each instant, index-aligned with
	// Instants.
	Lines []string
}

// Text returns the newline-joined rendered lines.
func (r *Result) Text() string {
	return strings.Join(r.Lines, "\n")
}
