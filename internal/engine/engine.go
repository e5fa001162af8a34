package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tartampluch/untd/internal/config"
)

// Options carries the raw inputs for one run. Run performs all parsing,
// resolution and rendering, so callers hand over CLI values untouched.
type Options struct {
	// Timestamp optionally replaces the sampled clock time with an absolute
	// unix timestamp in seconds.
	Timestamp *int64

	// Timezone is the zone selector; see ResolveTimezone for accepted forms.
	Timezone string

	// Offset is the relative-offset expression, or "" for none.
	Offset string

	// Count is the number of consecutive calendar days to expand, at least 1.
	Count int

	// Format selects the rendering of each instant.
	Format FormatSpec
}

// Engine computes formatted date strings. The clock is injected so runs are
// deterministic under test; the formatter carries the localized weekday
// glyph table.
type Engine struct {
	Clock     Clock
	Formatter *Formatter
}

// Run executes the pipeline: resolve the timezone, parse the offset, anchor
// the sampled instant, expand the day range, render every instant. The clock
// is sampled exactly once per run. The first failing stage aborts the run and
// no partial output is returned.
func (e *Engine) Run(opts Options) (*Result, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)
	log.Debug(config.MsgRunStarted,
		config.LogKeyTimezone, opts.Timezone,
		config.LogKeyOffset, opts.Offset,
		config.LogKeyCount, opts.Count,
		config.LogKeyFormat, opts.Format.Kind,
	)

	if e.Formatter == nil {
		return nil, errors.New(config.ErrFormatterMissing)
	}

	loc, err := ResolveTimezone(opts.Timezone)
	if err != nil {
		return nil, err
	}

	offset, err := ParseOffset(opts.Offset)
	if err != nil {
		return nil, err
	}

	anchor := offset.Apply(e.now(opts).In(loc))

	instants, err := ExpandRange(anchor, opts.Count)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(instants))
	for i, instant := range instants {
		line, err := e.Formatter.Render(instant, opts.Format)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}

	log.Debug(config.MsgRunFinished,
		config.LogKeyAnchor, anchor.Format(config.DateFormatRFC3339),
		config.LogKeyCount, len(lines),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	return &Result{Anchor: anchor, Instants: instants, Lines: lines}, nil
}

// now samples the injected clock once, or adopts the caller-supplied unix
// timestamp. A nil clock falls back to the system clock.
func (e *Engine) now(opts Options) time.Time {
	if opts.Timestamp != nil {
		return time.Unix(*opts.Timestamp, 0)
	}
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}
