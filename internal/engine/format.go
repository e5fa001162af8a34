package engine

import (
	"fmt"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
	"github.com/tartampluch/untd/internal/config"
)

// FormatKind tags the variants of a FormatSpec.
type FormatKind int

// The closed set of format variants.
const (
	FormatDefault       FormatKind = iota // 2025-03-24
	FormatISO8601                         // 2025-03-24T09:38:29+0900
	FormatJPDate                          // 2025年03月24日
	FormatJPDateWeekday                   // 2025年03月24日(月)
	FormatJPDateTime                      // 2025年03月24日 09時38分
	FormatJPDateTimeSec                   // 2025年03月24日 09時38分29秒
	FormatCustom                          // caller-supplied strftime template
)

// String returns the selector spelling of the kind, for logs and errors.
func (k FormatKind) String() string {
	switch k {
	case FormatDefault:
		return config.SelectorDefault
	case FormatISO8601:
		return config.SelectorISO
	case FormatJPDate:
		return config.SelectorJP
	case FormatJPDateWeekday:
		return config.SelectorJPWD
	case FormatJPDateTime:
		return config.SelectorJPHM
	case FormatJPDateTimeSec:
		return config.SelectorJPHMS
	case FormatCustom:
		return "custom"
	default:
		return fmt.Sprintf("FormatKind(%d)", int(k))
	}
}

// FormatSpec is the tagged choice of output rendering: one of the built-in
// presets, or a custom strftime template carried in Template. The zero value
// selects the default preset.
type FormatSpec struct {
	Kind     FormatKind
	Template string // set only when Kind == FormatCustom
}

// CustomFormat builds the custom-template variant.
func CustomFormat(template string) FormatSpec {
	return FormatSpec{Kind: FormatCustom, Template: template}
}

// ParseFormatSpec maps a format selector to a FormatSpec. The empty string
// and "default" select the default preset, the five named selectors select
// their presets, and anything else is taken verbatim as a custom strftime
// template, matching classic date-tool behavior.
func ParseFormatSpec(selector string) FormatSpec {
	switch selector {
	case "", config.SelectorDefault:
		return FormatSpec{Kind: FormatDefault}
	case config.SelectorISO:
		return FormatSpec{Kind: FormatISO8601}
	case config.SelectorJP:
		return FormatSpec{Kind: FormatJPDate}
	case config.SelectorJPWD:
		return FormatSpec{Kind: FormatJPDateWeekday}
	case config.SelectorJPHM:
		return FormatSpec{Kind: FormatJPDateTime}
	case config.SelectorJPHMS:
		return FormatSpec{Kind: FormatJPDateTimeSec}
	default:
		return CustomFormat(selector)
	}
}

// Formatter renders instants according to a FormatSpec. Weekdays holds the
// localized single-character weekday glyphs indexed by time.Weekday; the
// table is fixed at construction so rendering stays a pure function of its
// arguments.
type Formatter struct {
	Weekdays [7]string
}

// Render produces the textual form of t for the given spec. Strftime
// directives the renderer does not recognize pass through unchanged rather
// than failing the run.
func (f *Formatter) Render(t time.Time, spec FormatSpec) (string, error) {
	switch spec.Kind {
	case FormatDefault:
		return timefmt.Format(t, config.TemplateDefault), nil
	case FormatISO8601:
		return timefmt.Format(t, config.TemplateISO8601), nil
	case FormatJPDate:
		return timefmt.Format(t, config.TemplateJPDate), nil
	case FormatJPDateWeekday:
		date := timefmt.Format(t, config.TemplateJPDate)
		return date + config.WeekdayOpen + f.Weekdays[t.Weekday()] + config.WeekdayClose, nil
	case FormatJPDateTime:
		return timefmt.Format(t, config.TemplateJPDateTime), nil
	case FormatJPDateTimeSec:
		return timefmt.Format(t, config.TemplateJPDateTimeSec), nil
	case FormatCustom:
		if spec.Template == "" {
			return "", fmt.Errorf("%w: empty custom template", ErrFormatRender)
		}
		return timefmt.Format(t, spec.Template), nil
	default:
		return "", fmt.Errorf("%w: unrecognized format kind %d", ErrFormatRender, spec.Kind)
	}
}
