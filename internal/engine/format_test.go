package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/untd/internal/config"
	"github.com/tartampluch/untd/internal/engine"
)

func TestFormatterRender_Presets(t *testing.T) {
	// 2025-03-24 is a Monday; 09:38:29 exercises zero-padding in every field.
	instant := time.Date(2025, 3, 24, 9, 38, 29, 0, plusNine())
	formatter := &engine.Formatter{Weekdays: japaneseWeekdays()}

	tests := []struct {
		name     string
		selector string
		want     string
	}{
		{"default", config.SelectorDefault, "2025-03-24"},
		{"iso", config.SelectorISO, "2025-03-24T09:38:29+0900"},
		{"jp", config.SelectorJP, "2025年03月24日"},
		{"jpwd", config.SelectorJPWD, "2025年03月24日(月)"},
		{"jphm", config.SelectorJPHM, "2025年03月24日 09時38分"},
		{"jphms", config.SelectorJPHMS, "2025年03月24日 09時38分29秒"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatter.Render(instant, engine.ParseFormatSpec(tt.selector))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatterRender_WeekdayGlyphCycle(t *testing.T) {
	// Scenario: one render per weekday across a full week, Sunday first.
	formatter := &engine.Formatter{Weekdays: japaneseWeekdays()}
	spec := engine.ParseFormatSpec(config.SelectorJPWD)

	// 2025-03-23 is a Sunday.
	sunday := time.Date(2025, 3, 23, 12, 0, 0, 0, plusNine())
	wantGlyphs := []string{"日", "月", "火", "水", "木", "金", "土"}

	for i, glyph := range wantGlyphs {
		line, err := formatter.Render(sunday.AddDate(0, 0, i), spec)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(line, "("+glyph+")"),
			"Day %d of the week must close with (%s), got %s", i, glyph, line)
	}
}

func TestFormatterRender_CustomTemplates(t *testing.T) {
	instant := time.Date(2025, 3, 24, 9, 38, 29, 0, plusNine())
	formatter := &engine.Formatter{Weekdays: japaneseWeekdays()}

	tests := []struct {
		name     string
		template string
		want     string
		desc     string
	}{
		{
			name:     "slash date with time",
			template: "%Y/%m/%d %H:%M",
			want:     "2025/03/24 09:38",
		},
		{
			name:     "literal text survives",
			template: "date: %Y-%m-%d!",
			want:     "date: 2025-03-24!",
		},
		{
			name:     "unrecognized directive passes through",
			template: "%Y %q",
			want:     "2025 %q",
			desc:     "Unknown directives are copied verbatim, not rejected",
		},
		{
			name:     "escaped percent",
			template: "100%%",
			want:     "100%",
		},
		{
			name:     "zone offset",
			template: "%z",
			want:     "+0900",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatter.Render(instant, engine.CustomFormat(tt.template))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got, tt.desc)
		})
	}
}

func TestFormatterRender_EmptyCustomTemplate(t *testing.T) {
	formatter := &engine.Formatter{Weekdays: japaneseWeekdays()}

	got, err := formatter.Render(time.Now(), engine.CustomFormat(""))

	assert.ErrorIs(t, err, engine.ErrFormatRender)
	assert.Empty(t, got)
}

func TestFormatterRender_UnknownKind(t *testing.T) {
	formatter := &engine.Formatter{Weekdays: japaneseWeekdays()}

	got, err := formatter.Render(time.Now(), engine.FormatSpec{Kind: engine.FormatKind(99)})

	assert.ErrorIs(t, err, engine.ErrFormatRender)
	assert.Empty(t, got)
}

func TestFormatterRender_Deterministic(t *testing.T) {
	// Property: rendering is a pure function of the instant and the spec.
	instant := time.Date(2025, 3, 24, 9, 38, 29, 0, plusNine())
	first := &engine.Formatter{Weekdays: japaneseWeekdays()}
	second := &engine.Formatter{Weekdays: japaneseWeekdays()}

	for _, selector := range []string{
		config.SelectorDefault,
		config.SelectorISO,
		config.SelectorJPWD,
		"%Y-%m-%dT%H:%M:%S%z",
	} {
		spec := engine.ParseFormatSpec(selector)

		a, err := first.Render(instant, spec)
		require.NoError(t, err)
		b, err := first.Render(instant, spec)
		require.NoError(t, err)
		c, err := second.Render(instant, spec)
		require.NoError(t, err)

		assert.Equal(t, a, b, "Repeated renders must match")
		assert.Equal(t, a, c, "Renders must not depend on formatter identity")
	}
}

func TestFormatterRender_DateAgreement(t *testing.T) {
	// Property: default and iso agree on the calendar-date component for the
	// same instant, including at local midnight.
	formatter := &engine.Formatter{Weekdays: japaneseWeekdays()}
	instants := []time.Time{
		time.Date(2025, 3, 24, 0, 0, 0, 0, plusNine()),
		time.Date(2025, 3, 24, 23, 59, 59, 0, plusNine()),
		time.Date(2025, 12, 31, 12, 30, 0, 0, plusNine()),
	}

	for _, instant := range instants {
		date, err := formatter.Render(instant, engine.ParseFormatSpec(config.SelectorDefault))
		require.NoError(t, err)
		iso, err := formatter.Render(instant, engine.ParseFormatSpec(config.SelectorISO))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(iso, date+"T"),
			"ISO rendering %s must extend the default date %s", iso, date)
	}
}

func TestFormatKind_String(t *testing.T) {
	tests := []struct {
		kind engine.FormatKind
		want string
	}{
		{engine.FormatDefault, config.SelectorDefault},
		{engine.FormatISO8601, config.SelectorISO},
		{engine.FormatJPDate, config.SelectorJP},
		{engine.FormatJPDateWeekday, config.SelectorJPWD},
		{engine.FormatJPDateTime, config.SelectorJPHM},
		{engine.FormatJPDateTimeSec, config.SelectorJPHMS},
		{engine.FormatCustom, "custom"},
		{engine.FormatKind(99), "FormatKind(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestParseFormatSpec(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     engine.FormatSpec
	}{
		{"empty selects default", "", engine.FormatSpec{Kind: engine.FormatDefault}},
		{"default", "default", engine.FormatSpec{Kind: engine.FormatDefault}},
		{"iso", "iso", engine.FormatSpec{Kind: engine.FormatISO8601}},
		{"jp", "jp", engine.FormatSpec{Kind: engine.FormatJPDate}},
		{"jpwd", "jpwd", engine.FormatSpec{Kind: engine.FormatJPDateWeekday}},
		{"jphm", "jphm", engine.FormatSpec{Kind: engine.FormatJPDateTime}},
		{"jphms", "jphms", engine.FormatSpec{Kind: engine.FormatJPDateTimeSec}},
		{
			name:     "template becomes custom",
			selector: "%Y/%m/%d",
			want:     engine.FormatSpec{Kind: engine.FormatCustom, Template: "%Y/%m/%d"},
		},
		{
			name:     "unknown word becomes custom",
			selector: "fancy",
			want:     engine.FormatSpec{Kind: engine.FormatCustom, Template: "fancy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ParseFormatSpec(tt.selector))
		})
	}
}
