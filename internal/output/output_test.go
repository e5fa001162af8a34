package output_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/untd/internal/engine"
	"github.com/tartampluch/untd/internal/output"
	"gopkg.in/yaml.v3"
)

// threeDayResult builds the fixture every encoding test renders: a three-day
// run anchored at 2025-03-24T09:38:29+0900.
func threeDayResult() *engine.Result {
	zone := time.FixedZone("+0900", 9*60*60)
	anchor := time.Date(2025, 3, 24, 9, 38, 29, 0, zone)

	res := &engine.Result{Anchor: anchor}
	for i := 0; i < 3; i++ {
		instant := anchor.AddDate(0, 0, i)
		res.Instants = append(res.Instants, instant)
		res.Lines = append(res.Lines, instant.Format("2006-01-02"))
	}
	return res
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		want     output.Mode
		wantErr  bool
	}{
		{"empty selects text", "", output.ModeText, false},
		{"text", "text", output.ModeText, false},
		{"json", "json", output.ModeJSON, false},
		{"yaml", "yaml", output.ModeYAML, false},
		{"ical", "ical", output.ModeICal, false},
		{"unknown selector", "xml", "", true},
		{"case matters", "JSON", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := output.ParseMode(tt.selector)

			if tt.wantErr {
				assert.ErrorIs(t, err, output.ErrUnknownMode)
				assert.ErrorContains(t, err, tt.selector, "The rejected selector must be reported")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Text(t *testing.T) {
	// Text mode is the newline-joined lines plus a final newline for the
	// terminal.
	data, err := output.Render(output.ModeText, threeDayResult())

	require.NoError(t, err)
	assert.Equal(t, "2025-03-24\n2025-03-25\n2025-03-26\n", string(data))
}

func TestRender_JSON(t *testing.T) {
	res := threeDayResult()

	data, err := output.Render(output.ModeJSON, res)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"), "Every encoding ends with a newline")

	var doc output.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2025-03-24T09:38:29+09:00", doc.Anchor)
	assert.Equal(t, "+0900", doc.Timezone)
	assert.Equal(t, res.Anchor.Unix(), doc.Unix)
	assert.Equal(t, res.Lines, doc.Lines)
}

func TestRender_YAML(t *testing.T) {
	res := threeDayResult()

	data, err := output.Render(output.ModeYAML, res)

	require.NoError(t, err)

	var doc output.Document
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, output.NewDocument(res), doc)
	assert.Contains(t, string(data), "lines:")
}

func TestRender_ICal(t *testing.T) {
	res := threeDayResult()

	data, err := output.Render(output.ModeICal, res)

	require.NoError(t, err)
	ics := string(data)

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "PRODID:-//untd//Engine//EN")
	assert.Equal(t, 3, strings.Count(ics, "BEGIN:VEVENT"), "One event per instant")

	// Each rendered line becomes an all-day event on its calendar date.
	assert.Contains(t, ics, "SUMMARY:2025-03-24")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250324")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250326")

	// The DTSTAMP is pinned to the anchor, not the wall clock.
	assert.Contains(t, ics, "DTSTAMP:20250324T003829Z")
}

func TestRender_ICalDeterministic(t *testing.T) {
	// Property: identical runs must produce byte-identical feeds, UIDs
	// included, so calendar clients never see phantom updates.
	res := threeDayResult()

	first, err := output.Render(output.ModeICal, res)
	require.NoError(t, err)
	second, err := output.Render(output.ModeICal, res)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_ICalDistinctUIDs(t *testing.T) {
	data, err := output.Render(output.ModeICal, threeDayResult())
	require.NoError(t, err)

	var uids []string
	for _, line := range strings.Split(string(data), "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			uids = append(uids, line)
		}
	}

	require.Len(t, uids, 3)
	seen := make(map[string]bool)
	for _, uid := range uids {
		assert.False(t, seen[uid], "UID %q repeats", uid)
		assert.True(t, strings.HasSuffix(uid, "@untd"), "UIDs carry the product domain")
		seen[uid] = true
	}
}

func TestRender_UnknownMode(t *testing.T) {
	data, err := output.Render(output.Mode("xml"), threeDayResult())

	assert.ErrorIs(t, err, output.ErrUnknownMode)
	assert.Nil(t, data)
}

func TestNewDocument(t *testing.T) {
	res := threeDayResult()

	doc := output.NewDocument(res)

	assert.Equal(t, res.Anchor.Format(time.RFC3339), doc.Anchor)
	assert.Equal(t, "+0900", doc.Timezone, "The timezone is the resolved location name")
	assert.Equal(t, res.Anchor.Unix(), doc.Unix)
	assert.Equal(t, []string{"2025-03-24", "2025-03-25", "2025-03-26"}, doc.Lines)
}
