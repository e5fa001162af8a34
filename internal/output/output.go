package output

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/untd/internal/config"
	"github.com/tartampluch/untd/internal/engine"
	"gopkg.in/yaml.v3"
)

// Mode selects the encoding of a run result on stdout.
type Mode string

// The supported encodings.
const (
	ModeText Mode = config.EmitText
	ModeJSON Mode = config.EmitJSON
	ModeYAML Mode = config.EmitYAML
	ModeICal Mode = config.EmitICal
)

// ErrUnknownMode reports an emit selector outside the supported set.
var ErrUnknownMode = errors.New(config.ErrEmitUnknown)

// ParseMode validates an emit selector. The empty string selects text.
func ParseMode(selector string) (Mode, error) {
	switch selector {
	case "", config.EmitText:
		return ModeText, nil
	case config.EmitJSON:
		return ModeJSON, nil
	case config.EmitYAML:
		return ModeYAML, nil
	case config.EmitICal:
		return ModeICal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, selector)
	}
}

// Document is the structured projection of a run used by the JSON and YAML
// encodings.
type Document struct {
	Anchor   string   `json:"anchor" yaml:"anchor"`
	Timezone string   `json:"timezone" yaml:"timezone"`
	Unix     int64    `json:"unix" yaml:"unix"`
	Lines    []string `json:"lines" yaml:"lines"`
}

// NewDocument projects a result into its serializable form.
func NewDocument(res *engine.Result) Document {
	return Document{
		Anchor:   res.Anchor.Format(config.DateFormatRFC3339),
		Timezone: res.Anchor.Location().String(),
		Unix:     res.Anchor.Unix(),
		Lines:    res.Lines,
	}
}

// Render encodes the result for stdout in the requested mode. Every encoding
// ends with a newline.
func Render(mode Mode, res *engine.Result) ([]byte, error) {
	data, err := encode(mode, res)
	if err != nil {
		return nil, err
	}
	slog.Debug(config.MsgEmitEncoded,
		config.LogKeyComponent, config.CompOutput,
		config.LogKeyEmit, string(mode),
		config.LogKeySizeBytes, len(data),
	)
	return data, nil
}

func encode(mode Mode, res *engine.Result) ([]byte, error) {
	switch mode {
	case ModeText:
		return []byte(res.Text() + "\n"), nil
	case ModeJSON:
		data, err := json.MarshalIndent(NewDocument(res), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrEmitEncode, err)
		}
		return append(data, '\n'), nil
	case ModeYAML:
		data, err := yaml.Marshal(NewDocument(res))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrEmitEncode, err)
		}
		return data, nil
	case ModeICal:
		return renderCalendar(res)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}

// renderCalendar encodes the run as an iCalendar feed with one all-day event
// per instant. UIDs are content-derived so repeating a request yields
// byte-identical output.
func renderCalendar(res *engine.Result) ([]byte, error) {
	cal := ical.NewCalendar()

	// Set standard iCalendar headers
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// The anchor doubles as the DTSTAMP so the feed stays reproducible.
	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(res.Anchor.UTC())

	for i, instant := range res.Instants {
		line := res.Lines[i]

		input := fmt.Sprintf(config.FormatHashInput,
			line, instant.Format(config.DateFormatRFC3339), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, uidBase, i, config.ICalDomain))
		event.Props.SetText(config.PropSummary, line)

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(instant)
		event.Props.Set(dtStart)
		event.Props.Set(dtStamp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
