package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName = "untd"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion       = "version"
	FlagDebug         = "debug"
	FlagTimezone      = "timezone"
	FlagTimezoneShort = "z"
	FlagOffset        = "offset"
	FlagOffsetShort   = "o"
	FlagRange         = "range"
	FlagRangeShort    = "r"
	FlagFormat        = "format"
	FlagFormatShort   = "f"
	FlagCopy          = "copy"
	FlagCopyShort     = "c"
	FlagEmit          = "emit"
	FlagEmitShort     = "e"
	FlagLang          = "lang"

	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescTimezone = "Timezone: local, UTC, JST, an IANA name, or a fixed offset like +0900"
	FlagDescOffset   = "Relative offset from the anchor, e.g. -1d, +2h, 30m, 45s"
	FlagDescRange    = "Number of consecutive days to emit, starting at the anchor"
	FlagDescFormat   = "Format: default, iso, jp, jpwd, jphm, jphms, or a custom strftime template"
	FlagDescCopy     = "Copy the output to the system clipboard"
	FlagDescEmit     = "Output encoding: text, json, yaml, or ical"
	FlagDescLang     = "Language for messages (en, ja)"
	DescShorthand    = " (shorthand)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
	FormatErrOutput  = "%s: %v\n"

	// MaxPositionalArgs limits the command line to the optional unix
	// timestamp argument.
	MaxPositionalArgs = 1
)

// -----------------------------------------------------------------------------
// Timezone Selectors
// -----------------------------------------------------------------------------

const (
	SelectorLocal = "local"
	SelectorUTC   = "UTC"
	SelectorJST   = "JST"

	// ZoneJST is the IANA zone backing the JST shortcut.
	ZoneJST = "Asia/Tokyo"
)

// -----------------------------------------------------------------------------
// Format Selectors & Output Templates
// -----------------------------------------------------------------------------

const (
	SelectorDefault = "default"
	SelectorISO     = "iso"
	SelectorJP      = "jp"
	SelectorJPWD    = "jpwd"
	SelectorJPHM    = "jphm"
	SelectorJPHMS   = "jphms"
)

// Preset templates in strftime notation. The Japanese presets compose the
// date template so the three variants cannot drift apart.
const (
	TemplateDefault       = "%Y-%m-%d"
	TemplateISO8601       = TemplateDefault + "T%H:%M:%S%z"
	TemplateJPDate        = "%Y年%m月%d日"
	TemplateJPDateTime    = TemplateJPDate + " %H時%M分"
	TemplateJPDateTimeSec = TemplateJPDate + " %H時%M分%S秒"

	// Weekday glyph decoration used by the jpwd preset.
	WeekdayOpen  = "("
	WeekdayClose = ")"
)

// -----------------------------------------------------------------------------
// Offset Units
// -----------------------------------------------------------------------------

const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	UnitSeconds = "s"
)

// -----------------------------------------------------------------------------
// Emit Modes
// -----------------------------------------------------------------------------

const (
	EmitText = "text"
	EmitJSON = "json"
	EmitYAML = "yaml"
	EmitICal = "ical"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultTimezone       = SelectorLocal
	DefaultRangeCount     = 1
	DefaultCopy           = true
	DefaultFormatSelector = SelectorDefault
	DefaultEmit           = EmitText
	DefaultLanguage       = "en"
	LanguageJapanese      = "ja"

	// Environment variables consulted for the message language when -lang
	// is not given.
	EnvLang       = "UNTD_LANG"
	EnvLangSystem = "LANG"
)

// SupportedLanguages defines the list of shipped locales (ISO 639-1).
var SupportedLanguages = []string{"en", "ja"}

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//untd//Engine//EN"
	ICalCalName = "untd dates"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "untd"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// UID Generation
	UIDSalt         = "untd-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	DateFormatRFC3339 = time.RFC3339
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyCopied = "copied"

	TKeyWeekdaySun = "weekday_sun"
	TKeyWeekdayMon = "weekday_mon"
	TKeyWeekdayTue = "weekday_tue"
	TKeyWeekdayWed = "weekday_wed"
	TKeyWeekdayThu = "weekday_thu"
	TKeyWeekdayFri = "weekday_fri"
	TKeyWeekdaySat = "weekday_sat"
)

// TKeysWeekdays lists the weekday translation keys indexed by time.Weekday
// (Sunday first), matching the glyph table the formatter consumes.
var TKeysWeekdays = [7]string{
	TKeyWeekdaySun,
	TKeyWeekdayMon,
	TKeyWeekdayTue,
	TKeyWeekdayWed,
	TKeyWeekdayThu,
	TKeyWeekdayFri,
	TKeyWeekdaySat,
}

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrFormatterMissing = "internal error: formatter is not initialized"
	ErrTimestampParse   = "invalid timestamp"
	ErrExtraArgs        = "unexpected extra arguments"
	ErrEmitUnknown      = "unknown emit mode"
	ErrEmitEncode       = "failed to encode output document"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrCopyFailed       = "failed to copy to clipboard"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgRunStarted    = "Run started"
	MsgRunFinished   = "Run finished"
	MsgRunFailed     = "Run failed"
	MsgEmitEncoded   = "Output encoded"
	MsgCopyDone      = "Output copied to clipboard"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyDuration  = "duration_ms"
	LogKeyTimezone  = "timezone"
	LogKeyOffset    = "offset"
	LogKeyFormat    = "format"
	LogKeyEmit      = "emit"
	LogKeyAnchor    = "anchor"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompEngine    = "engine"
	CompOutput    = "output"
	CompClipboard = "clipboard"
	CompI18n      = "i18n"
)
