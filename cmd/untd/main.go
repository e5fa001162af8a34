package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	// Include tzdata in the build for systems without zoneinfo.
	_ "time/tzdata"

	"github.com/tartampluch/untd/internal/clipboard"
	"github.com/tartampluch/untd/internal/config"
	"github.com/tartampluch/untd/internal/engine"
	"github.com/tartampluch/untd/internal/locale"
	"github.com/tartampluch/untd/internal/output"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// are executed before the process terminates. os.Exit() does not run defers,
// so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// cliOptions collects the parsed command-line inputs.
type cliOptions struct {
	timezone    string
	offset      string
	count       int
	format      string
	emit        string
	lang        string
	copyOutput  bool
	debugMode   bool
	showVersion bool
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	opts := parseFlags()

	if opts.showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// Structured logging (slog) goes to stderr; stdout carries the output.
	setupLogging(opts.debugMode)
	logStartupInfo()

	// -------------------------------------------------------------------------
	// 3. Input Validation
	// -------------------------------------------------------------------------
	timestamp, err := parseTimestamp(flag.Args())
	if err != nil {
		return fail(err)
	}

	mode, err := output.ParseMode(opts.emit)
	if err != nil {
		return fail(err)
	}

	// -------------------------------------------------------------------------
	// 4. Dependency Injection
	// -------------------------------------------------------------------------
	tr := locale.New(locale.SystemLanguages(opts.lang)...)

	eng := engine.Engine{
		Clock: engine.RealClock{},
		// The Japanese presets always render Japanese weekday glyphs,
		// whatever the message language is.
		Formatter: &engine.Formatter{Weekdays: tr.WeekdayGlyphs(config.LanguageJapanese)},
	}

	// -------------------------------------------------------------------------
	// 5. Run & Deliver
	// -------------------------------------------------------------------------
	res, err := eng.Run(engine.Options{
		Timestamp: timestamp,
		Timezone:  opts.timezone,
		Offset:    opts.offset,
		Count:     opts.count,
		Format:    engine.ParseFormatSpec(opts.format),
	})
	if err != nil {
		return fail(err)
	}

	data, err := output.Render(mode, res)
	if err != nil {
		return fail(err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fail(err)
	}

	if opts.copyOutput {
		deliverClipboard(os.Stdout, clipboard.System{}, mode, res, data, tr)
	}

	return config.ExitCodeSuccess
}

// parseFlags registers the flag set, long names plus the historical short
// aliases, and parses the command line.
func parseFlags() cliOptions {
	var opts cliOptions

	flag.StringVar(&opts.timezone, config.FlagTimezone, config.DefaultTimezone, config.FlagDescTimezone)
	flag.StringVar(&opts.timezone, config.FlagTimezoneShort, config.DefaultTimezone, config.FlagDescTimezone+config.DescShorthand)
	flag.StringVar(&opts.offset, config.FlagOffset, "", config.FlagDescOffset)
	flag.StringVar(&opts.offset, config.FlagOffsetShort, "", config.FlagDescOffset+config.DescShorthand)
	flag.IntVar(&opts.count, config.FlagRange, config.DefaultRangeCount, config.FlagDescRange)
	flag.IntVar(&opts.count, config.FlagRangeShort, config.DefaultRangeCount, config.FlagDescRange+config.DescShorthand)
	flag.StringVar(&opts.format, config.FlagFormat, config.DefaultFormatSelector, config.FlagDescFormat)
	flag.StringVar(&opts.format, config.FlagFormatShort, config.DefaultFormatSelector, config.FlagDescFormat+config.DescShorthand)
	flag.BoolVar(&opts.copyOutput, config.FlagCopy, config.DefaultCopy, config.FlagDescCopy)
	flag.BoolVar(&opts.copyOutput, config.FlagCopyShort, config.DefaultCopy, config.FlagDescCopy+config.DescShorthand)
	flag.StringVar(&opts.emit, config.FlagEmit, config.DefaultEmit, config.FlagDescEmit)
	flag.StringVar(&opts.emit, config.FlagEmitShort, config.DefaultEmit, config.FlagDescEmit+config.DescShorthand)
	flag.StringVar(&opts.lang, config.FlagLang, "", config.FlagDescLang)
	flag.BoolVar(&opts.debugMode, config.FlagDebug, false, config.FlagDescDebug)
	flag.BoolVar(&opts.showVersion, config.FlagVersion, false, config.FlagDescVersion)
	flag.Parse()

	return opts
}

// parseTimestamp reads the optional positional argument: an absolute unix
// timestamp in seconds that replaces the sampled clock time.
func parseTimestamp(args []string) (*int64, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if len(args) > config.MaxPositionalArgs {
		return nil, fmt.Errorf("%s: %q", config.ErrExtraArgs, args[config.MaxPositionalArgs:])
	}

	ts, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %q", config.ErrTimestampParse, args[0])
	}
	return &ts, nil
}

// deliverClipboard copies the rendered output to the clipboard and writes the
// localized confirmation to w. Failure is logged but never changes the exit
// code; the output already reached stdout.
func deliverClipboard(w io.Writer, copier clipboard.Copier, mode output.Mode, res *engine.Result, data []byte, tr *locale.Translator) {
	text := string(data)
	if mode == output.ModeText {
		text = res.Text()
	}

	if err := copier.Copy(text); err != nil {
		slog.Warn(config.ErrCopyFailed,
			config.LogKeyComponent, config.CompClipboard,
			config.LogKeyError, err,
		)
		return
	}

	// The confirmation stays out of the structured emit modes so their
	// stdout remains machine-parseable.
	if mode == output.ModeText {
		fmt.Fprintln(w, tr.Message(config.TKeyCopied))
	}
}

// fail reports a terminal error on stderr and yields the error exit code.
func fail(err error) int {
	slog.Debug(config.MsgRunFailed,
		config.LogKeyComponent, config.CompMain,
		config.LogKeyError, err,
	)
	fmt.Fprintf(os.Stderr, config.FormatErrOutput, config.AppName, err)
	return config.ExitCodeError
}

// printVersion outputs the build information to stdout and exits.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger on stderr. The default
// level is Warn so normal runs stay quiet; -debug lowers it and records
// source positions.
func setupLogging(debugMode bool) {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}
