package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/strmatch/internal/config"
	apperrors "github.com/Aman-CERP/strmatch/internal/errors"
	"github.com/Aman-CERP/strmatch/internal/logging"
	"github.com/Aman-CERP/strmatch/internal/output"
	"github.com/Aman-CERP/strmatch/internal/scanner"
	"github.com/Aman-CERP/strmatch/internal/textenc"
	"github.com/Aman-CERP/strmatch/internal/ui"
	"github.com/Aman-CERP/strmatch/pkg/matcher"
)

// searchOptions holds CLI flags for the root search command.
type searchOptions struct {
	text       string
	file       string
	dir        string
	ignoreCase bool
	algorithm  string
	encoding   string
	extensions []string
	format     string
	noColor    bool
	noProgress bool
}

// runSearch resolves flags against the configuration, compiles the
// pattern, and dispatches to the selected search mode.
func runSearch(cmd *cobra.Command, pattern string, opts searchOptions) error {
	mode, target, err := resolveTarget(cmd, opts)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	applyConfig(cmd, &opts, cfg)

	// Logging failures must not block a search; the run proceeds unlogged.
	if cleanup := setupRunLogging(cfg); cleanup != nil {
		defer cleanup()
	}

	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	alg, err := matcher.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnknownAlgorithm, err).
			WithSuggestion("valid algorithms: boyer-moore, naive")
	}

	enc, err := textenc.Resolve(opts.encoding)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnknownEncoding, err).
			WithSuggestion("run 'strmatch encodings' to list supported names")
	}

	m, err := matcher.New(pattern,
		matcher.WithAlgorithm(alg),
		matcher.WithIgnoreCase(opts.ignoreCase))
	if err != nil {
		return mapMatcherError(err)
	}

	slog.Info("search_started",
		slog.Int("pattern_runes", utf8.RuneCountInString(pattern)),
		slog.String("mode", mode),
		slog.String("algorithm", alg.String()),
		slog.String("encoding", enc.Name()),
		slog.Bool("ignore_case", opts.ignoreCase))

	useColor := resolveColor(cmd.OutOrStdout(), opts.noColor, cfg.Output.Color)

	summary := output.Summary{
		Pattern:    pattern,
		Algorithm:  alg.String(),
		IgnoreCase: opts.ignoreCase,
		Mode:       mode,
	}

	start := time.Now()
	run := &output.Run{}

	switch mode {
	case output.ModeInline:
		sc := scanner.New(m, nil)
		run.Inline = sc.Text(target)
		summary.TotalMatches = len(run.Inline)

	case output.ModeFile:
		sc := scanner.New(m, &scanner.Options{Encoding: enc})
		result, err := sc.File(target)
		if err != nil {
			slog.Error("search_failed", slog.String("error", err.Error()))
			return err
		}
		summary.Encoding = enc.Name()
		summary.FilesScanned = 1
		summary.TotalMatches = len(result.Matches)
		run.Files = []scanner.FileResult{*result}

	case output.ModeDir:
		renderer := newProgressRenderer(cmd.OutOrStdout(), pattern, format, useColor, opts, cfg)
		report, err := runDirScan(cmd, renderer, m, enc, target, opts.extensions, start)
		if err != nil {
			slog.Error("search_failed", slog.String("error", err.Error()))
			return err
		}
		summary.Encoding = enc.Name()
		summary.FilesScanned = report.Scanned()
		summary.FilesSkipped = report.Skipped()
		summary.TotalMatches = report.TotalMatches()
		run.Files = report.Files
	}

	summary.Elapsed = time.Since(start)
	run.Summary = summary

	slog.Info("search_complete",
		slog.String("mode", mode),
		slog.Int("files_scanned", summary.FilesScanned),
		slog.Int("files_skipped", summary.FilesSkipped),
		slog.Int("matches", summary.TotalMatches),
		slog.Duration("elapsed", summary.Elapsed))

	reporter := output.NewReporter(cmd.OutOrStdout(), useColor)
	return reporter.Render(run, format)
}

// runDirScan feeds directory scan progress into the renderer. The
// renderer is torn down before this returns, so TUI mode never overlaps
// the rendered results.
func runDirScan(cmd *cobra.Command, renderer ui.Renderer, m matcher.Matcher, enc *textenc.Encoding, target string, extensions []string, start time.Time) (*scanner.Report, error) {
	if err := renderer.Start(cmd.Context()); err != nil {
		renderer = ui.NopRenderer{}
	}
	defer func() { _ = renderer.Stop() }()

	progress := func(done, total int, name string, scanErr error) {
		renderer.UpdateProgress(ui.ProgressEvent{
			Stage:       ui.StageScan,
			Current:     done,
			Total:       total,
			CurrentFile: name,
		})
		if scanErr != nil {
			renderer.AddError(ui.ErrorEvent{File: name, Err: scanErr, IsWarn: true})
		}
	}

	sc := scanner.New(m, &scanner.Options{
		Encoding:   enc,
		Extensions: extensions,
		Progress:   progress,
	})

	renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageEnumerate,
		Message: "Enumerating files...",
	})

	report, err := sc.Dir(target)
	if err != nil {
		return nil, err
	}

	renderer.Complete(ui.CompletionStats{
		Files:    report.Scanned(),
		Skipped:  report.Skipped(),
		Matches:  report.TotalMatches(),
		Duration: time.Since(start),
	})

	return report, nil
}

// resolveTarget checks that exactly one target selector was passed and
// returns the search mode with its target value.
func resolveTarget(cmd *cobra.Command, opts searchOptions) (string, string, error) {
	var selected []string
	for _, name := range []string{"text", "file", "dir"} {
		if cmd.Flags().Changed(name) {
			selected = append(selected, "--"+name)
		}
	}

	switch len(selected) {
	case 0:
		return "", "", apperrors.UsageError(apperrors.ErrCodeNoTarget,
			"no search target selected").
			WithSuggestion("pass exactly one of --text, --file, or --dir")
	case 1:
	default:
		return "", "", apperrors.UsageError(apperrors.ErrCodeMultipleTargets,
			fmt.Sprintf("conflicting search targets: %s", strings.Join(selected, ", "))).
			WithSuggestion("pass exactly one of --text, --file, or --dir")
	}

	switch selected[0] {
	case "--text":
		return output.ModeInline, opts.text, nil
	case "--file":
		return output.ModeFile, opts.file, nil
	default:
		return output.ModeDir, opts.dir, nil
	}
}

// applyConfig fills unset flags from the loaded configuration.
func applyConfig(cmd *cobra.Command, opts *searchOptions, cfg *config.Config) {
	if opts.algorithm == "" {
		opts.algorithm = cfg.Defaults.Algorithm
	}
	if opts.encoding == "" {
		opts.encoding = cfg.Defaults.Encoding
	}
	if opts.format == "" {
		opts.format = cfg.Output.Format
	}
	if len(opts.extensions) == 0 {
		opts.extensions = cfg.Directory.Extensions
	}
	if !cmd.Flags().Changed("ignore-case") {
		opts.ignoreCase = cfg.Defaults.IgnoreCase
	}
}

// setupRunLogging starts file logging for one run and installs the logger
// as the slog default. Returns nil when the logging subsystem is
// unavailable.
func setupRunLogging(cfg *config.Config) func() {
	logCfg := logging.Config{
		Level:     cfg.Logging.Level,
		FilePath:  cfg.Logging.File,
		MaxSizeMB: cfg.Logging.MaxSizeMB,
		MaxFiles:  cfg.Logging.MaxFiles,
	}
	if debugMode {
		logCfg.Level = "debug"
	}
	if logFile != "" {
		logCfg.FilePath = logFile
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging unavailable: %v\n", err)
		return nil
	}
	slog.SetDefault(logger)
	return cleanup
}

// mapMatcherError converts matcher sentinels into structured errors.
func mapMatcherError(err error) error {
	switch {
	case errors.Is(err, matcher.ErrEmptyPattern):
		return apperrors.UsageError(apperrors.ErrCodeEmptyPattern,
			"search pattern must not be empty")
	case errors.Is(err, matcher.ErrPatternTooLong):
		return apperrors.Wrap(apperrors.ErrCodePatternBound, err)
	case errors.Is(err, matcher.ErrUnknownAlgorithm):
		return apperrors.Wrap(apperrors.ErrCodeUnknownAlgorithm, err)
	default:
		return apperrors.InternalError("failed to compile pattern", err)
	}
}

// resolveColor decides whether to style output. The config's "auto"
// honors the NO_COLOR convention and falls back to TTY detection.
func resolveColor(out io.Writer, noColorFlag bool, mode string) bool {
	if noColorFlag || ui.DetectNoColor() {
		return false
	}
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	default:
		return ui.IsTTY(out)
	}
}

// newProgressRenderer picks the directory scan progress display.
// Progress never writes into piped output: JSON runs and non-TTY stdout
// stay silent unless plain progress was explicitly requested.
func newProgressRenderer(out io.Writer, pattern, format string, useColor bool, opts searchOptions, cfg *config.Config) ui.Renderer {
	mode := strings.ToLower(cfg.Output.Progress)
	if opts.noProgress || mode == "off" || format == output.FormatJSON {
		return ui.NopRenderer{}
	}
	if !ui.IsTTY(out) && mode != "plain" {
		return ui.NopRenderer{}
	}
	return ui.NewRenderer(ui.NewConfig(out,
		ui.WithForcePlain(mode == "plain"),
		ui.WithNoColor(!useColor),
		ui.WithPattern(pattern)))
}
