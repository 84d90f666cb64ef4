package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"litlint/internal/checker"
	"litlint/internal/diag"
	"litlint/internal/diagfmt"
	"litlint/internal/driver"
	"litlint/internal/literal"
	"litlint/internal/observ"
	"litlint/internal/project"
	"litlint/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Check string literal quote style in Python sources",
	Long: `Check analyzes one file or a directory tree of *.py files and reports
quote style and raw string prefix issues.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("config", "", "explicit path to litlint.toml (default: nearest above target)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory runs (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	checkCmd.Flags().String("cache-dir", "", "override the cache directory")
	checkCmd.Flags().String("inline-quotes", "", "preferred quote for inline strings (single|double)")
	checkCmd.Flags().String("multiline-quotes", "", "preferred quote for multiline strings (single|double)")
	checkCmd.Flags().String("docstring-quotes", "", "preferred quote for docstrings (single|double)")
	checkCmd.Flags().Bool("avoid-escape", true, "prefer the other quote when it avoids escapes")
	checkCmd.Flags().Bool("include-name", true, "append the linter name to messages")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := resolveConfig(cmd, target)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	timer := observ.NewTimer()

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var (
		fileSet *source.FileSet
		total   *diag.Bag
	)

	if info.IsDir() {
		fileSet, total, err = checkDirectory(cmd, target, cfg, maxDiagnostics, timer)
	} else {
		fileSet, total, err = checkSingleFile(target, cfg, maxDiagnostics, timer)
	}
	if err != nil {
		return err
	}

	renderPhase := timer.Begin("render")
	total.Sort()

	switch format {
	case "json":
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		}
		if err := diagfmt.JSON(os.Stdout, total, fileSet, opts); err != nil {
			return err
		}
	default:
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
			NoContext: quiet,
		}
		diagfmt.Pretty(os.Stdout, total, fileSet, opts)
	}
	timer.End(renderPhase, "")

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if total.Len() > 0 {
		if !quiet && format == "pretty" {
			fmt.Fprintf(os.Stderr, "found %d issue(s)\n", total.Len())
		}
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // diagnostics already printed
	}
	return nil
}

func checkSingleFile(path string, cfg checker.Config, maxDiagnostics int, timer *observ.Timer) (*source.FileSet, *diag.Bag, error) {
	phase := timer.Begin("check")
	result, err := driver.CheckPath(path, cfg, maxDiagnostics)
	if err != nil {
		return nil, nil, err
	}
	timer.End(phase, "1 file")
	return result.FileSet, result.Bag, nil
}

func checkDirectory(cmd *cobra.Command, dir string, cfg checker.Config, maxDiagnostics int, timer *observ.Timer) (*source.FileSet, *diag.Bag, error) {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")

	var cache *driver.DiskCache
	if !noCache {
		var err error
		if cacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cacheDir)
		} else {
			cache, err = driver.OpenDiskCache("litlint")
		}
		if err != nil {
			// The cache is an optimization; a broken cache dir should not
			// stop the run.
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
			cache = nil
		}
	}

	phase := timer.Begin("check")
	fileSet, results, err := driver.CheckDir(cmd.Context(), dir, cfg, driver.CheckDirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	})
	if err != nil {
		return nil, nil, err
	}

	cached := 0
	total := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		if r.FromCache {
			cached++
		}
		total.Merge(r.Bag)
	}
	timer.End(phase, fmt.Sprintf("%d files, %d cached", len(results), cached))

	return fileSet, total, nil
}

// resolveConfig loads the project configuration and overlays any explicitly
// set command-line flags on top of it.
func resolveConfig(cmd *cobra.Command, target string) (checker.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var (
		cfg checker.Config
		err error
	)
	if configPath != "" {
		cfg, err = project.LoadConfig(configPath)
	} else {
		cfg, _, err = project.LoadConfigFor(target)
	}
	if err != nil {
		return checker.Config{}, err
	}

	overlayQuote := func(flag string, dst *literal.Quote) error {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		value, _ := cmd.Flags().GetString(flag)
		q, ok := literal.QuoteFromString(value)
		if !ok {
			return fmt.Errorf("--%s must be single or double, got %q", flag, value)
		}
		*dst = q
		return nil
	}

	if err := overlayQuote("inline-quotes", &cfg.InlineQuote); err != nil {
		return checker.Config{}, err
	}
	if err := overlayQuote("multiline-quotes", &cfg.MultilineQuote); err != nil {
		return checker.Config{}, err
	}
	if err := overlayQuote("docstring-quotes", &cfg.DocstringQuote); err != nil {
		return checker.Config{}, err
	}

	if cmd.Flags().Changed("avoid-escape") {
		cfg.AvoidEscape, _ = cmd.Flags().GetBool("avoid-escape")
	}
	if cmd.Flags().Changed("include-name") {
		cfg.IncludeName, _ = cmd.Flags().GetBool("include-name")
	}

	return cfg, nil
}
