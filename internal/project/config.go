package project

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"litlint/internal/checker"
	"litlint/internal/literal"
)

// ConfigFileName is the per-project configuration file litlint looks for.
const ConfigFileName = "litlint.toml"

// ErrBadQuoteValue indicates a quote option outside {single, double}.
var ErrBadQuoteValue = errors.New(`quote option must be "single" or "double"`)

type fileConfig struct {
	Quotes struct {
		Inline      string `toml:"inline"`
		Multiline   string `toml:"multiline"`
		Docstring   string `toml:"docstring"`
		AvoidEscape *bool  `toml:"avoid-escape"`
		IncludeName *bool  `toml:"include-name"`
	} `toml:"quotes"`
}

// LoadConfig parses a litlint.toml and overlays it on the defaults.
// Options left out of the file keep their default values.
func LoadConfig(path string) (checker.Config, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return checker.Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	cfg := checker.DefaultConfig()

	if raw.Quotes.Inline != "" {
		q, ok := literal.QuoteFromString(raw.Quotes.Inline)
		if !ok {
			return checker.Config{}, fmt.Errorf("%s: [quotes].inline = %q: %w", path, raw.Quotes.Inline, ErrBadQuoteValue)
		}
		cfg.InlineQuote = q
	}
	if raw.Quotes.Multiline != "" {
		q, ok := literal.QuoteFromString(raw.Quotes.Multiline)
		if !ok {
			return checker.Config{}, fmt.Errorf("%s: [quotes].multiline = %q: %w", path, raw.Quotes.Multiline, ErrBadQuoteValue)
		}
		cfg.MultilineQuote = q
	}
	if raw.Quotes.Docstring != "" {
		q, ok := literal.QuoteFromString(raw.Quotes.Docstring)
		if !ok {
			return checker.Config{}, fmt.Errorf("%s: [quotes].docstring = %q: %w", path, raw.Quotes.Docstring, ErrBadQuoteValue)
		}
		cfg.DocstringQuote = q
	}
	if raw.Quotes.AvoidEscape != nil {
		cfg.AvoidEscape = *raw.Quotes.AvoidEscape
	}
	if raw.Quotes.IncludeName != nil {
		cfg.IncludeName = *raw.Quotes.IncludeName
	}

	return cfg, nil
}
