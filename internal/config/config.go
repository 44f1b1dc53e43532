// Package config defines the on-disk configuration file for jsfmt and
// its merge with CLI flags into internal/options.Options.
package config

import "github.com/jsfmt/jsfmt/internal/options"

// Config is the top-level configuration decoded from .jsfmtrc.yml. Every
// field is a pointer so the loader can tell "absent from the file" (nil,
// keep the default/CLI value) apart from an explicit zero value.
type Config struct {
	PrintWidth         *int    `yaml:"printWidth"`
	TabWidth           *int    `yaml:"tabWidth"`
	UseTabs            *bool   `yaml:"useTabs"`
	Semi               *bool   `yaml:"semi"`
	SingleQuote        *bool   `yaml:"singleQuote"`
	BracketSpacing     *bool   `yaml:"bracketSpacing"`
	JSXBracketSameLine *bool   `yaml:"jsxBracketSameLine"`
	TrailingComma      *string `yaml:"trailingComma"`
	Parser             *string `yaml:"parser"`
}

// DefaultConfig returns an empty Config: every field absent, so merging
// it with options.Default() changes nothing.
func DefaultConfig() *Config {
	return &Config{}
}

// Merge layers cfg's set fields over base, giving the file-configured
// value wherever cfg set one and leaving base's value (cmd/jsfmt passes
// options.Default() as base) everywhere else. CLI flags win
// over the config file by being merged again after this call, giving
// "defaults < config file < flags" precedence.
func (cfg *Config) Merge(base options.Options) options.Options {
	if cfg == nil {
		return base
	}
	if cfg.PrintWidth != nil {
		base.PrintWidth = *cfg.PrintWidth
	}
	if cfg.TabWidth != nil {
		base.TabWidth = *cfg.TabWidth
	}
	if cfg.UseTabs != nil {
		base.UseTabs = *cfg.UseTabs
	}
	if cfg.Semi != nil {
		base.Semi = *cfg.Semi
	}
	if cfg.SingleQuote != nil {
		base.SingleQuote = *cfg.SingleQuote
	}
	if cfg.BracketSpacing != nil {
		base.BracketSpacing = *cfg.BracketSpacing
	}
	if cfg.JSXBracketSameLine != nil {
		base.JSXBracketSameLine = *cfg.JSXBracketSameLine
	}
	if cfg.TrailingComma != nil {
		base.TrailingComma = options.TrailingComma(*cfg.TrailingComma)
	}
	if cfg.Parser != nil {
		base.Parser = options.Parser(*cfg.Parser)
	}
	return base
}
