// Package options validates and defaults the style option bag described
// in spec.md §3, the "Options normaliser" row of §2's component table.
package options

import "fmt"

// TrailingComma selects how trailing commas are emitted in
// comma-separated lists that permit one (spec.md §4.2).
type TrailingComma string

const (
	TrailingCommaNone TrailingComma = "none"
	TrailingCommaES5  TrailingComma = "es5"
	TrailingCommaAll  TrailingComma = "all"
)

// Parser identifies which reference grammar profile to parse with.
// spec.md §3 leaves the supported identifiers open to whatever the
// external parser collaborator accepts; this repo's reference parser
// (internal/jsparser) accepts exactly "jsfmt".
type Parser string

const DefaultParser Parser = "jsfmt"

// Options is the normalised style bag every core component reads from.
// Construct one with Default() and override fields, or use Normalize to
// validate a partially-populated bag (e.g. one decoded from YAML/CLI
// flags) and fill in defaults.
type Options struct {
	PrintWidth          int
	TabWidth            int
	UseTabs             bool
	Semi                bool
	SingleQuote         bool
	BracketSpacing      bool
	JSXBracketSameLine  bool
	TrailingComma       TrailingComma
	Parser              Parser
	RangeStart          int
	RangeEnd            int
}

// Default returns the option bag spec.md §3 specifies as defaults.
func Default() Options {
	return Options{
		PrintWidth:         80,
		TabWidth:           2,
		UseTabs:            false,
		Semi:               true,
		SingleQuote:        false,
		BracketSpacing:     true,
		JSXBracketSameLine: false,
		TrailingComma:      TrailingCommaNone,
		Parser:             DefaultParser,
		RangeStart:         0,
		RangeEnd:           -1, // sentinel for "+∞", resolved by Normalize against source length.
	}
}

// Normalize fills zero-valued numeric and string fields in o from
// Default() and validates the result, rejecting anything spec.md §3
// doesn't enumerate — "Unknown options are rejected" is the normaliser's
// central contract. Boolean fields are kept as given, since false is a
// valid explicit setting for each of them; a completely zero Options{}
// is taken as Default().
func Normalize(o Options, sourceLen int) (Options, error) {
	d := Default()
	if o == (Options{}) {
		o = d
	}

	if o.PrintWidth == 0 {
		o.PrintWidth = d.PrintWidth
	}
	if o.TabWidth == 0 {
		o.TabWidth = d.TabWidth
	}
	if o.TrailingComma == "" {
		o.TrailingComma = d.TrailingComma
	}
	if o.Parser == "" {
		o.Parser = d.Parser
	}
	if o.RangeEnd == 0 {
		o.RangeEnd = sourceLen
	}
	if o.RangeEnd < 0 {
		o.RangeEnd = sourceLen
	}

	if o.PrintWidth < 0 {
		return Options{}, fmt.Errorf("options: printWidth must be >= 0, got %d", o.PrintWidth)
	}
	if o.TabWidth <= 0 {
		return Options{}, fmt.Errorf("options: tabWidth must be > 0, got %d", o.TabWidth)
	}
	switch o.TrailingComma {
	case TrailingCommaNone, TrailingCommaES5, TrailingCommaAll:
	default:
		return Options{}, fmt.Errorf("options: unknown trailingComma %q", o.TrailingComma)
	}
	if o.Parser != DefaultParser {
		return Options{}, fmt.Errorf("options: unknown parser %q", o.Parser)
	}
	if o.RangeStart < 0 || o.RangeStart > sourceLen {
		return Options{}, fmt.Errorf("options: rangeStart %d out of bounds [0, %d]", o.RangeStart, sourceLen)
	}
	if o.RangeEnd < o.RangeStart || o.RangeEnd > sourceLen {
		return Options{}, fmt.Errorf("options: rangeEnd %d out of bounds [%d, %d]", o.RangeEnd, o.RangeStart, sourceLen)
	}

	return o, nil
}

// IsFullRange reports whether o selects the entire source rather than a
// sub-range, letting the pipeline skip the range-format driver (spec.md
// §4.5) entirely for the common case.
func (o Options) IsFullRange(sourceLen int) bool {
	return o.RangeStart == 0 && (o.RangeEnd == sourceLen || o.RangeEnd < 0)
}
