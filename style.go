package printable

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStyle = errors.New("unknown style")
	ErrInvalidStyle = errors.New("invalid style")
)

// Style is the complete configuration of a [View], detached from any
// sequence. Apply it with [View.WithStyle].
type Style struct {
	Separator  string `json:"separator" yaml:"separator"`
	LeftBound  string `json:"left_bound" yaml:"left_bound"`
	RightBound string `json:"right_bound" yaml:"right_bound"`
	// Ellipsis replaces elided elements. Empty means "...".
	Ellipsis string `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty"`
	// Limit caps the number of rendered elements. Zero means no limit.
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`
	// MaxWidth caps the rendering in terminal columns. Zero means no cap.
	MaxWidth int `json:"max_width,omitempty" yaml:"max_width,omitempty"`
}

// Preset styles.
var (
	StyleList  = Style{Separator: ", ", LeftBound: "[", RightBound: "]"} // [a, b]
	StyleSet   = Style{Separator: ", ", LeftBound: "{", RightBound: "}"} // {a, b}
	StyleTuple = Style{Separator: ", ", LeftBound: "(", RightBound: ")"} // (a, b)
	StyleAngle = Style{Separator: ", ", LeftBound: "<", RightBound: ">"} // <a, b>
	StyleBare  = Style{Separator: ", "}                                  // a, b
	StyleLines = Style{Separator: "\n"}                                  // one per line
	StyleSpace = Style{Separator: " "}                                   // a b
)

// presets holds copies taken at init, so assigning to the exported vars
// does not change what ParseStyle and LoadStyle return.
var presets = []struct {
	name  string
	style Style
}{
	{"list", StyleList},
	{"set", StyleSet},
	{"tuple", StyleTuple},
	{"angle", StyleAngle},
	{"bare", StyleBare},
	{"lines", StyleLines},
	{"space", StyleSpace},
}

// Styles returns the names of all preset styles accepted by [ParseStyle].
func Styles() []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.name
	}
	return out
}

// ParseStyle returns the preset style called name, for use with CLI flags.
func ParseStyle(name string) (Style, error) {
	for _, p := range presets {
		if p.name == name {
			return p.style, nil
		}
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// styleDoc uses pointers so an explicit empty string (e.g. `separator: ""`)
// can be told apart from an absent key.
type styleDoc struct {
	Preset     string  `yaml:"preset"`
	Separator  *string `yaml:"separator"`
	LeftBound  *string `yaml:"left_bound"`
	RightBound *string `yaml:"right_bound"`
	Ellipsis   *string `yaml:"ellipsis"`
	Limit      *int    `yaml:"limit"`
	MaxWidth   *int    `yaml:"max_width"`
}

// LoadStyle decodes a style from a YAML document. The optional "preset" key
// picks the base style (default "list"); every other key overrides one field
// of it:
//
//	preset: set
//	separator: " | "
//	limit: 10
//
// An empty document yields [StyleList]. A stream with more than one document
// is rejected. All failures wrap [ErrInvalidStyle].
func LoadStyle(r io.Reader) (Style, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc styleDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return presets[0].style, nil
		}
		return Style{}, fmt.Errorf("%w: %s", ErrInvalidStyle, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("%w: more than one document", ErrInvalidStyle)
	}

	style := presets[0].style
	if doc.Preset != "" {
		base, err := ParseStyle(doc.Preset)
		if err != nil {
			return Style{}, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
		}
		style = base
	}
	if doc.Separator != nil {
		style.Separator = *doc.Separator
	}
	if doc.LeftBound != nil {
		style.LeftBound = *doc.LeftBound
	}
	if doc.RightBound != nil {
		style.RightBound = *doc.RightBound
	}
	if doc.Ellipsis != nil {
		style.Ellipsis = *doc.Ellipsis
	}
	if doc.Limit != nil {
		if *doc.Limit < 0 {
			return Style{}, fmt.Errorf("%w: negative limit %d", ErrInvalidStyle, *doc.Limit)
		}
		style.Limit = *doc.Limit
	}
	if doc.MaxWidth != nil {
		if *doc.MaxWidth < 0 {
			return Style{}, fmt.Errorf("%w: negative max_width %d", ErrInvalidStyle, *doc.MaxWidth)
		}
		style.MaxWidth = *doc.MaxWidth
	}
	return style, nil
}
