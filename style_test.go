package printable_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/andrewsonin/printable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    printable.Style
		wantErr require.ErrorAssertionFunc
	}{
		"list":    {input: "list", want: printable.StyleList, wantErr: require.NoError},
		"set":     {input: "set", want: printable.StyleSet, wantErr: require.NoError},
		"tuple":   {input: "tuple", want: printable.StyleTuple, wantErr: require.NoError},
		"angle":   {input: "angle", want: printable.StyleAngle, wantErr: require.NoError},
		"bare":    {input: "bare", want: printable.StyleBare, wantErr: require.NoError},
		"lines":   {input: "lines", want: printable.StyleLines, wantErr: require.NoError},
		"space":   {input: "space", want: printable.StyleSpace, wantErr: require.NoError},
		"unknown": {input: "fancy", wantErr: require.Error},
		"empty":   {input: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := printable.ParseStyle(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStyleUnknownSentinel(t *testing.T) {
	t.Parallel()
	_, err := printable.ParseStyle("fancy")
	require.ErrorIs(t, err, printable.ErrUnknownStyle)
	assert.Contains(t, err.Error(), `"fancy"`)
}

func TestStyles(t *testing.T) {
	t.Parallel()
	names := printable.Styles()
	assert.Equal(t, []string{"list", "set", "tuple", "angle", "bare", "lines", "space"}, names)
	for _, name := range names {
		_, err := printable.ParseStyle(name)
		assert.NoError(t, err, name)
	}

	names[0] = "mutated"
	assert.Equal(t, "list", printable.Styles()[0])
}

func TestWithStyle(t *testing.T) {
	t.Parallel()
	base := printable.FromSlice([]int{1, 2, 3})
	tests := map[string]struct {
		style printable.Style
		want  string
	}{
		"list":  {style: printable.StyleList, want: "[1, 2, 3]"},
		"set":   {style: printable.StyleSet, want: "{1, 2, 3}"},
		"tuple": {style: printable.StyleTuple, want: "(1, 2, 3)"},
		"angle": {style: printable.StyleAngle, want: "<1, 2, 3>"},
		"bare":  {style: printable.StyleBare, want: "1, 2, 3"},
		"lines": {style: printable.StyleLines, want: "1\n2\n3"},
		"space": {style: printable.StyleSpace, want: "1 2 3"},
		"limit with default ellipsis": {
			style: printable.Style{Separator: ",", Limit: 2},
			want:  "1,2,...",
		},
		"limit with custom ellipsis": {
			style: printable.Style{Separator: " ", LeftBound: "(", RightBound: ")", Ellipsis: "…", Limit: 1},
			want:  "(1 …)",
		},
		"max width": {
			style: printable.Style{Separator: ", ", LeftBound: "[", RightBound: "]", MaxWidth: 8},
			want:  "[1, ...]",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base.WithStyle(tt.style).String())
		})
	}
}

func TestStyleReportsConfiguration(t *testing.T) {
	t.Parallel()
	v := printable.FromSlice([]int{1})
	assert.Equal(t, printable.StyleList, v.Style())

	custom := printable.Style{Separator: "|", LeftBound: "<", RightBound: ">", Ellipsis: "…", Limit: 4, MaxWidth: 30}
	assert.Equal(t, custom, v.WithStyle(custom).Style())

	got := v.WithSeparator(";").WithLimit(-2).WithMaxWidth(-1).Style()
	assert.Equal(t, ";", got.Separator)
	assert.Zero(t, got.Limit)
	assert.Zero(t, got.MaxWidth)
}

func TestStyleJSON(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(printable.StyleSet)
	require.NoError(t, err)
	assert.JSONEq(t, `{"separator":", ","left_bound":"{","right_bound":"}"}`, string(data))
}

func TestLoadStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  printable.Style
	}{
		"empty document": {input: "", want: printable.StyleList},
		"preset only":    {input: "preset: tuple\n", want: printable.StyleTuple},
		"preset with override": {
			input: "preset: set\nseparator: \" | \"\n",
			want:  printable.Style{Separator: " | ", LeftBound: "{", RightBound: "}"},
		},
		"explicit empty separator": {
			input: "separator: \"\"\n",
			want:  printable.Style{LeftBound: "[", RightBound: "]"},
		},
		"all fields": {
			input: strings.Join([]string{
				`separator: ";"`,
				`left_bound: "<"`,
				`right_bound: ">"`,
				`ellipsis: "…"`,
				`limit: 3`,
				`max_width: 40`,
			}, "\n"),
			want: printable.Style{Separator: ";", LeftBound: "<", RightBound: ">", Ellipsis: "…", Limit: 3, MaxWidth: 40},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := printable.LoadStyle(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadStyleErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		unknown bool
	}{
		"unknown field":      {input: "colour: red\n"},
		"negative limit":     {input: "limit: -1\n"},
		"negative max width": {input: "max_width: -10\n"},
		"bad limit type":     {input: "limit: many\n"},
		"malformed":          {input: "separator: [1, 2\n"},
		"not a mapping":      {input: "- list\n- set\n"},
		"second document":    {input: "separator: \"|\"\n---\nlimit: 2\n"},
		"unknown preset":     {input: "preset: fancy\n", unknown: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := printable.LoadStyle(strings.NewReader(tt.input))
			require.ErrorIs(t, err, printable.ErrInvalidStyle)
			if tt.unknown {
				assert.ErrorIs(t, err, printable.ErrUnknownStyle)
			} else {
				assert.NotErrorIs(t, err, printable.ErrUnknownStyle)
			}
		})
	}
}

func TestLoadStyleAppliedToInfiniteSequence(t *testing.T) {
	t.Parallel()
	style, err := printable.LoadStyle(strings.NewReader("preset: space\nlimit: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3 ...", printable.Of(naturals).WithStyle(style).String())
}
