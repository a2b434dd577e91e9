// Package printable renders sequences as delimited text.
//
// A [View] wraps a repeatable sequence and renders it as a left bound, the
// elements joined by a separator, and a right bound. The defaults give the
// familiar list form:
//
//	printable.FromSlice([]int{1, 2, 3}).String() // "[1, 2, 3]"
//
// # Construction
//
// Any [iter.Seq] can be wrapped with [Of]. Collections that expose an
// All() iterator satisfy [Sequence] and can be wrapped with [From]; plain
// slices use [FromSlice] and two-value iterators use [FromSeq2]:
//
//	printable.Of(strings.SplitSeq(line, ","))
//	printable.From(myList)
//	printable.FromSeq2(slices.All(names), "=")
//
// A source wrapped with [From] may implement optional interfaces to supply
// its own defaults:
//
//   - [Separated] — separator (default ", ")
//   - [Bounded] — left and right bounds (default "[" and "]")
//
// # Configuration
//
// Every setter returns a new View and leaves the receiver alone:
//
//	v := printable.FromSlice(xs).WithSeparator(".").WithBounds("{", "}")
//
// A whole configuration can be stored as a [Style], picked from a preset with
// [ParseStyle], or decoded from YAML with [LoadStyle].
//
// # Rendering
//
// A View is an [io.WriterTo], a [fmt.Stringer], a [fmt.Formatter] and an
// [encoding.TextMarshaler]. With fmt, the verb and flags apply to every
// element, while bounds and separators are written verbatim:
//
//	fmt.Sprintf("%q", printable.FromSlice([]string{"a", "b"})) // `["a", "b"]`
//
// Element text is never escaped: an element containing the separator is
// written as-is.
//
// Every render calls the sequence again from the start. Nothing is cached,
// so a sequence that copies or recomputes its data does so on each render.
//
// # Elision
//
// [View.WithLimit] and [View.WithMaxWidth] cap the output by element count
// or by terminal columns and write an ellipsis in place of the rest. Both are
// off by default, and with either one set an infinite sequence renders in
// finite time.
//
// # Errors
//
// Construction and configuration cannot fail. [View.WriteTo] returns the
// writer's own error unchanged. [ParseStyle] and [LoadStyle] report failures
// with the sentinel errors:
//
//   - [ErrUnknownStyle] — no preset with that name
//   - [ErrInvalidStyle] — malformed or out-of-range style document
package printable
