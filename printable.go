package printable

import (
	"fmt"
	"iter"
	"slices"
)

const (
	defaultSeparator  = ", "
	defaultLeftBound  = "["
	defaultRightBound = "]"
	defaultEllipsis   = "..."
)

// View renders a repeatable sequence as text: left bound, elements joined by
// the separator, right bound. The zero View renders as the empty string.
//
// A View is a small value. Configuration methods return a modified copy and
// never touch the receiver, so chains are last-write-wins. Rendering calls
// the sequence function once per render and never caches what it yields:
// a sequence that copies or recomputes its data pays that cost on every
// render, and a sequence mutated after wrapping renders its current contents.
//
// A View has no internal locking. Concurrent renders are safe only when the
// sequence can be ranged concurrently and is not mutated meanwhile.
type View[T any] struct {
	seq      iter.Seq[T]
	sep      string
	left     string
	right    string
	ellipsis string
	limit    int
	maxWidth int
}

// --- Source Interfaces ---

// Sequence is a repeatable collection. Each call to All starts a fresh
// traversal that yields the same elements in the same order.
type Sequence[T any] interface {
	All() iter.Seq[T]
}

// Separated sets the default separator of a [Sequence] wrapped with [From].
type Separated interface {
	Sep() string
}

// Bounded sets the default bounds of a [Sequence] wrapped with [From].
type Bounded interface {
	Bounds() (left, right string)
}

// --- Construction ---

// Of wraps seq with the default configuration: separator ", " and bounds
// "[" and "]". Nothing is traversed until the View is rendered.
func Of[T any](seq iter.Seq[T]) View[T] {
	return View[T]{
		seq:      seq,
		sep:      defaultSeparator,
		left:     defaultLeftBound,
		right:    defaultRightBound,
		ellipsis: defaultEllipsis,
	}
}

// From wraps a collection that can produce its own iterator. If src
// implements [Separated] or [Bounded], those values replace the defaults.
func From[T any](src Sequence[T]) View[T] {
	v := Of(src.All())
	if s, ok := src.(Separated); ok {
		v.sep = s.Sep()
	}
	if b, ok := src.(Bounded); ok {
		v.left, v.right = b.Bounds()
	}
	return v
}

// FromSlice wraps s. The slice header is captured as-is, so writes to its
// elements after wrapping show up in later renders.
func FromSlice[T any](s []T) View[T] {
	return Of(slices.Values(s))
}

// Pair is one element of a View built by [FromSeq2].
type Pair[K, V any] struct {
	Key   K
	Value V
	sep   string
}

// Format writes the key, the pair separator, then the value, passing the
// verb and flags through to both halves.
func (p Pair[K, V]) Format(f fmt.State, verb rune) {
	format := fmt.FormatString(f, verb)
	fmt.Fprintf(f, format, p.Key)
	fmt.Fprint(f, p.sep)
	fmt.Fprintf(f, format, p.Value)
}

// FromSeq2 wraps a two-value iterator. Each element renders as key, pairSep,
// value. Map iteration order is random, so sort map keys first when the
// output has to be deterministic.
func FromSeq2[K, V any](seq iter.Seq2[K, V], pairSep string) View[Pair[K, V]] {
	if seq == nil {
		return Of[Pair[K, V]](nil)
	}
	return Of(func(yield func(Pair[K, V]) bool) {
		for k, v := range seq {
			if !yield(Pair[K, V]{Key: k, Value: v, sep: pairSep}) {
				return
			}
		}
	})
}

// --- Configuration ---

// WithSeparator returns a copy of v that puts sep between elements.
func (v View[T]) WithSeparator(sep string) View[T] {
	v.sep = sep
	return v
}

// WithLeftBound returns a copy of v that starts with left.
func (v View[T]) WithLeftBound(left string) View[T] {
	v.left = left
	return v
}

// WithRightBound returns a copy of v that ends with right.
func (v View[T]) WithRightBound(right string) View[T] {
	v.right = right
	return v
}

// WithBounds sets both bounds at once.
func (v View[T]) WithBounds(left, right string) View[T] {
	v.left, v.right = left, right
	return v
}

// WithLimit returns a copy of v that renders at most n elements, followed by
// the separator and the ellipsis if the sequence has more. A non-positive n
// removes the limit.
func (v View[T]) WithLimit(n int) View[T] {
	v.limit = max(n, 0)
	return v
}

// WithMaxWidth returns a copy of v whose rendering is capped at cols terminal
// columns. Elements that do not fit are elided. A non-positive cols removes
// the cap.
func (v View[T]) WithMaxWidth(cols int) View[T] {
	v.maxWidth = max(cols, 0)
	return v
}

// WithEllipsis sets the marker written in place of elided elements.
// Default: "...".
func (v View[T]) WithEllipsis(s string) View[T] {
	v.ellipsis = s
	return v
}

// WithStyle replaces the whole configuration of v with s. The wrapped
// sequence is kept.
func (v View[T]) WithStyle(s Style) View[T] {
	v.sep = s.Separator
	v.left = s.LeftBound
	v.right = s.RightBound
	v.ellipsis = s.Ellipsis
	if v.ellipsis == "" {
		v.ellipsis = defaultEllipsis
	}
	v.limit = max(s.Limit, 0)
	v.maxWidth = max(s.MaxWidth, 0)
	return v
}

// Style reports the current configuration of v. The default ellipsis is
// reported as empty, so Of(seq).Style() equals [StyleList].
func (v View[T]) Style() Style {
	s := Style{
		Separator:  v.sep,
		LeftBound:  v.left,
		RightBound: v.right,
		Ellipsis:   v.ellipsis,
		Limit:      v.limit,
		MaxWidth:   v.maxWidth,
	}
	if s.Ellipsis == defaultEllipsis {
		s.Ellipsis = ""
	}
	return s
}
