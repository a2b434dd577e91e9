package printable

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo renders v into w. It writes the left bound, each element with the
// separator between neighbours, then the right bound. The first failed write
// stops rendering and its error is returned as-is; whatever was already
// written stays in w.
func (v View[T]) WriteTo(w io.Writer) (int64, error) {
	s := &sink{w: w}
	v.render(s, "%v")
	return s.n, s.err
}

// String returns the rendered text.
func (v View[T]) String() string {
	var sb strings.Builder
	_, _ = v.WriteTo(&sb)
	return sb.String()
}

// Format implements [fmt.Formatter]. Bounds and separators are written
// verbatim; every element is formatted with the caller's verb, flags, width
// and precision, so "%q" quotes each element and "%03d" pads each one.
func (v View[T]) Format(f fmt.State, verb rune) {
	v.render(&sink{w: f}, fmt.FormatString(f, verb))
}

// MarshalText returns the rendered text, so a View encodes as a plain string
// in JSON and YAML documents.
func (v View[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v View[T]) render(s *sink, format string) {
	if !s.writeString(v.left) {
		return
	}
	if v.limit > 0 || v.maxWidth > 0 {
		v.renderElided(s, format)
	} else {
		v.renderAll(s, format)
	}
	s.writeString(v.right)
}

func (v View[T]) renderAll(s *sink, format string) {
	if v.seq == nil {
		return
	}
	first := true
	for elem := range v.seq {
		if !first && !s.writeString(v.sep) {
			return
		}
		first = false
		if !s.writeElem(format, elem) {
			return
		}
	}
}

// sink counts bytes and remembers the first write error. Once a write
// fails every later write is a no-op.
type sink struct {
	w   io.Writer
	n   int64
	err error
}

func (s *sink) writeString(str string) bool {
	if s.err != nil {
		return false
	}
	if str == "" {
		return true
	}
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	s.err = err
	return err == nil
}

func (s *sink) writeElem(format string, elem any) bool {
	if s.err != nil {
		return false
	}
	n, err := fmt.Fprintf(s.w, format, elem)
	s.n += int64(n)
	s.err = err
	return err == nil
}
