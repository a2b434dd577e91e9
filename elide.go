package printable

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// renderElided writes elements until the limit or the width budget runs out,
// then writes the separator and the ellipsis and stops ranging.
//
// With a width cap, an element is written straight away only while there is
// still room for a trailing ellipsis after it. Later elements are held back:
// if the sequence ends and they fit, they are written; otherwise they are
// dropped in favour of the ellipsis. Each piece is charged at least one
// column, so the held-back text is bounded by the budget and an infinite
// sequence still terminates, even when its pieces have no display width.
func (v View[T]) renderElided(s *sink, format string) {
	if v.seq == nil {
		return
	}

	// A negative budget means no width cap.
	budget := -1
	if v.maxWidth > 0 {
		budget = max(v.maxWidth-runewidth.StringWidth(v.left)-runewidth.StringWidth(v.right), 0)
	}
	tail := runewidth.StringWidth(v.sep) + runewidth.StringWidth(v.ellipsis)

	var (
		pending      []string
		pendingWidth int
		used         int
		written      int
		count        int
		elided       bool
	)
	for elem := range v.seq {
		if v.limit > 0 && count == v.limit {
			elided = true
			break
		}
		piece := fmt.Sprintf(format, elem)
		if count > 0 {
			piece = v.sep + piece
		}
		count++

		if budget < 0 {
			if !s.writeString(piece) {
				return
			}
			written++
			continue
		}

		// Every piece costs at least one column so zero-width text cannot
		// keep the loop going forever.
		w := max(runewidth.StringWidth(piece), 1)
		if len(pending) == 0 && used+w+tail <= budget {
			if !s.writeString(piece) {
				return
			}
			used += w
			written++
			continue
		}
		if used+pendingWidth+w > budget {
			elided = true
			break
		}
		pending = append(pending, piece)
		pendingWidth += w
	}

	if elided {
		if written > 0 && !s.writeString(v.sep) {
			return
		}
		s.writeString(v.ellipsis)
		return
	}
	for _, piece := range pending {
		if !s.writeString(piece) {
			return
		}
	}
}

// DisplayWidth returns the number of terminal columns the rendered text
// occupies. Wide runes count as two columns.
func (v View[T]) DisplayWidth() int {
	return runewidth.StringWidth(v.String())
}
