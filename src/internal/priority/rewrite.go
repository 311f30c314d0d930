// FILE: logbridge/src/internal/priority/rewrite.go
package priority

import (
	"fmt"
	"strings"
)

// A PRI tag is the literal pattern '<', 1-3 ASCII digits, '>'. Tags are
// matched anywhere in the message, not only at the start: legacy senders
// embed or chain them, and the bridge rewrites every occurrence. Detection
// uses a small explicit scanner instead of a regexp; the pattern is fixed.

// tagAt reports whether a PRI tag starts at off (msg[off] must be '<'),
// returning the digit span and the index just past the closing '>'.
func tagAt(msg string, off int) (digits string, end int, ok bool) {
	i := off + 1
	j := i
	for j < len(msg) && j-i < 3 && msg[j] >= '0' && msg[j] <= '9' {
		j++
	}
	if j == i || j >= len(msg) || msg[j] != '>' {
		return "", 0, false
	}
	return msg[i:j], j + 1, true
}

// FirstTag parses the first PRI tag in msg. The whole record is classified
// by this tag even though RewriteTags touches all of them. Returns
// ErrInvalidPriValue when no tag is present or the first tag does not decode.
func FirstTag(msg string) (Priority, error) {
	for i := 0; i < len(msg); i++ {
		if msg[i] != '<' {
			continue
		}
		digits, _, ok := tagAt(msg, i)
		if !ok {
			continue
		}
		return Parse(digits)
	}
	return Priority{}, fmt.Errorf("%w: no PRI tag in message", ErrInvalidPriValue)
}

// RewriteTags replaces every non-overlapping PRI tag in msg, left to right,
// with its rendered "facility.severity" form plus one trailing space. A tag
// that does not decode fails the whole rewrite; there is no partial output.
func RewriteTags(msg string) (string, error) {
	var b strings.Builder
	last := 0
	i := 0
	for i < len(msg) {
		if msg[i] != '<' {
			i++
			continue
		}
		digits, end, ok := tagAt(msg, i)
		if !ok {
			// Not a tag, advance past the '<' and keep scanning
			i++
			continue
		}
		p, err := Parse(digits)
		if err != nil {
			return "", err
		}
		b.WriteString(msg[last:i])
		b.WriteString(p.String())
		b.WriteByte(' ')
		i = end
		last = end
	}
	if last == 0 {
		return msg, nil
	}
	b.WriteString(msg[last:])
	return b.String(), nil
}
