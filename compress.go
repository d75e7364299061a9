package perdec

import (
	"errors"
	"strings"
)

// ErrEmptyNumeral is returned when the numeral to compress has no characters.
var ErrEmptyNumeral = errors.New("perdec: empty numeral")

// Segments is a numeral split into its non-repeating prefix and trailing
// period. Prefix includes the integer part and the delimiter.
type Segments struct {
	Prefix string // everything before the period
	Period string // repeating run; empty when the numeral has no delimiter
	Length int    // length of the source numeral
}

// String renders the periodic notation, e.g. "1.(3)". A numeral without a
// delimiter is rendered as is.
func (s Segments) String() string {
	if s.Period == "" {
		return s.Prefix
	}
	var sb strings.Builder
	sb.Grow(len(s.Prefix) + len(s.Period) + 2)
	sb.WriteString(s.Prefix)
	sb.WriteByte('(')
	sb.WriteString(s.Period)
	sb.WriteByte(')')
	return sb.String()
}

// Expand writes Prefix followed by Period repeated until the result is n
// bytes long. Expand(s.Length) restores the original numeral.
// If n is shorter than Prefix, the prefix is truncated.
func (s Segments) Expand(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= len(s.Prefix) || s.Period == "" {
		return s.Prefix[:min(n, len(s.Prefix))]
	}
	buf := make([]byte, 0, n)
	buf = append(buf, s.Prefix...)
	for len(buf) < n {
		buf = append(buf, s.Period[:min(len(s.Period), n-len(buf))]...)
	}
	return string(buf)
}

// delimiterIndex returns the position of the first '.' or ',' or -1.
func delimiterIndex(numeral string) int {
	return strings.IndexAny(numeral, ".,")
}

// split derives the prefix and period of a non-empty numeral.
func split(numeral string) Segments {
	delim := delimiterIndex(numeral)
	if delim == -1 {
		return Segments{Prefix: numeral, Length: len(numeral)}
	}

	var (
		n       = len(numeral)
		fracLen = n - delim - 1
		table   = buildBorderTable(numeral, fracLen)
		best    = table.maxIndex()
		start   = n - best - 1
		end     = n - table[best]
	)
	return Segments{
		Prefix: numeral[:start],
		Period: numeral[start:end],
		Length: n,
	}
}

// Split returns the prefix and period of numeral without formatting them.
func Split(numeral string) (Segments, error) {
	if numeral == "" {
		return Segments{}, ErrEmptyNumeral
	}
	return split(numeral), nil
}

// Compress rewrites numeral with its trailing period in parentheses.
// Numerals without a '.' or ',' delimiter are returned unchanged.
func Compress(numeral string) (string, error) {
	seg, err := Split(numeral)
	if err != nil {
		return "", err
	}
	return seg.String(), nil
}

// AppendCompress appends the compressed form of numeral to dst and returns
// the extended buffer. dst may be nil.
func AppendCompress(dst, numeral []byte) ([]byte, error) {
	if len(numeral) == 0 {
		return dst, ErrEmptyNumeral
	}
	seg := split(string(numeral))
	dst = append(dst, seg.Prefix...)
	if seg.Period != "" {
		dst = append(dst, '(')
		dst = append(dst, seg.Period...)
		dst = append(dst, ')')
	}
	return dst, nil
}
