package perdec

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1.3333", "1.(3)"},
		{"1.2345", "1.234(5)"},
		{"5", "5"},
		{"0.121212", "0.(12)"},
		{"3,14", "3,1(4)"},
		{"0.1666", "0.1(6)"},
		{"0.1011", "0.10(1)"},
		{"0.12312", "0.(123)"},
		{"1.5", "1.(5)"},
		{"11.1", "11.(1)"},
		{"1.2.3", "1.2.(3)"},
		{"123456", "123456"},
		// degenerate fractions fold the delimiter itself
		{"1.", "1(.)"},
		{".", "(.)"},
		// no validation
		{"abc", "abc"},
		{"x,yy", "x,(y)"},
	}
	for _, tc := range cases {
		got, err := Compress(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Compress(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestCompressEmpty(t *testing.T) {
	if _, err := Compress(""); !errors.Is(err, ErrEmptyNumeral) {
		t.Fatalf("expected ErrEmptyNumeral, got %v", err)
	}
	if _, err := Split(""); !errors.Is(err, ErrEmptyNumeral) {
		t.Fatalf("expected ErrEmptyNumeral, got %v", err)
	}
	buf := []byte("keep")
	out, err := AppendCompress(buf, nil)
	require.ErrorIs(t, err, ErrEmptyNumeral)
	require.Equal(t, "keep", string(out))
}

func TestSplit(t *testing.T) {
	seg, err := Split("0.1666")
	require.NoError(t, err)
	require.Equal(t, Segments{Prefix: "0.1", Period: "6", Length: 6}, seg)

	seg, err = Split("42")
	require.NoError(t, err)
	require.Equal(t, Segments{Prefix: "42", Length: 2}, seg)
	require.Equal(t, "42", seg.String())
}

func TestExpand(t *testing.T) {
	seg := Segments{Prefix: "0.", Period: "123", Length: 7}
	require.Equal(t, "0.12312", seg.Expand(7))
	require.Equal(t, "0.123123123", seg.Expand(11))
	require.Equal(t, "0.", seg.Expand(2))
	require.Equal(t, "0", seg.Expand(1))
	require.Equal(t, "", seg.Expand(0))
	require.Equal(t, "", seg.Expand(-3))
}

func TestAppendCompress(t *testing.T) {
	dst := []byte("x=")
	dst, err := AppendCompress(dst, []byte("1.3333"))
	require.NoError(t, err)
	require.Equal(t, "x=1.(3)", string(dst))

	dst, err = AppendCompress(nil, []byte("17"))
	require.NoError(t, err)
	require.Equal(t, "17", string(dst))
}

func randomNumeral(rng *rand.Rand) string {
	var sb strings.Builder
	for i := rng.Intn(4); i >= 0; i-- {
		sb.WriteByte("0123456789"[rng.Intn(10)])
	}
	switch rng.Intn(3) {
	case 0:
		return sb.String()
	case 1:
		sb.WriteByte('.')
	default:
		sb.WriteByte(',')
	}
	// a small alphabet makes repeats likely
	for i := rng.Intn(16); i > 0; i-- {
		sb.WriteByte("123"[rng.Intn(3)])
	}
	return sb.String()
}

func TestCompressProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(20190218))
	for iter := 0; iter < 2000; iter++ {
		numeral := randomNumeral(rng)
		seg, err := Split(numeral)
		require.NoError(t, err)
		out, err := Compress(numeral)
		require.NoError(t, err)
		appended, err := AppendCompress(nil, []byte(numeral))
		require.NoError(t, err)
		require.Equal(t, out, string(appended), numeral)

		delim := strings.IndexAny(numeral, ".,")
		if delim == -1 {
			require.Equal(t, numeral, out)
			continue
		}

		require.Equal(t, seg.Prefix+"("+seg.Period+")", out, numeral)
		require.NotEmpty(t, seg.Period, numeral)
		require.True(t, strings.HasPrefix(numeral, seg.Prefix+seg.Period), numeral)
		require.Equal(t, numeral, seg.Expand(seg.Length), numeral)
		if len(numeral)-delim-1 > 0 {
			require.Greater(t, len(seg.Prefix), delim, numeral)
		}
		require.LessOrEqual(t, len(seg.Prefix)+len(seg.Period), len(numeral))
	}
}
