package perdec

import (
	"bufio"
	"fmt"
	"io"
)

// CompressStream reads whitespace-separated numerals from r and writes the
// compressed form of each to w, one per line.
// It returns the number of bytes written.
func CompressStream(r io.Reader, w io.Writer) (int64, error) {
	var (
		n   int64
		out []byte
		err error
	)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		out, err = AppendCompress(out[:0], sc.Bytes())
		if err != nil {
			return n, err
		}
		out = append(out, '\n')
		if nn, err := w.Write(out); err != nil {
			return n + int64(nn), fmt.Errorf("perdec: write: %w", err)
		} else {
			n += int64(nn)
		}
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("perdec: read: %w", err)
	}
	return n, nil
}
