// Command perdec reads a decimal numeral from stdin and prints it in
// periodic notation, e.g. "1.3333" becomes "1.(3)".
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-json"

	"github.com/axiomhq/perdec"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type result struct {
	Input  string `json:"input"`
	Prefix string `json:"prefix"`
	Period string `json:"period"`
	Output string `json:"output"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("perdec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		all     = fs.Bool("all", false, "Compress every whitespace-separated numeral, one result per line")
		asJSON  = fs.Bool("json", false, "Emit one JSON object per numeral")
		verbose = fs.Bool("v", false, "Log progress to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(stderr, "perdec ", log.LstdFlags)
	}

	if *all && !*asJSON {
		n, err := perdec.CompressStream(stdin, stdout)
		logger.Printf("wrote %d bytes", n)
		return err
	}

	sc := bufio.NewScanner(stdin)
	sc.Split(bufio.ScanWords)
	enc := json.NewEncoder(stdout)
	count := 0
	for sc.Scan() {
		numeral := sc.Text()
		seg, err := perdec.Split(numeral)
		if err != nil {
			return err
		}
		out := seg.String()
		logger.Printf("compressed %q -> %q", numeral, out)
		count++

		if *asJSON {
			rec := result{Input: numeral, Prefix: seg.Prefix, Period: seg.Period, Output: out}
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
		} else if _, err := io.WriteString(stdout, out); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if !*all {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read numeral: %w", err)
	}
	if count == 0 && !*all {
		return perdec.ErrEmptyNumeral
	}
	return nil
}
