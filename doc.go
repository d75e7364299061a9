// Package perdec rewrites decimal numerals into periodic notation.
//
// # Overview
//
// Given a numeral such as "1.3333", perdec finds the longest run at the end of
// the fractional part that repeats and folds it into a parenthesized period:
//
//	1.3333   -> 1.(3)
//	0.121212 -> 0.(12)
//	1.2345   -> 1.234(5)
//	3,14     -> 3,1(4)
//	5        -> 5
//
// The fractional delimiter is the first '.' or ','. Numerals without one are
// returned unchanged.
//
// # Algorithm
//
// The fractional digits are read back to front and a prefix function
// (Knuth-Morris-Pratt failure function) is built over them. Entry i holds the
// longest border of the last i+1 characters. The leftmost maximum marks where
// the period starts, and its value is how many trailing characters are a
// repetition of the period and can be dropped.
//
// Only suffix-anchored, border-style repetition is detected. The input is not
// validated: any bytes are accepted and processed by the same rules.
//
// # Basic Usage
//
//	out, err := perdec.Compress("0.1666")
//	// out == "0.1(6)"
//
//	seg, _ := perdec.Split("0.1666")
//	// seg.Prefix == "0.1", seg.Period == "6"
//	_ = seg.Expand(seg.Length) // "0.1666"
//
// # Performance Characteristics
//
// Compress is O(n) in time and allocates one table of len(fraction) ints plus
// the output string.
package perdec
