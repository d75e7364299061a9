package perdec

// borderTable is the prefix function of a numeral's fractional part read
// back to front. Entry i is the length of the longest proper border of the
// last i+1 characters of the numeral, so entry 0 is always 0 and
// entry i never exceeds i.
type borderTable []int

// backAt returns the character at backward offset k (0 is the last byte).
func backAt(numeral string, k int) byte { return numeral[len(numeral)-1-k] }

// buildBorderTable computes the border table over the last fracLen bytes of
// numeral. The table always has at least one entry so that an empty fraction
// still yields a split point.
func buildBorderTable(numeral string, fracLen int) borderTable {
	table := make(borderTable, max(fracLen, 1))
	// table[0] = 0: a single character has no proper border
	for current := 1; current < fracLen; current++ {
		candidate := table[current-1]
		for candidate != 0 && backAt(numeral, current) != backAt(numeral, candidate) {
			candidate = table[candidate-1]
		}
		if candidate == 0 {
			if backAt(numeral, current) == backAt(numeral, 0) {
				table[current] = 1
			}
			continue
		}
		table[current] = candidate + 1
	}
	return table
}

// maxIndex returns the index of the largest entry. Ties go to the smallest
// index, which gives the longest period.
func (b borderTable) maxIndex() int {
	best := 0
	for i := 1; i < len(b); i++ {
		if b[i] > b[best] {
			best = i
		}
	}
	return best
}
