package demux

// Alphabet is the set of bases a read may contain, in tie-break order.
const Alphabet = "ACGT"

// baseIndex maps a base to its slot in a Histogram, -1 outside the Alphabet
func baseIndex(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return -1
}

// Histogram counts the bases seen at one payload position.
//
// Lookups never change a Histogram; an unseen base counts 0.
type Histogram struct {
	counts [len(Alphabet)]int
}

// Increment adds one to the count of base. Bases outside the Alphabet are ignored.
func (h *Histogram) Increment(base byte) {
	if i := baseIndex(base); i >= 0 {
		h.counts[i]++
	}
}

// Get returns the number of times base was counted.
func (h *Histogram) Get(base byte) int {
	if i := baseIndex(base); i >= 0 {
		return h.counts[i]
	}
	return 0
}

// Total is the sum of all counts.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	return total
}

// Majority returns the most frequent base and false if nothing has been counted.
// Ties go to the base that sorts first alphabetically.
func (h *Histogram) Majority() (byte, bool) {
	best := -1
	for i, c := range h.counts {
		if c > 0 && (best < 0 || c > h.counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return Alphabet[best], true
}
