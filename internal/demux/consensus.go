package demux

import "strings"

// Consensus is the majority sequence of every (subject, oligo) pair:
// subjectID -> oligoID -> consensus.
type Consensus map[string]map[string]string

// Resolve collapses each position's histogram to its majority base.
//
// table is consumed: its entries are deleted as they're resolved.
func Resolve(table Table) Consensus {
	consensus := make(Consensus, len(table))
	for subject, oligos := range table {
		resolved := make(map[string]string, len(oligos))
		for oligo, positions := range oligos {
			var sb strings.Builder
			sb.Grow(len(positions))
			for _, h := range positions {
				// every position was created by an increment, so never empty
				if base, ok := h.Majority(); ok {
					sb.WriteByte(base)
				}
			}
			resolved[oligo] = sb.String()
		}
		consensus[subject] = resolved
		delete(table, subject)
	}
	return consensus
}
