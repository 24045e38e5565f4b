package demux

import (
	"sort"
	"strconv"
)

// Assembly is a subject's oligo consensus sequences joined in oligo order.
type Assembly struct {
	// Sequence is the concatenated DNA
	Sequence string

	// Oligos are the IDs whose consensus is in Sequence, in order
	Oligos []string

	// BreakAt is the first oligo more than one past its predecessor, empty
	// if the oligos were contiguous
	BreakAt string
}

// Assemble joins one subject's oligos in numeric order, stopping at the first gap.
//
// Numbering is assumed to start at 0. Each oligo is appended before its
// distance from the last accepted oligo is checked, so the oligo that breaks
// contiguity ends the sequence: {000, 001, 003, 004} assembles 000+001+003.
// With strict set the breaking oligo is left out too.
func Assemble(oligos map[string]string, strict bool) Assembly {
	ids := make([]string, 0, len(oligos))
	for id := range oligos {
		ids = append(ids, id)
	}
	sortOligoIDs(ids)

	var (
		asm  Assembly
		seq  []byte
		prev = 0
	)
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		gap := err != nil || n-prev > 1

		if gap && strict {
			asm.BreakAt = id
			break
		}

		seq = append(seq, oligos[id]...)
		asm.Oligos = append(asm.Oligos, id)

		if gap {
			asm.BreakAt = id
			break
		}
		prev = n
	}
	asm.Sequence = string(seq)
	return asm
}

// AssembleAll assembles every subject in consensus.
func AssembleAll(consensus Consensus, strict bool) map[string]Assembly {
	assemblies := make(map[string]Assembly, len(consensus))
	for subject, oligos := range consensus {
		assemblies[subject] = Assemble(oligos, strict)
	}
	return assemblies
}

// SortedSubjects returns the subject IDs of assemblies in ascending order.
func SortedSubjects(assemblies map[string]Assembly) []string {
	subjects := make([]string, 0, len(assemblies))
	for s := range assemblies {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}

// sortOligoIDs orders ids by their numeric value, falling back to the IDs
// themselves when either isn't a number
func sortOligoIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA != nil || errB != nil || a == b {
			return ids[i] < ids[j]
		}
		return a < b
	})
}
