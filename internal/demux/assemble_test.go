package demux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name   string
		oligos map[string]string
		strict bool
		want   Assembly
	}{
		{
			"contiguous",
			map[string]string{"002": "GG", "000": "AA", "001": "CC"},
			false,
			Assembly{Sequence: "AACCGG", Oligos: []string{"000", "001", "002"}},
		},
		{
			"oligo after a gap is kept, those after it are not",
			map[string]string{"000": "AA", "001": "CC", "003": "GG", "004": "TT"},
			false,
			Assembly{Sequence: "AACCGG", Oligos: []string{"000", "001", "003"}, BreakAt: "003"},
		},
		{
			"strict drops the oligo after a gap",
			map[string]string{"000": "AA", "001": "CC", "003": "GG", "004": "TT"},
			true,
			Assembly{Sequence: "AACC", Oligos: []string{"000", "001"}, BreakAt: "003"},
		},
		{
			"starting at one isn't a gap",
			map[string]string{"001": "AA"},
			false,
			Assembly{Sequence: "AA", Oligos: []string{"001"}},
		},
		{
			"starting at two is",
			map[string]string{"002": "AA", "003": "CC"},
			false,
			Assembly{Sequence: "AA", Oligos: []string{"002"}, BreakAt: "002"},
		},
		{
			"numeric order",
			map[string]string{"010": "GG", "009": "CC", "008": "AA", "007": "", "006": "", "005": "", "004": "", "003": "", "002": "", "001": "", "000": "TT"},
			false,
			Assembly{
				Sequence: "TTAACCGG",
				Oligos:   []string{"000", "001", "002", "003", "004", "005", "006", "007", "008", "009", "010"},
			},
		},
		{
			"empty",
			map[string]string{},
			false,
			Assembly{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Assemble(tt.oligos, tt.strict))
		})
	}
}

func TestAssembleAll(t *testing.T) {
	got := AssembleAll(Consensus{
		"02": {"000": "TT"},
		"01": {"000": "AA", "001": "CC"},
	}, false)

	assert.Equal(t, []string{"01", "02"}, SortedSubjects(got))
	assert.Equal(t, "AACC", got["01"].Sequence)
	assert.Equal(t, "TT", got["02"].Sequence)
}
