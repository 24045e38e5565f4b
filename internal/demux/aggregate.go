package demux

import (
	"fmt"

	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	log "github.com/sirupsen/logrus"
)

// ReadSource is a finite, ordered, one-shot stream of reads.
// fastq.Scanner is the usual implementation.
type ReadSource interface {
	Scan() bool
	Header() string
	Seq() string
	Err() error
}

// Table holds a histogram per payload position for every (subject, oligo) pair:
// subjectID -> oligoID -> positions.
type Table map[string]map[string][]*Histogram

// Stats counts the reads seen while aggregating.
type Stats struct {
	Reads    int
	Accepted int
	Rejected map[Reject]int
}

// Aggregator folds accepted reads into a Table.
type Aggregator struct {
	translate codon.Translator
	table     Table
	stats     Stats
}

// NewAggregator returns an empty Aggregator that decodes tags with translate.
func NewAggregator(translate codon.Translator) *Aggregator {
	return &Aggregator{
		translate: translate,
		table:     make(Table),
		stats:     Stats{Rejected: make(map[Reject]int)},
	}
}

// Add counts the payload of a single read, returning why it was rejected, if it was.
func (a *Aggregator) Add(read Read) Reject {
	a.stats.Reads++

	tag, reject := Extract(read, a.translate)
	if reject != Accepted {
		a.stats.Rejected[reject]++
		log.Debugf("skipping %s: %s", read.Header, reject)
		return reject
	}
	a.stats.Accepted++

	oligos, ok := a.table[tag.SubjectID]
	if !ok {
		oligos = make(map[string][]*Histogram)
		a.table[tag.SubjectID] = oligos
	}

	// a tag-only read still registers its oligo, with no positions
	positions := oligos[tag.OligoID]
	for i := 0; i < len(tag.Payload); i++ {
		if i >= len(positions) {
			positions = append(positions, &Histogram{})
		}
		positions[i].Increment(tag.Payload[i])
	}
	oligos[tag.OligoID] = positions

	return Accepted
}

// Aggregate consumes every read in src. Rejected reads are skipped; only
// errors from src itself are returned.
func (a *Aggregator) Aggregate(src ReadSource) error {
	for src.Scan() {
		a.Add(Read{Header: src.Header(), Seq: src.Seq()})
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("failed reading after %d reads: %w", a.stats.Reads, err)
	}
	return nil
}

// Table returns the histograms gathered so far.
func (a *Aggregator) Table() Table {
	return a.table
}

// Stats returns the read counts gathered so far.
func (a *Aggregator) Stats() Stats {
	return a.stats
}
