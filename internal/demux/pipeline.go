// Package demux sorts tagged oligo reads by subject, votes on a consensus for
// each oligo, and joins each subject's oligos into a single sequence.
//
// Reads carry a 28 base tag: a marker ("TGTC" ... "TGAT"), a two digit
// subject ID and a three digit oligo ID, all encoded four bases per
// character. Everything after the tag is payload. The pipeline has three
// phases that run strictly in order: aggregate, resolve and assemble.
package demux

import (
	"time"

	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	log "github.com/sirupsen/logrus"
)

// Timings are the durations of each pipeline phase.
type Timings struct {
	Aggregate time.Duration
	Resolve   time.Duration
	Assemble  time.Duration
}

// Result is the output of a pipeline run.
type Result struct {
	Stats      Stats
	Consensus  Consensus
	Assemblies map[string]Assembly
	Timings    Timings
}

// Pipeline runs reads through aggregation, consensus and assembly.
type Pipeline struct {
	// Translate decodes tag IDs, defaults to codon.Translate
	Translate codon.Translator

	// Strict leaves the oligo that breaks contiguity out of an assembly
	Strict bool
}

// Run consumes src and returns the assembled sequence of every subject.
// The only errors are those reading src.
func (p *Pipeline) Run(src ReadSource) (*Result, error) {
	translate := p.Translate
	if translate == nil {
		translate = codon.Translate
	}

	res := &Result{}

	log.Info("sorting oligos")
	start := time.Now()
	agg := NewAggregator(translate)
	if err := agg.Aggregate(src); err != nil {
		return nil, err
	}
	res.Stats = agg.Stats()
	res.Timings.Aggregate = time.Since(start)
	log.WithFields(log.Fields{
		"reads":    res.Stats.Reads,
		"accepted": res.Stats.Accepted,
		"subjects": len(agg.Table()),
	}).Infof("sorted in %g seconds", res.Timings.Aggregate.Seconds())

	log.Info("resolving consensus sequences")
	start = time.Now()
	res.Consensus = Resolve(agg.Table())
	res.Timings.Resolve = time.Since(start)
	log.Infof("resolved in %g seconds", res.Timings.Resolve.Seconds())

	log.Info("condensing sequences")
	start = time.Now()
	res.Assemblies = AssembleAll(res.Consensus, p.Strict)
	res.Timings.Assemble = time.Since(start)
	log.Infof("condensed in %g seconds", res.Timings.Assemble.Seconds())

	for _, subject := range SortedSubjects(res.Assemblies) {
		if asm := res.Assemblies[subject]; asm.BreakAt != "" {
			log.Warnf("subject %s: gap in oligos, assembly ends at %s", subject, asm.BreakAt)
		}
	}

	return res, nil
}
