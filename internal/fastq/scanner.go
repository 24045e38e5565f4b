// Package fastq reads (header, sequence) records from FASTQ streams.
package fastq

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// Record is a single FASTQ entry.
type Record struct {
	// Header without the leading '@'
	Header string

	// Seq is the raw read. Letters are passed through as they are, so
	// anything outside ACGT is left for the caller to reject
	Seq string
}

// Scanner lazily reads FASTQ records, one per call to Scan, in the manner of
// bufio.Scanner. A Scanner can't be rewound.
type Scanner struct {
	sc   *seqio.Scanner
	rec  Record
	read int
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	template := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
	return &Scanner{sc: seqio.NewScanner(fastq.NewReader(r, template))}
}

// Scan advances to the next record. It returns false at the end of the
// stream or on the first error, which is then available from Err.
func (s *Scanner) Scan() bool {
	if !s.sc.Next() {
		return false
	}
	s.read++

	q := s.sc.Seq().(*linear.QSeq)
	seq := make([]byte, len(q.Seq))
	for i, l := range q.Seq {
		seq[i] = byte(l.L)
	}

	header := q.Name()
	if desc := q.Description(); desc != "" {
		header += " " + desc
	}
	s.rec = Record{Header: header, Seq: string(seq)}
	return true
}

// Record returns the record read by the last call to Scan.
func (s *Scanner) Record() Record { return s.rec }

// Header returns the header of the current record.
func (s *Scanner) Header() string { return s.rec.Header }

// Seq returns the sequence of the current record.
func (s *Scanner) Seq() string { return s.rec.Seq }

// Err returns the first non-EOF error hit while scanning.
func (s *Scanner) Err() error {
	if err := s.sc.Error(); err != nil {
		return fmt.Errorf("record %d: %w", s.read+1, err)
	}
	return nil
}
