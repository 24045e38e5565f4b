package demux

import (
	"regexp"

	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
)

const (
	// MaxReadLength caps a read, measured from the start of its marker
	MaxReadLength = 104

	// TagLength is the number of bases before the payload
	TagLength = 28
)

var (
	// badBase matches anything that isn't A, C, G or T
	badBase = regexp.MustCompile(`[^ACGT]`)

	// marker locates the 28 base tag within a read: "#", two digits, "$" and
	// three digits once translated
	marker = regexp.MustCompile(`TGTC[ACGT]{8}TGAT[ACGT]{12}`)

	// tagFormat checks the translated marker, confirming the reading frame
	tagFormat = regexp.MustCompile(`^#\d{2}\$\d{3}`)
)

// Reject is why a read was left out of the consensus.
type Reject int

const (
	// Accepted reads aren't rejected
	Accepted Reject = iota

	// BadBase reads contain a character other than A, C, G or T
	BadBase

	// NoMarker reads lack the tag marker
	NoMarker

	// BadFormat reads have a marker that doesn't translate to "#dd$ddd"
	BadFormat

	// BadFrame reads end on a partial codon after trimming
	BadFrame
)

// Rejects lists every rejection reason, in order.
var Rejects = []Reject{BadBase, NoMarker, BadFormat, BadFrame}

func (r Reject) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case BadBase:
		return "bad-base"
	case NoMarker:
		return "no-marker"
	case BadFormat:
		return "bad-format"
	case BadFrame:
		return "bad-frame"
	}
	return "unknown"
}

// Read is a raw sequencing read.
type Read struct {
	Header string
	Seq    string
}

// Tag is the decoded barcode of an accepted read and the message that follows it.
type Tag struct {
	// SubjectID is the two digit subject (person) the read belongs to
	SubjectID string

	// OligoID is the three digit position of the read's fragment within its subject's message
	OligoID string

	// Payload is the DNA after the tag region
	Payload string
}

// Extract decodes the tag of a read, or returns why the read is rejected.
//
// The read is trimmed to start at its marker, which corrects the reading frame,
// and capped at MaxReadLength bases. Subject and oligo IDs are read from the
// tag region at [4,12) and [16,28).
func Extract(read Read, translate codon.Translator) (Tag, Reject) {
	seq := read.Seq

	if badBase.MatchString(seq) {
		return Tag{}, BadBase
	}

	loc := marker.FindStringIndex(seq)
	if loc == nil {
		return Tag{}, NoMarker
	}

	if !tagFormat.MatchString(translate(seq[loc[0]:loc[1]])) {
		return Tag{}, BadFormat
	}

	seq = seq[loc[0]:]
	if len(seq) > MaxReadLength {
		seq = seq[:MaxReadLength]
	}
	if len(seq)%codon.Size != 0 {
		return Tag{}, BadFrame
	}

	tag := seq[:TagLength]
	return Tag{
		SubjectID: translate(tag[4:12]),
		OligoID:   translate(tag[16:28]),
		Payload:   seq[TagLength:],
	}, Accepted
}
