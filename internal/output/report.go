package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/demux"
	"gopkg.in/yaml.v2"
)

// Phases is the number of seconds spent in each pipeline phase.
type Phases struct {
	Sort      float64 `json:"sort" yaml:"sort"`
	Consensus float64 `json:"consensus" yaml:"consensus"`
	Condense  float64 `json:"condense" yaml:"condense"`
}

// Subject is the assembly of a single subject.
type Subject struct {
	// ID is the two digit subject ID
	ID string `json:"id" yaml:"id"`

	// Oligos are the oligo IDs in the assembly
	Oligos []string `json:"oligos" yaml:"oligos"`

	// Dropped are the IDs of oligos with a consensus that aren't in the assembly
	Dropped []string `json:"dropped,omitempty" yaml:"dropped,omitempty"`

	// BreakAt is the oligo that ended the assembly at a gap
	BreakAt string `json:"breakAt,omitempty" yaml:"breakAt,omitempty"`

	// Length of the assembled sequence in bases
	Length int `json:"length" yaml:"length"`

	// Text is the translated sequence
	Text string `json:"text" yaml:"text"`
}

// Report summarizes a run.
type Report struct {
	// RunID is unique to each run
	RunID string `json:"runId" yaml:"runId"`

	// Input is the path to the reads
	Input string `json:"input" yaml:"input"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time" yaml:"time"`

	// Execution is the number of seconds it took to execute the run
	Execution float64 `json:"execution" yaml:"execution"`

	Phases Phases `json:"phases" yaml:"phases"`

	// Reads is the number of reads in the input
	Reads int `json:"reads" yaml:"reads"`

	// Accepted is the number of reads that went into a consensus
	Accepted int `json:"accepted" yaml:"accepted"`

	// Rejected counts skipped reads by reason
	Rejected map[string]int `json:"rejected" yaml:"rejected"`

	Subjects []Subject `json:"subjects" yaml:"subjects"`
}

// NewReport summarizes the result of a pipeline run over input.
func NewReport(input string, res *demux.Result, translate codon.Translator) Report {
	t := time.Now()
	r := Report{
		RunID: uuid.New().String(),
		Input: input,
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Phases: Phases{
			Sort:      res.Timings.Aggregate.Seconds(),
			Consensus: res.Timings.Resolve.Seconds(),
			Condense:  res.Timings.Assemble.Seconds(),
		},
		Reads:    res.Stats.Reads,
		Accepted: res.Stats.Accepted,
		Rejected: make(map[string]int),
		Subjects: []Subject{},
	}
	r.Execution = r.Phases.Sort + r.Phases.Consensus + r.Phases.Condense

	for _, reason := range demux.Rejects {
		if n := res.Stats.Rejected[reason]; n > 0 {
			r.Rejected[reason.String()] = n
		}
	}

	for _, id := range demux.SortedSubjects(res.Assemblies) {
		asm := res.Assemblies[id]

		used := make(map[string]bool, len(asm.Oligos))
		for _, o := range asm.Oligos {
			used[o] = true
		}
		var dropped []string
		for o := range res.Consensus[id] {
			if !used[o] {
				dropped = append(dropped, o)
			}
		}
		sort.Strings(dropped)

		r.Subjects = append(r.Subjects, Subject{
			ID:      id,
			Oligos:  append([]string{}, asm.Oligos...),
			Dropped: dropped,
			BreakAt: asm.BreakAt,
			Length:  len(asm.Sequence),
			Text:    translate(asm.Sequence),
		})
	}
	return r
}

// ReportFormat picks "json" or "yaml" for path. An explicit format wins,
// otherwise a .yaml or .yml extension means YAML.
func ReportFormat(path, format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	case "":
	default:
		return "", fmt.Errorf("unknown report format %q, expected json or yaml", format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "json", nil
}

// MarshalReport serializes the report as JSON or YAML.
func MarshalReport(r Report, format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(r)
	}
	return json.MarshalIndent(r, "", "  ")
}

// WriteReport serializes the report to path, in format or one guessed from
// the path's extension.
func WriteReport(path, format string, r Report) error {
	format, err := ReportFormat(path, format)
	if err != nil {
		return err
	}

	out, err := MarshalReport(r, format)
	if err != nil {
		return fmt.Errorf("failed to serialize the report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write the report to %s: %w", path, err)
	}
	return nil
}

// PrintSummary writes a line per subject to w.
func PrintSummary(w io.Writer, r Report) {
	bold := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	gap := color.New(color.FgYellow)

	bold.Fprintf(w, "%d of %d reads accepted\n", r.Accepted, r.Reads)
	for _, s := range r.Subjects {
		c := ok
		if s.BreakAt != "" {
			c = gap
		}
		c.Fprintf(w, "%-4s", s.ID)
		fmt.Fprintf(w, "%4d oligos %6d bases  %s\n", len(s.Oligos), s.Length, s.Text)
	}
}
