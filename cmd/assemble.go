package cmd

import (
	"fmt"

	"github.com/mechsouls/ASCII-DNA-Translator/config"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/demux"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/fastq"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// assembleCmd is for running reads through consensus and assembly and writing each subject's text
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Decode each subject's message from merged reads",
	RunE:                       assemble,
	SuggestionsMinimumDistance: 2,
	Long: `Sort merged reads by their subject and oligo tags, vote on a consensus for
every oligo, and join each subject's oligos in order.

Reads with bases other than ACGT, without a tag, or with a tag that doesn't
decode to "#<subject>$<oligo>" are skipped. Oligos are joined from the lowest
ID up; the first oligo after a gap in the numbering ends the assembly
(--strict leaves that oligo out too).

Two files are written per subject to the output directory:
  <subject>_condensed.txt   the assembled DNA
  <subject>_translated.txt  the DNA translated to text`,
	Example: "  asciidna assemble --in merged.fastq.gz --out results",
	Aliases: []string{"run", "condense"},
}

func assemble(cmd *cobra.Command, args []string) error {
	conf := config.New()

	in, err := fastq.Open(conf.In)
	if err != nil {
		return fmt.Errorf("failed to open reads: %w", err)
	}
	defer in.Close()

	p := &demux.Pipeline{Translate: codon.Translate, Strict: conf.Strict}
	res, err := p.Run(fastq.NewScanner(in))
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", conf.In, err)
	}

	if _, err := output.WriteSubjects(conf.Out, res.Assemblies, codon.Translate); err != nil {
		return err
	}

	report := output.NewReport(conf.In, res, codon.Translate)
	if err := output.WriteReport(conf.ReportPath(), conf.ReportFormat, report); err != nil {
		return err
	}

	output.PrintSummary(cmd.OutOrStdout(), report)
	log.Infof("run complete, see %s for results", conf.Out)
	return nil
}

// set flags
func init() {
	assembleCmd.Flags().StringP("in", "i", "merged.fastq.gz", "merged reads (FASTQ, gzip or snappy compressed, '-' for stdin)")
	assembleCmd.Flags().StringP("out", "o", "output", "output directory")
	assembleCmd.Flags().StringP("report", "r", "", "run report path (default <out>/report.json)")
	assembleCmd.Flags().String("report-format", "", "run report format: json or yaml")
	assembleCmd.Flags().Bool("strict", false, "leave the oligo after a gap out of the assembly")

	RootCmd.AddCommand(assembleCmd)
}
