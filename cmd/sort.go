package cmd

import (
	"fmt"

	"github.com/mechsouls/ASCII-DNA-Translator/config"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/fastq"
	"github.com/mechsouls/ASCII-DNA-Translator/internal/output"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// sortCmd is for sorting reads into a directory per subject, without a consensus
var sortCmd = &cobra.Command{
	Use:                        "sort",
	Short:                      "Sort read payloads into a directory tree by subject and oligo",
	RunE:                       sortReads,
	SuggestionsMinimumDistance: 2,
	Long: `Sort merged reads by their subject and oligo tags. The payload of every
accepted read is appended to <tree>/<subject>/<oligo>.txt, one per line.

Reads are checked the same way as in 'asciidna assemble'.`,
	Example: "  asciidna sort --in merged.fastq.gz --tree oligos",
}

func sortReads(cmd *cobra.Command, args []string) error {
	conf := config.New()

	in, err := fastq.Open(conf.In)
	if err != nil {
		return fmt.Errorf("failed to open reads: %w", err)
	}
	defer in.Close()

	stats, err := output.WriteTree(conf.Tree, fastq.NewScanner(in), codon.Translate)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"reads":    stats.Reads,
		"accepted": stats.Accepted,
	}).Infof("sorted reads into %s", conf.Tree)
	return nil
}

// set flags
func init() {
	sortCmd.Flags().StringP("in", "i", "merged.fastq.gz", "merged reads (FASTQ, gzip or snappy compressed, '-' for stdin)")
	sortCmd.Flags().StringP("tree", "t", "oligos", "directory to sort reads into")

	RootCmd.AddCommand(sortCmd)
}
