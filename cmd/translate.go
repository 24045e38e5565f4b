package cmd

import (
	"fmt"
	"strings"

	"github.com/mechsouls/ASCII-DNA-Translator/internal/codon"
	"github.com/spf13/cobra"
)

// translateCmd is for decoding DNA into text
var translateCmd = &cobra.Command{
	Use:                        "translate [dna]",
	Short:                      "Translate DNA into text, four bases per character",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       translate,
	SuggestionsMinimumDistance: 2,
	Example:                    "  asciidna translate TGTCTCTTTCTATGATTCTTTCTTTCTG",
	Aliases:                    []string{"decode"},
}

// encodeCmd is for encoding text as DNA
var encodeCmd = &cobra.Command{
	Use:                        "encode [text]",
	Short:                      "Encode text as DNA, four bases per character",
	Args:                       cobra.MinimumNArgs(1),
	RunE:                       encode,
	SuggestionsMinimumDistance: 2,
	Example:                    "  asciidna encode '#01$002'",
}

func translate(cmd *cobra.Command, args []string) error {
	text, err := codon.Decode(strings.Join(args, ""))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func encode(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), codon.Encode(strings.Join(args, " ")))
	return nil
}

func init() {
	RootCmd.AddCommand(translateCmd)
	RootCmd.AddCommand(encodeCmd)
}
