package cli

import (
	"fmt"
	"strings"

	"github.com/shigedangao/simmer"
	"github.com/spf13/cobra"
)

var sentenceCmd = &cobra.Command{
	Use:   "sentence <text>...",
	Short: "Stem every word of a sentence",
	Long: `Split the text on whitespace, drop punctuation, lowercase and stem each word.

Examples:
  simmer sentence "Alex was an excellent dancer."   # alex wa an excel dancer`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSentence,
}

func init() {
	rootCmd.AddCommand(sentenceCmd)
}

func runSentence(cmd *cobra.Command, args []string) error {
	stems, err := simmer.StemSentence(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd, stems)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(stems, " "))
	return nil
}
