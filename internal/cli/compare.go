package cli

import (
	"fmt"
	"strings"

	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/shigedangao/simmer/internal/usecase"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <word>...",
	Short: "Compare Porter stems with the Snowball English stemmer",
	Long: `Stem each word with this Porter implementation and with Snowball
(Porter2) English, and flag the words where they disagree.

Examples:
  simmer compare happy generously skies`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	uc := usecase.NewCompareUseCase(
		newTokenizer(GetConfig()),
		analyzer.NewPorterStemmer(),
		analyzer.NewSnowballStemmer(),
	)

	results, err := uc.Compare(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd, results)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-20s %-16s %-16s\n", "WORD", "PORTER", "SNOWBALL")
	for _, r := range results {
		mark := ""
		if !r.Agree {
			mark = "  (differs)"
		}
		fmt.Fprintf(w, "%-20s %-16s %-16s%s\n", r.Word, r.Porter, r.Snowball, mark)
	}
	return nil
}
