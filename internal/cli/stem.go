package cli

import (
	"fmt"
	"strings"

	"github.com/shigedangao/simmer"
	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/spf13/cobra"
)

var stemExplain bool

var stemCmd = &cobra.Command{
	Use:   "stem <word>...",
	Short: "Print the Porter stem of each word",
	Long: `Print the Porter stem of each word, one per line.

Examples:
  simmer stem caresses ponies       # caress, poni
  simmer stem --explain hopping     # show runs, measure and every step`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStem,
}

func init() {
	rootCmd.AddCommand(stemCmd)
	stemCmd.Flags().BoolVar(&stemExplain, "explain", false, "show the consonant/vowel pattern, measure and each step")
}

type stemOutput struct {
	Word    string                `json:"word"`
	Stem    string                `json:"stem"`
	Pattern string                `json:"pattern,omitempty"`
	Measure int                   `json:"measure"`
	Steps   []analyzer.StepResult `json:"steps,omitempty"`
}

func runStem(cmd *cobra.Command, args []string) error {
	results := make([]stemOutput, 0, len(args))

	for _, arg := range args {
		stem, err := simmer.Stem(arg)
		if err != nil {
			return err
		}
		out := stemOutput{Word: arg, Stem: stem}

		if stemExplain {
			if out, err = explain(out); err != nil {
				return err
			}
		}
		results = append(results, out)
	}

	if jsonOutput {
		return printJSON(cmd, results)
	}

	w := cmd.OutOrStdout()
	for _, r := range results {
		if !stemExplain {
			fmt.Fprintln(w, r.Stem)
			continue
		}
		fmt.Fprintf(w, "%s  [%s] m=%d\n", r.Word, r.Pattern, r.Measure)
		for _, s := range r.Steps {
			mark := " "
			if s.Changed {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s step %-2s %s\n", mark, s.Step, s.Word)
		}
		fmt.Fprintf(w, "  => %s\n", r.Stem)
	}
	return nil
}

func explain(out stemOutput) (stemOutput, error) {
	word := strings.ToLower(out.Word)

	runs, err := analyzer.Segment(word)
	if err != nil {
		return out, err
	}
	out.Pattern = analyzer.Pattern(runs)
	out.Measure = analyzer.Measure(runs)

	out.Steps, err = analyzer.NewPorterStemmer().Trace(word)
	return out, err
}
