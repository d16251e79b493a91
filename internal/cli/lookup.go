package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shigedangao/simmer/config"
	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/shigedangao/simmer/internal/adapter/store"
	"github.com/shigedangao/simmer/internal/port"
	"github.com/shigedangao/simmer/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "List the indexed forms sharing a word's stem",
	Long: `Stem the word and print every surface form in the index that reduces to
the same stem, with occurrence counts.

Examples:
  simmer lookup connection          # connect, connected, connecting, ...
  simmer lookup --json relational   # JSON output`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	dbPath := config.IndexDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("index not found at %s; run 'simmer index' first", dbPath)
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	migration, err := st.CheckMigration(GetConfig())
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}
	if migration.NeedsRebuild {
		logger.Warn("index is stale, run 'simmer index' again", zap.String("reason", migration.Reason))
	}

	uc := usecase.NewLookupUseCase(st, newTokenizer(GetConfig()), analyzer.NewPorterStemmer())

	group, err := uc.Lookup(args[0])
	if errors.Is(err, port.ErrNotFound) {
		return fmt.Errorf("no indexed word shares the stem of %q", args[0])
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd, group)
	}

	forms := make([]string, 0, len(group.Forms))
	for form := range group.Forms {
		forms = append(forms, form)
	}
	sort.Slice(forms, func(i, j int) bool {
		if group.Forms[forms[i]] != group.Forms[forms[j]] {
			return group.Forms[forms[i]] > group.Forms[forms[j]]
		}
		return forms[i] < forms[j]
	})

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Stem %q (%d occurrences)\n", group.Stem, group.Total)
	for _, form := range forms {
		fmt.Fprintf(w, "  %-24s %d\n", form, group.Forms[form])
	}
	return nil
}
