package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shigedangao/simmer/config"
	"github.com/shigedangao/simmer/internal/adapter/fs"
	"github.com/shigedangao/simmer/internal/adapter/store"
	"github.com/shigedangao/simmer/internal/usecase"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Build the stem index of a directory",
	Long: `Stem every word of the matching files in the directory and group the
surface forms by stem. The index is stored in .simmer/index.db within the
target directory and is updated incrementally on later runs.

Examples:
  simmer index .                 # Index current directory
  simmer index /path/to/corpus   # Index specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	if err := config.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create .simmer directory: %w", err)
	}

	dbPath := config.IndexDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	migration, err := st.CheckMigration(cfg)
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}

	if migration.NeedsRebuild {
		logger.Info("rebuilding index", zap.String("reason", migration.Reason))
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear index: %w", err)
		}
	} else if migration.NeedsMigration {
		logger.Info("migrating index schema", zap.String("reason", migration.Reason))
		if err := st.Migrate(cfg); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	indexUC := usecase.NewIndexUseCase(
		st,
		fs.NewWalker(cfg.Index.Includes, cfg.Index.Excludes),
		fs.Reader{},
		newTokenizer(cfg),
	)

	logger.Debug("scanning", zap.String("path", path))

	var (
		bar         *progressbar.ProgressBar
		barMu       sync.Mutex
		startTime   time.Time
		initialized bool
	)

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if jsonOutput {
			return
		}

		if !initialized {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Indexing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(cmd.ErrOrStderr())
				}),
			)
			initialized = true
		}

		_ = bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Indexing[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := indexUC.Index(path, progress)
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	if err := st.Migrate(cfg); err != nil {
		return fmt.Errorf("failed to update schema info: %w", err)
	}

	for _, e := range result.Errors {
		logger.Warn("file not indexed", zap.String("error", e))
	}
	logger.Debug("indexing finished",
		zap.Int("indexed", result.FilesIndexed),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("deleted", result.FilesDeleted),
	)

	if jsonOutput {
		return printJSON(cmd, result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\nIndexing complete:\n")
	fmt.Fprintf(w, "  Files indexed:  %d\n", result.FilesIndexed)
	fmt.Fprintf(w, "  Files skipped:  %d (unchanged)\n", result.FilesSkipped)
	fmt.Fprintf(w, "  Files deleted:  %d (removed)\n", result.FilesDeleted)
	fmt.Fprintf(w, "  Documents:      %d\n", result.Stats.TotalDocs)
	fmt.Fprintf(w, "  Stem groups:    %d\n", result.Stats.TotalGroups)
	fmt.Fprintf(w, "  Tokens:         %d\n", result.Stats.TotalTokens)

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	fmt.Fprintf(w, "\nIndex stored at: %s\n", dbPath)
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
