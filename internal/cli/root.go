package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shigedangao/simmer/config"
	"github.com/shigedangao/simmer/internal/adapter/analyzer"
	"github.com/shigedangao/simmer/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile    string
	cfg        *config.Config
	rootDir    string
	jsonOutput bool
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "simmer",
	Short: "Porter stemmer for English words",
	Long: `simmer reduces English words to their Porter stems, and can build a
stem index of a directory so that every surface form of a stem can be
looked up.

Example usage:
  simmer stem connected connecting        # Stem words
  simmer sentence "Alex was dancing."     # Stem every word of a sentence
  simmer index .                          # Index current directory
  simmer lookup connection                # Forms sharing a stem`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logger.Debug("config loaded", zap.String("dir", rootDir), zap.String("config", cfgFile))

		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./simmer.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// newTokenizer builds the tokenizer described by the analysis config.
func newTokenizer(c *config.Config) *analyzer.Tokenizer {
	return analyzer.NewTokenizer(analyzer.TokenizerOptions{
		Stemming:       true,
		Stopwords:      c.Analysis.Stopwords,
		MinLength:      c.Analysis.MinLength,
		FoldDiacritics: c.Analysis.FoldDiacritics,
	})
}

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
