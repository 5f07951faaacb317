package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/store"
)

// logger is built in PersistentPreRunE; commands that draw the TUI swap it
// for a nop logger so stderr output cannot corrupt the screen.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "aiaware",
	Short: "Learn to use AI safely",
	Long: `AI Aware is a terminal course about using AI wisely and spotting the signs
of human trafficking. Work through short levels, earn a badge per module,
and build careful questions for an AI helper.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AIAWARE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Course file or directory of YAML files (default: built-in course)")
	rootCmd.PersistentFlags().String("lang", "en", "Course language for the built-in course (BCP 47; available: "+localeList()+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().Bool("strict", false, "Refuse to complete levels whose previous level is not done")
	rootCmd.PersistentFlags().Bool("demo", false, "Use the offline demo helper instead of a real LLM")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds a console logger at warn level, or debug with verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AIAWARE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// localeList names the built-in course translations, e.g. "en, es".
func localeList() string {
	tags := catalog.SeedLocales()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
