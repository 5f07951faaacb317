package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aiaware/aiaware/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive course",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, resumes the session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	// Anything written to stderr would draw over the alt screen.
	logger = zap.NewNop()

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{
		Session: e.session,
		Events:  e.store.EventRepo(),
		Logger:  logger,
	}

	helper, err := newHelper(cmd, e.store.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI helper not configured:", err)
		fmt.Fprintln(os.Stderr, "Safety checks and scenario walkthroughs will be unavailable.")
	} else {
		opts.Helper = helper
	}

	return app.Run(cmd.Context(), opts)
}
