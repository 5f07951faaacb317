package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiaware/aiaware/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes all saved progress; run again with --yes to confirm")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := session.Reset(cmd.Context(), st.SnapshotRepo()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared. The event log is kept.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
}
