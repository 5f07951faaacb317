package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiaware/aiaware/internal/helpline"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"help-line"},
	Short:   "Where to report a concern or get help",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, helpline.Emergency)
		fmt.Fprintln(w)
		fmt.Fprintln(w, helpline.Reassurance)
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, c := range helpline.Contacts() {
			fmt.Fprintln(w)
			fmt.Fprintln(w, c.String())
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Staying safe while you report:")
		for _, tip := range helpline.PrivacyTips() {
			fmt.Fprintf(w, "  - %s\n", tip)
		}
	},
}
