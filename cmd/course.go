package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/progress"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Browse the course",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules and levels with their lock state",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		printCourse(cmd.OutOrStdout(), e.session.Engine())
		return nil
	},
}

var courseShowCmd = &cobra.Command{
	Use:   "show <level-id>",
	Short: "Show a level's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		reveal, _ := cmd.Flags().GetBool("reveal")
		return printLevel(cmd.OutOrStdout(), e.session.Engine(), args[0], reveal)
	},
}

func init() {
	courseShowCmd.Flags().Bool("reveal", false, "Show a scenario's red flags and lesson")

	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseShowCmd)
}

func printCourse(w io.Writer, engine *progress.Engine) {
	for i, m := range engine.Catalog().Modules() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		badge := "🏅 " + m.BadgeID
		if !engine.HasBadge(m.BadgeID) {
			badge = "(" + m.BadgeID + ")"
		}
		fmt.Fprintf(w, "%s  %s %3.0f%%  %s\n", m.Title, bar(engine.ModuleProgress(m.ID), 20), engine.ModuleProgress(m.ID), badge)
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, l := range m.Levels {
			state := engine.LevelState(m.ID, l.ID)
			fmt.Fprintf(w, "  %s  %-24s  %-9s  %s\n", state.Icon(), l.ID, l.Kind().Label(), l.Title)
		}
	}
}

func printLevel(w io.Writer, engine *progress.Engine, levelID string, reveal bool) error {
	l, moduleID, ok := engine.Catalog().Level(levelID)
	if !ok {
		return fmt.Errorf("level %q: %w", levelID, progress.ErrUnknownLevel)
	}
	state := engine.LevelState(moduleID, levelID)

	fmt.Fprintf(w, "%s  %s\n", state.Icon(), l.Title)
	fmt.Fprintf(w, "%s · %s · %s\n\n", moduleID, l.Kind().Label(), state.Label())
	if l.Body != "" {
		fmt.Fprintln(w, l.Body)
		fmt.Fprintln(w)
	}

	switch p := l.Payload.(type) {
	case *catalog.Quiz:
		fmt.Fprintln(w, p.Question)
		for i, o := range p.Options {
			fmt.Fprintf(w, "  %c) %s\n", 'a'+i, o.Text)
		}
		if out, answered := engine.Answer(levelID); answered {
			verdict := "not quite"
			if out.Correct {
				verdict = "correct"
			}
			fmt.Fprintf(w, "\nYou answered %q (%s).\n", out.Option, verdict)
			if p.Explanation != "" {
				fmt.Fprintln(w, p.Explanation)
			}
		}
	case *catalog.Scenario:
		fmt.Fprintln(w, p.Prompt)
		if reveal {
			fmt.Fprintln(w, "\nRed flags:")
			for _, h := range p.Highlights {
				fmt.Fprintf(w, "  - %s\n", h)
			}
			if p.Resolution != "" {
				fmt.Fprintf(w, "\n%s\n", p.Resolution)
			}
			if p.Takeaway != "" {
				fmt.Fprintf(w, "Lesson: %s\n", p.Takeaway)
			}
		} else {
			fmt.Fprintln(w, "\n(run with --reveal to see the red flags)")
		}
	case *catalog.Activity:
		fmt.Fprintln(w, p.Instructions)
	}
	return nil
}

// bar renders a text progress bar for a 0-100 percentage.
func bar(percent float64, width int) string {
	filled := int(percent * float64(width) / 100)
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
