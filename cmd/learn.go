package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/progress"
	"github.com/aiaware/aiaware/internal/store"
)

var completeCmd = &cobra.Command{
	Use:   "complete <level-id>",
	Short: "Mark a level as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		engine := e.session.Engine()
		levelID := args[0]
		l, moduleID, ok := engine.Catalog().Level(levelID)
		if !ok {
			return fmt.Errorf("level %q: %w", levelID, progress.ErrUnknownLevel)
		}
		if l.Kind() == catalog.KindQuiz {
			if _, answered := engine.Answer(levelID); !answered {
				return fmt.Errorf("level %q is a quiz: answer it first with `aiaware answer %s <option>`", levelID, levelID)
			}
		}

		badges := len(engine.EarnedBadges())
		if err := e.session.Complete(cmd.Context(), levelID); err != nil {
			if errors.Is(err, progress.ErrLocked) {
				return fmt.Errorf("%q is locked: finish the previous level first", levelID)
			}
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "✅ %s\n", l.Title)
		reportBadge(w, engine, moduleID, badges)
		return nil
	},
}

var answerCmd = &cobra.Command{
	Use:   "answer <level-id> <option>",
	Short: "Answer a quiz by letter (a, b, ...) or option text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		engine := e.session.Engine()
		levelID := args[0]
		l, moduleID, ok := engine.Catalog().Level(levelID)
		if !ok {
			return fmt.Errorf("level %q: %w", levelID, progress.ErrUnknownLevel)
		}
		q, ok := l.Quiz()
		if !ok {
			return fmt.Errorf("level %q: %w", levelID, progress.ErrNotQuiz)
		}

		_, replay := engine.Answer(levelID)
		badges := len(engine.EarnedBadges())
		out, err := e.session.Answer(cmd.Context(), levelID, resolveOption(q, args[1]))
		if err != nil {
			if errors.Is(err, progress.ErrUnknownOption) {
				return fmt.Errorf("%q is not one of the options: %w", args[1], err)
			}
			return err
		}

		w := cmd.OutOrStdout()
		if replay {
			fmt.Fprintf(w, "You already answered %q; answers are final.\n", out.Option)
		}
		if out.Correct {
			fmt.Fprintln(w, "✓ Correct!")
		} else {
			fmt.Fprintln(w, "✗ Not quite.")
			if c, ok := q.CorrectOption(); ok {
				fmt.Fprintf(w, "The answer is %q.\n", c.Text)
			}
		}
		if q.Explanation != "" {
			fmt.Fprintln(w, q.Explanation)
		}
		reportBadge(w, engine, moduleID, badges)
		return nil
	},
}

// resolveOption maps a single letter to the option text unless arg already
// names an option exactly; anything else is taken as the text itself.
func resolveOption(q *catalog.Quiz, arg string) string {
	if _, ok := q.OptionByText(arg); ok {
		return arg
	}
	if len(arg) == 1 {
		i := int(strings.ToLower(arg)[0]) - 'a'
		if i >= 0 && i < len(q.Options) {
			return q.Options[i].Text
		}
	}
	return arg
}

func reportBadge(w io.Writer, engine *progress.Engine, moduleID string, before int) {
	if len(engine.EarnedBadges()) == before {
		return
	}
	if m, ok := engine.Catalog().Module(moduleID); ok {
		fmt.Fprintf(w, "🏅 Badge earned: %s (%s)\n", m.BadgeID, m.Title)
	}
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show overall and per-module progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		printProgress(cmd.OutOrStdout(), e.session.Engine())
		return nil
	},
}

func printProgress(w io.Writer, engine *progress.Engine) {
	r := engine.Summary()
	if engine.Strict() {
		fmt.Fprintln(w, "Strict gating: levels unlock in order.")
	}
	fmt.Fprintf(w, "Overall  %s %3.0f%%  (%d/%d levels)\n", bar(r.Percent, 24), r.Percent, r.Completed, r.Total)
	fmt.Fprintln(w, strings.Repeat("─", 72))
	for _, m := range r.Modules {
		badge := ""
		if m.BadgeEarned {
			badge = "🏅 " + m.BadgeID
		}
		fmt.Fprintf(w, "%-28s %s %3.0f%%  %d/%d  %s\n", truncate(m.Title, 28), bar(m.Percent, 16), m.Percent, m.Completed, m.Total, badge)
	}
	fmt.Fprintln(w)
	if len(r.Badges) == 0 {
		fmt.Fprintln(w, "No badges yet. Finish every level of a module to earn one.")
		return
	}
	names := make([]string, 0, len(r.Badges))
	for _, id := range r.Badges {
		if m, ok := engine.Catalog().BadgeModule(id); ok {
			id += " (" + m.Title + ")"
		}
		names = append(names, id)
	}
	fmt.Fprintf(w, "Badges: %s\n", strings.Join(names, ", "))
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the progress event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryProgressEvents(cmd.Context(), store.QueryOpts{Limit: limit, Newest: true})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(w, "No progress recorded yet.")
			return nil
		}
		fmt.Fprintf(w, "%-19s  %-16s  %-24s  %s\n", "Timestamp", "Event", "Level", "Detail")
		fmt.Fprintln(w, strings.Repeat("─", 80))
		for _, ev := range events {
			fmt.Fprintf(w, "%-19s  %-16s  %-24s  %s\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ev.Kind, ev.LevelID, eventDetail(ev))
		}
		return nil
	},
}

func eventDetail(ev store.ProgressEventRecord) string {
	switch progress.EventKind(ev.Kind) {
	case progress.EventAnswerRecorded:
		mark := "✗"
		if ev.Correct {
			mark = "✓"
		}
		return fmt.Sprintf("%s %q", mark, ev.Option)
	case progress.EventBadgeEarned:
		return "🏅 " + ev.BadgeID
	}
	return ev.ModuleID
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 30, "Number of events to show")
}
