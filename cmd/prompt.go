package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/aiaware/aiaware/internal/advisor"
	"github.com/aiaware/aiaware/internal/llm"
	"github.com/aiaware/aiaware/internal/promptkit"
	"github.com/aiaware/aiaware/internal/ui/components"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Build safe questions for an AI helper",
}

var promptExamplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show the example and quick questions",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Example")
		fmt.Fprintln(w, strings.Repeat("─", 60))
		fmt.Fprintln(w, promptkit.Example)
		fmt.Fprintln(w, promptkit.WhyItWorks)
		for _, t := range promptkit.QuickQuestions() {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "%s (aiaware check %s)\n", t.Title, t.Check.Slug())
			fmt.Fprintln(w, strings.Repeat("─", 60))
			fmt.Fprintln(w, t.Text)
		}
	},
}

var promptBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a question from a role, a check type, focus items and a style",
	Long: `Assemble a question from a role, a check type, up to three focus items
and an answer style.

Roles:       ` + joinChoices(promptkit.Roles) + `
Check types: ` + joinSlugs() + `
Focus:       ` + strings.Join(promptkit.FocusOptions, ", ") + `
Styles:      ` + joinChoices(promptkit.Styles),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := builderFromFlags(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), b.Build())
		return nil
	},
}

// builderFromFlags applies --role, --check, --focus and --style.
func builderFromFlags(cmd *cobra.Command) (*promptkit.Builder, error) {
	b := promptkit.NewBuilder()
	if s, _ := cmd.Flags().GetString("role"); s != "" {
		r, err := promptkit.ParseRole(s)
		if err != nil {
			return nil, err
		}
		if err := b.SetRole(r); err != nil {
			return nil, err
		}
	}
	if s, _ := cmd.Flags().GetString("check"); s != "" {
		c, err := promptkit.ParseCheckType(s)
		if err != nil {
			return nil, err
		}
		if err := b.SetCheckType(c); err != nil {
			return nil, err
		}
	}
	if s, _ := cmd.Flags().GetString("style"); s != "" {
		st, err := promptkit.ParseStyle(s)
		if err != nil {
			return nil, err
		}
		if err := b.SetStyle(st); err != nil {
			return nil, err
		}
	}
	focus, _ := cmd.Flags().GetStringSlice("focus")
	for _, f := range focus {
		if _, err := b.Toggle(strings.TrimSpace(f)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func joinChoices[T ~string](choices []T) string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = string(c)
	}
	return strings.Join(out, ", ")
}

func joinSlugs() string {
	out := make([]string, len(promptkit.CheckTypes))
	for i, c := range promptkit.CheckTypes {
		out[i] = c.Slug()
	}
	return strings.Join(out, ", ")
}

var checkCmd = &cobra.Command{
	Use:   "check <kind>",
	Short: "Ask the AI helper to check pasted text (read from stdin) for warning signs",
	Long: `Ask the AI helper to check pasted text for warning signs.

The text is read from --file or standard input. The kind is one of:
` + joinSlugs() + `

Without a configured LLM, pass --demo to try the offline helper.`,
	Example: `  pbpaste | aiaware check job-ad
  aiaware check chat --file messages.txt --demo`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := promptkit.ParseCheckType(args[0])
		if err != nil {
			return err
		}
		content, err := readContent(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		helper, err := newHelper(cmd, st.EventRepo())
		if err != nil {
			return err
		}

		question, _ := cmd.Flags().GetString("question")
		a, err := helper.Check(cmd.Context(), advisor.CheckInput{
			Check:    kind,
			Question: question,
			Content:  content,
		})
		var refused *llm.ErrRefused
		if errors.As(err, &refused) {
			return fmt.Errorf("%w\nThat does not mean it is safe. If someone may be in danger, run `aiaware report` for the help line", err)
		}
		if err != nil {
			return err
		}
		printAssessment(cmd.OutOrStdout(), a)
		return nil
	},
}

// readContent reads --file, or standard input when no file is given.
func readContent(cmd *cobra.Command) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", advisor.ErrEmptyContent
	}
	return string(data), nil
}

func printAssessment(w io.Writer, a *advisor.Assessment) {
	lipgloss.Fprintln(w, components.Gauge{Score: a.Score, Width: 40}.View())
	fmt.Fprintln(w)
	if a.Summary != "" {
		fmt.Fprintln(w, a.Summary)
		fmt.Fprintln(w)
	}
	printList(w, "Why", a.Reasons)
	if len(a.Quotes) > 0 {
		quoted := make([]string, len(a.Quotes))
		for i, q := range a.Quotes {
			quoted[i] = "“" + q + "”"
		}
		printList(w, "Words that stood out", quoted)
	}
	printList(w, "What to do next", a.NextSteps)
	if !a.LabelAgrees() {
		fmt.Fprintf(w, "(The helper called this %s; the score decides the band.)\n", a.Label.Label())
	}
	if a.Model != "" {
		fmt.Fprintf(w, "Checked by %s. AI can be wrong; trust your gut and talk to someone.\n", a.Model)
	}
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, title+":")
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
	fmt.Fprintln(w)
}

var explainCmd = &cobra.Command{
	Use:   "explain <level-id>",
	Short: "Ask the AI helper to walk through a scenario level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		l, err := e.catalog.GetLevel(args[0])
		if err != nil {
			return err
		}
		sc, ok := l.Scenario()
		if !ok {
			return fmt.Errorf("level %q is a %s, not a scenario", l.ID, strings.ToLower(l.Kind().Label()))
		}

		helper, err := newHelper(cmd, e.store.EventRepo())
		if err != nil {
			return err
		}
		text, err := helper.Explain(cmd.Context(), sc)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, sc.Prompt)
		fmt.Fprintln(w, strings.Repeat("─", 60))
		fmt.Fprintln(w, text)
		return nil
	},
}

func init() {
	promptBuildCmd.Flags().String("role", "", "Who the helper should be")
	promptBuildCmd.Flags().String("check", "", "What you are checking (e.g. job-ad, chat)")
	promptBuildCmd.Flags().StringSlice("focus", nil, "Up to three focus items, comma separated")
	promptBuildCmd.Flags().String("style", "", "How the helper should answer")

	checkCmd.Flags().StringP("file", "f", "", "Read the text from a file instead of stdin")
	checkCmd.Flags().StringP("question", "q", "", "Question to ask instead of the quick question for the kind")

	promptCmd.AddCommand(promptExamplesCmd)
	promptCmd.AddCommand(promptBuildCmd)
}
