package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/celebrate"
	"github.com/vinciapp/vinci/internal/session"
)

var submitCmd = &cobra.Command{
	Use:   "submit <session-id> <page>",
	Short: "Submit a page and show its performance",
	RunE: func(cmd *cobra.Command, args []string) error {
		pageNumber, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid page number %q", args[1])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := st.Sessions().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		manager := session.NewManager(nil)
		result, err := manager.SubmitPage(s, pageNumber)
		if err != nil {
			return err
		}
		if err := st.Sessions().Save(cmd.Context(), s); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		perf := result.Performance
		fmt.Printf("Page %d submitted.\n", result.PageNumber)
		fmt.Printf("Correct: %d of %d (%.0f%% accuracy)\n",
			perf.CorrectAnswers, perf.TotalProblems, perf.Accuracy*100)

		if s.Completed() {
			fmt.Println()
			printCelebration(s.ScorePercentage())
		} else {
			fmt.Printf("\nNext: vinci page %s %d\n", s.ID, pageNumber+1)
		}
		return nil
	},
	Args: cobra.ExactArgs(2),
}

// printCelebration prints the session-end celebration for a score.
func printCelebration(score float64) {
	fmt.Printf("Session complete! Overall score: %.0f%%\n", score)
	if c := celebrate.ForScore(score); c != nil {
		fmt.Printf("%s %s\n", c.Message, c.SubMessage)
	}
}
