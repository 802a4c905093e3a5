package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Show session statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			s, err := st.Sessions().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSessionStats(s)
			return nil
		}

		userID, _ := cmd.Flags().GetString("user")
		sessions, err := st.Sessions().List(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}
		for _, s := range sessions {
			status := fmt.Sprintf("%d/%d pages", len(s.Pages), s.TotalPages)
			if s.Completed() {
				status = fmt.Sprintf("done, %.0f%%", s.ScorePercentage())
			}
			fmt.Printf("%s  %s  %-12s  %s\n",
				s.CreatedAt.Format("2006-01-02 15:04"), s.ID, s.GradeLevel, status)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "List sessions for this user id (empty for anonymous)")
}

func printSessionStats(s *session.Session) {
	fmt.Printf("Session %s\n", s.ID)
	fmt.Printf("Grade: %s   Concepts: %v   Created: %s\n\n",
		s.GradeLevel, s.Concepts, s.CreatedAt.Format("2006-01-02 15:04"))

	for _, page := range s.Pages {
		perf := page.Performance()
		line := fmt.Sprintf("Page %d: %d/%d correct (%.0f%%)",
			page.Number, perf.CorrectAnswers, perf.TotalProblems, perf.Accuracy*100)
		if !page.Submitted() {
			line += "  [in progress]"
		} else {
			line += fmt.Sprintf("  in %s", formatSeconds(int(page.ActualSeconds())))
		}
		fmt.Println(line)
	}

	if s.Completed() {
		fmt.Println()
		printCelebration(s.ScorePercentage())
	}
}
