package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/session"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Create a session and print its first page",
	Example: `  vinci start --grade "3rd Grade" --concepts addition,subtraction --minutes 10 --pages 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		conceptList, _ := cmd.Flags().GetString("concepts")
		minutes, _ := cmd.Flags().GetInt("minutes")
		pages, _ := cmd.Flags().GetInt("pages")
		userID, _ := cmd.Flags().GetString("user")
		semester, _ := cmd.Flags().GetString("semester")

		conceptIDs := splitConcepts(conceptList)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		manager := session.NewManager(nil)
		s, err := manager.NewSession(session.NewSessionInput{
			UserID:            userID,
			ConceptIDs:        conceptIDs,
			TotalStudySeconds: minutes * 60,
			TotalPages:        pages,
			GradeLevel:        grade,
			Semester:          semester,
		})
		if err != nil {
			return err
		}
		page, err := manager.GetOrCreatePage(s, 1)
		if err != nil {
			return err
		}
		if err := st.Sessions().Save(cmd.Context(), s); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		fmt.Printf("Session %s\n", s.ID)
		fmt.Printf("Grade: %s   Pages: %d   Time: %dm\n\n", s.GradeLevel, s.TotalPages, minutes)
		printPage(manager, s, page)
		return nil
	},
}

func init() {
	startCmd.Flags().String("grade", "", `Grade level, e.g. "3rd Grade" (required)`)
	startCmd.Flags().String("concepts", "", "Comma-separated concept ids (required)")
	startCmd.Flags().Int("minutes", 10, "Total study time in minutes")
	startCmd.Flags().Int("pages", 2, "Number of pages")
	startCmd.Flags().String("user", "", "Owner user id (empty for anonymous)")
	startCmd.Flags().String("semester", "", "Optional semester label")
	_ = startCmd.MarkFlagRequired("grade")
	_ = startCmd.MarkFlagRequired("concepts")
}

func splitConcepts(list string) []string {
	var ids []string
	for _, part := range strings.Split(list, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
