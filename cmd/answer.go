package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/session"
)

var answerCmd = &cobra.Command{
	Use:   "answer <session-id> <page> <problem> <answer>",
	Short: "Submit an answer to a problem",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageNumber, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid page number %q", args[1])
		}
		problemNumber, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid problem number %q", args[2])
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
		score, err := manager.SubmitAnswer(s, pageNumber, problemNumber, args[3])
		if err != nil {
			return err
		}
		if err := st.Sessions().Save(cmd.Context(), s); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		if score > 0 {
			fmt.Printf("Correct! +%d points\n", score)
		} else {
			fmt.Println("Incorrect. You can try again until the page is submitted.")
		}
		return nil
	},
}
