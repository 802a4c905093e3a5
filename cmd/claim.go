package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:   "claim <session-id> <user-id>",
	Short: "Assign an anonymous session to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := st.Sessions().Claim(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Session %s now belongs to %s\n", s.ID, s.UserID)
		return nil
	},
}
