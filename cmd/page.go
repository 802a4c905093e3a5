package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/session"
)

var pageCmd = &cobra.Command{
	Use:   "page <session-id> <page-number>",
	Short: "Show a page, generating it if the previous page is submitted",
	Args:  cobra.ExactArgs(2),
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
		existed := s.FindPage(pageNumber) != nil
		page, err := manager.GetOrCreatePage(s, pageNumber)
		if err != nil {
			return err
		}
		if !existed {
			if err := st.Sessions().Save(cmd.Context(), s); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
		}

		printPage(manager, s, page)
		return nil
	},
}
