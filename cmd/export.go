package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Write a session as JSON to stdout or a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := st.Sessions().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return export.Export(s, out)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a session from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		s, err := export.Import(f)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Sessions().Save(cmd.Context(), s); err != nil {
			return fmt.Errorf("save imported session: %w", err)
		}
		fmt.Printf("Imported session %s (%s, %d pages)\n", s.ID, s.GradeLevel, len(s.Pages))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
