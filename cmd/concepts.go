package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vinciapp/vinci/internal/concepts"
	"github.com/vinciapp/vinci/internal/grades"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List practice concepts, optionally filtered by grade",
	RunE: func(cmd *cobra.Command, args []string) error {
		gradeVal, _ := cmd.Flags().GetString("grade")

		var grade grades.Grade
		if gradeVal != "" {
			g, err := grades.Parse(gradeVal)
			if err != nil {
				return err
			}
			grade = g
		}

		infos, err := concepts.List(grade)
		if err != nil {
			return err
		}

		for _, info := range infos {
			line := fmt.Sprintf("%-18s %s", info.ID, info.DisplayName)
			if len(info.Subcategories) > 0 {
				line += fmt.Sprintf("  [%s]", strings.Join(info.Subcategories, ", "))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	conceptsCmd.Flags().String("grade", "", `Only show concepts appropriate for this grade, e.g. "3rd Grade"`)
}
