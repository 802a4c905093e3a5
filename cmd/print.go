package cmd

import (
	"fmt"

	"github.com/vinciapp/vinci/internal/session"
)

// printPage prints a page's problems with its time target.
func printPage(manager *session.Manager, s *session.Session, page *session.Page) {
	header := fmt.Sprintf("Page %d of %d", page.Number, s.TotalPages)
	if target, err := manager.PageTargetTime(s, page.Number); err == nil {
		header += fmt.Sprintf(" (target %s)", formatSeconds(target))
	}
	fmt.Println(header)

	for _, pr := range page.Problems {
		status := " "
		if pr.Answered() {
			if pr.Correct() {
				status = "✓"
			} else {
				status = "✗"
			}
		}
		fmt.Printf("  %s %2d. %s\n", status, pr.Number, pr.Question)
	}
}

func formatSeconds(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs%60 == 0 {
		return fmt.Sprintf("%dm", secs/60)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
