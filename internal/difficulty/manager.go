package difficulty

import (
	"fmt"
	"sort"

	"github.com/vinciapp/vinci/internal/grades"
)

// PagePerformance summarizes the previous page for difficulty selection.
// Accuracy is correct answers over total problems on the page; unanswered
// problems count against it.
type PagePerformance struct {
	Accuracy float64
}

// ForPage returns the difficulty configuration for a page. Page 1 uses the
// grade's fixed starting configuration. Later pages scan the grade's ordered
// rule list for the page (pages past the last authored page reuse it): the
// first rule whose accuracy bound exceeds the previous page's accuracy wins.
//
// A missing grade table or an exhausted rule scan is a configuration error
// and propagates; it never defaults silently.
func ForPage(pageNumber int, grade grades.Grade, prev *PagePerformance) (Config, error) {
	table, ok := tables[grade]
	if !ok {
		return Config{}, fmt.Errorf("unsupported grade level: %q", string(grade))
	}

	if pageNumber <= 1 {
		return table.page1, nil
	}

	if prev == nil {
		return Config{}, fmt.Errorf("page %d requires previous page performance", pageNumber)
	}

	rules := rulesForPage(table, pageNumber)
	for _, rule := range rules {
		if prev.Accuracy < rule.MaxAccuracy {
			return rule.Config, nil
		}
	}
	return Config{}, fmt.Errorf(
		"no difficulty rule matched accuracy %v for grade %q page %d: rule table misconfigured",
		prev.Accuracy, string(grade), pageNumber)
}

// TierForPage returns the name of the rule tier that would be selected.
func TierForPage(pageNumber int, grade grades.Grade, prev *PagePerformance) (string, error) {
	table, ok := tables[grade]
	if !ok {
		return "", fmt.Errorf("unsupported grade level: %q", string(grade))
	}
	if pageNumber <= 1 || prev == nil {
		return "", nil
	}
	for _, rule := range rulesForPage(table, pageNumber) {
		if prev.Accuracy < rule.MaxAccuracy {
			return rule.Tier, nil
		}
	}
	return "", fmt.Errorf("no difficulty rule matched for grade %q page %d", string(grade), pageNumber)
}

// rulesForPage resolves the rule list for a page number, falling back to the
// highest authored page when the session runs longer than the table.
func rulesForPage(table gradeTable, pageNumber int) []Rule {
	if rules, ok := table.pages[pageNumber]; ok {
		return rules
	}
	pages := make([]int, 0, len(table.pages))
	for p := range table.pages {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return table.pages[pages[len(pages)-1]]
}
