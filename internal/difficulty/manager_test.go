package difficulty

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vinciapp/vinci/internal/grades"
)

func TestTables_EveryGradeAuthored(t *testing.T) {
	for _, g := range grades.All() {
		table, ok := tables[g]
		if !ok {
			t.Errorf("no table for grade %q", g)
			continue
		}
		if err := table.page1.validate(); err != nil {
			t.Errorf("grade %q page 1: %v", g, err)
		}
		for page, rules := range table.pages {
			if len(rules) == 0 {
				t.Errorf("grade %q page %d: empty rule list", g, page)
				continue
			}
			prev := -1.0
			for i, rule := range rules {
				if err := rule.Config.validate(); err != nil {
					t.Errorf("grade %q page %d rule %d: %v", g, page, i, err)
				}
				if rule.MaxAccuracy <= prev {
					t.Errorf("grade %q page %d rule %d: thresholds not ascending", g, page, i)
				}
				prev = rule.MaxAccuracy
			}
			if !math.IsInf(rules[len(rules)-1].MaxAccuracy, 1) {
				t.Errorf("grade %q page %d: last rule bound must be +Inf", g, page)
			}
		}
	}
}

func TestTables_MaxLevelMonotoneInAccuracy(t *testing.T) {
	for _, g := range grades.All() {
		for page, rules := range tables[g].pages {
			prevMax := 0
			for i, rule := range rules {
				if rule.Config.MaxLevel() < prevMax {
					t.Errorf("grade %q page %d rule %d (%s): max level decreases with accuracy",
						g, page, i, rule.Tier)
				}
				prevMax = rule.Config.MaxLevel()
			}
		}
	}
}

func TestForPage_PageOneFixed(t *testing.T) {
	cfg, err := ForPage(1, grades.Third, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Levels) != 2 || cfg.Levels[0] != 1 || cfg.Levels[1] != 2 {
		t.Errorf("3rd Grade page 1 levels = %v, want [1 2]", cfg.Levels)
	}
}

func TestForPage_AccuracySelectsTier(t *testing.T) {
	high, err := ForPage(2, grades.Third, &PagePerformance{Accuracy: 0.95})
	if err != nil {
		t.Fatal(err)
	}
	low, err := ForPage(2, grades.Third, &PagePerformance{Accuracy: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if high.MaxLevel() < low.MaxLevel() {
		t.Errorf("higher accuracy got lower max level: %d < %d", high.MaxLevel(), low.MaxLevel())
	}

	tier, err := TierForPage(2, grades.Third, &PagePerformance{Accuracy: 0})
	if err != nil {
		t.Fatal(err)
	}
	if tier != TierStruggling {
		t.Errorf("zero accuracy tier = %q, want %q", tier, TierStruggling)
	}
}

func TestForPage_MonotoneAcrossAllGrades(t *testing.T) {
	accuracies := []float64{0, 0.25, 0.45, 0.65, 0.9, 1.0}
	for _, g := range grades.All() {
		for page := 2; page <= 3; page++ {
			prevMax := 0
			for _, acc := range accuracies {
				cfg, err := ForPage(page, g, &PagePerformance{Accuracy: acc})
				if err != nil {
					t.Fatalf("grade %q page %d accuracy %v: %v", g, page, acc, err)
				}
				if cfg.MaxLevel() < prevMax {
					t.Errorf("grade %q page %d: max level drops at accuracy %v", g, page, acc)
				}
				prevMax = cfg.MaxLevel()
			}
		}
	}
}

func TestForPage_LaterPagesReuseLastAuthored(t *testing.T) {
	for _, page := range []int{4, 7, 10} {
		got, err := ForPage(page, grades.Fifth, &PagePerformance{Accuracy: 0.7})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		want, err := ForPage(3, grades.Fifth, &PagePerformance{Accuracy: 0.7})
		if err != nil {
			t.Fatal(err)
		}
		if got.MaxLevel() != want.MaxLevel() || len(got.Levels) != len(want.Levels) {
			t.Errorf("page %d config differs from page 3 config", page)
		}
	}
}

func TestForPage_Errors(t *testing.T) {
	if _, err := ForPage(1, grades.Grade("College"), nil); err == nil {
		t.Error("expected error for unsupported grade")
	}
	if _, err := ForPage(2, grades.Third, nil); err == nil {
		t.Error("expected error for missing previous performance")
	}
}

func TestSample_RespectsDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	cfg := Config{Levels: []int{1, 2}, Distribution: []float64{0.7, 0.3}}

	counts := map[int]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		level := cfg.Sample(r)
		if level != 1 && level != 2 {
			t.Fatalf("sampled level %d outside config", level)
		}
		counts[level]++
	}
	ratio := float64(counts[1]) / n
	if ratio < 0.65 || ratio > 0.75 {
		t.Errorf("level 1 sampled at %v, want about 0.7", ratio)
	}
}

func TestSample_SingleLevel(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	cfg := Config{Levels: []int{3}, Distribution: []float64{1.0}}
	for i := 0; i < 100; i++ {
		if l := cfg.Sample(r); l != 3 {
			t.Fatalf("sampled %d from single-level config", l)
		}
	}
}
