package mixed

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func testGen() *Generator {
	return New(rand.New(rand.NewSource(7)))
}

// operatorCount counts operator tokens in a question.
func operatorCount(question string) int {
	n := 0
	for _, tok := range tokenize(question) {
		switch tok {
		case "+", "-", "*", "/":
			n++
		}
	}
	return n
}

func TestGenerate_AnswerMatchesEvaluation(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 300; i++ {
			f, err := g.Generate(level)
			if err != nil {
				t.Fatalf("level %d: %v", level, err)
			}
			want, err := strconv.Atoi(f.Answer)
			if err != nil {
				t.Fatalf("level %d: non-integer answer %q", level, f.Answer)
			}
			got, err := Eval(f.Question)
			if err != nil {
				t.Fatalf("level %d: question %q does not evaluate: %v", level, f.Question, err)
			}
			if got != want {
				t.Errorf("level %d: %s = %s, evaluator says %d", level, f.Question, f.Answer, got)
			}
			if want < 0 {
				t.Errorf("level %d: negative answer for %q", level, f.Question)
			}
		}
	}
}

func TestGenerate_StepCountsByDifficulty(t *testing.T) {
	g := testGen()
	for level := 1; level <= 2; level++ {
		for i := 0; i < 100; i++ {
			f, _ := g.Generate(level)
			if n := operatorCount(f.Question); n != 2 {
				t.Errorf("level %d: expected 2 operations, got %d in %q", level, n, f.Question)
			}
		}
	}
	for level := 3; level <= 5; level++ {
		for i := 0; i < 100; i++ {
			f, _ := g.Generate(level)
			if n := operatorCount(f.Question); n != 3 {
				t.Errorf("level %d: expected 3 operations, got %d in %q", level, n, f.Question)
			}
		}
	}
}

func TestGenerate_SurvivingParensAreMeaningful(t *testing.T) {
	g := testGen()
	for level := 1; level <= 5; level++ {
		for i := 0; i < 200; i++ {
			f, _ := g.Generate(level)
			if !strings.ContainsRune(f.Question, '(') {
				continue
			}
			bare := strings.NewReplacer("(", "", ")", "").Replace(f.Question)
			bare = strings.Join(strings.Fields(bare), " ")
			orig, err := Eval(f.Question)
			if err != nil {
				t.Fatalf("level %d: %q: %v", level, f.Question, err)
			}
			if v, err := Eval(bare); err == nil && v == orig {
				t.Errorf("level %d: %q keeps redundant parentheses", level, f.Question)
			}
		}
	}
}

func TestGenerate_InvalidLevel(t *testing.T) {
	g := testGen()
	for _, level := range []int{0, 6, -3} {
		if _, err := g.Generate(level); err == nil {
			t.Errorf("Generate(%d) should fail", level)
		}
	}
}

func TestTwoStepThreeStep_Direct(t *testing.T) {
	g := testGen()
	f, err := g.TwoStep(4)
	if err != nil {
		t.Fatal(err)
	}
	if n := operatorCount(f.Question); n != 2 {
		t.Errorf("TwoStep: expected 2 operations, got %d in %q", n, f.Question)
	}
	f, err = g.ThreeStep(1)
	if err != nil {
		t.Fatal(err)
	}
	if n := operatorCount(f.Question); n != 3 {
		t.Errorf("ThreeStep: expected 3 operations, got %d in %q", n, f.Question)
	}
}
