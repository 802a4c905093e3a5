package mixed

import (
	"fmt"
	"strings"
	"unicode"
)

// Eval evaluates an arithmetic expression with +, -, ×/÷ (or */ /),
// parentheses, and standard operator precedence. Division must be exact;
// an inexact division is an error.
func Eval(expr string) (int, error) {
	p := &parser{tokens: tokenize(expr)}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		return 0, fmt.Errorf("unexpected token %q in %q", p.tokens[p.pos], expr)
	}
	return v, nil
}

// tokenize splits an expression into number, operator, and paren tokens.
func tokenize(expr string) []string {
	var tokens []string
	var num strings.Builder

	flush := func() {
		if num.Len() > 0 {
			tokens = append(tokens, num.String())
			num.Reset()
		}
	}

	for _, r := range expr {
		switch {
		case unicode.IsDigit(r):
			num.WriteRune(r)
		case r == '+' || r == '-' || r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case r == '×' || r == '*':
			flush()
			tokens = append(tokens, "*")
		case r == '÷' || r == '/':
			flush()
			tokens = append(tokens, "/")
		case r == ' ':
			flush()
		}
	}
	flush()
	return tokens
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (int, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case "+":
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case "-":
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// parseTerm handles × and ÷.
func (p *parser) parseTerm() (int, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case "*":
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			left *= right
		case "/":
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			if left%right != 0 {
				return 0, fmt.Errorf("inexact division %d/%d", left, right)
			}
			left /= right
		default:
			return left, nil
		}
	}
}

// parseFactor handles numbers and parenthesized sub-expressions.
func (p *parser) parseFactor() (int, error) {
	tok := p.peek()
	if tok == "" {
		return 0, fmt.Errorf("unexpected end of expression")
	}
	if tok == "(" {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ")" {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}

	var n int
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid number %q", tok)
	}
	p.pos++
	return n, nil
}

// stripRedundantParens removes parentheses that do not change evaluation
// order: the expression is evaluated with and without them, and the bare
// form wins when both agree.
func stripRedundantParens(expr string) string {
	if !strings.ContainsRune(expr, '(') {
		return expr
	}
	orig, err := Eval(expr)
	if err != nil {
		return expr
	}
	bare := strings.NewReplacer("(", "", ")", "").Replace(expr)
	bare = strings.Join(strings.Fields(bare), " ")
	if v, err := Eval(bare); err == nil && v == orig {
		return bare
	}
	return expr
}
