package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
	"github.com/custodia-labs/quadra-cli/internal/logger"
)

// Token counts of the two accepted productions.
const (
	fullFormLen  = 7 // ax^2 SIGN bx SIGN c = 0
	shortFormLen = 5 // ax^2 SIGN (bx | c) = 0
)

// Parser reads coefficients from a single input line.
//
// The grammar has two productions selected by token count:
//
//	QUAD SIGN LINEAR SIGN CONST EQ ZERO
//	QUAD SIGN (LINEAR | CONST) EQ ZERO
//
// Sign fields negate only when they are exactly "-". The trailing
// "= 0" fields are counted but never inspected.
type Parser struct{}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the coefficients of line or a *domain.ParseError.
// On failure the returned Equation is always the zero value.
func (p *Parser) Parse(line string) (domain.Equation, error) {
	tokens := Tokenize(line)
	logger.Debug("tokens: %s", formatTokens(tokens))

	if len(tokens) != fullFormLen && len(tokens) != shortFormLen {
		return domain.Equation{}, &domain.ParseError{Kind: domain.WrongTokenCount, Count: len(tokens)}
	}

	a, err := parseLeading(tokens[0])
	if err != nil {
		return domain.Equation{}, err
	}

	eq := domain.Equation{A: a}
	sign, term := tokens[1], tokens[2]

	if len(tokens) == fullFormLen {
		if !hasVariable(term) {
			return domain.Equation{}, &domain.ParseError{
				Kind:        domain.MissingLinearMarker,
				Coefficient: domain.CoefficientB,
				Token:       term.Text,
			}
		}
		if eq.B, err = parseLinear(sign, term); err != nil {
			return domain.Equation{}, err
		}
		if eq.C, err = parseConstant(tokens[3], tokens[4]); err != nil {
			return domain.Equation{}, err
		}
		return eq, nil
	}

	if hasVariable(term) {
		eq.B, err = parseLinear(sign, term)
	} else {
		eq.C, err = parseConstant(sign, term)
	}
	if err != nil {
		return domain.Equation{}, err
	}
	return eq, nil
}

// parseLeading reads a from "ax^2". A bare "-" means -1 and an empty
// prefix means 1.
func parseLeading(t domain.Token) (float64, error) {
	prefix, _, found := strings.Cut(t.Text, quadraticMarker)
	if !found {
		return 0, &domain.ParseError{Kind: domain.MissingQuadraticMarker, Token: t.Text}
	}
	switch prefix {
	case "-":
		return -1, nil
	case "":
		return 1, nil
	}
	return parseNumber(prefix, domain.CoefficientA, t)
}

// parseLinear reads b from "bx", signed by the preceding field.
func parseLinear(sign, t domain.Token) (float64, error) {
	prefix, _, _ := strings.Cut(t.Text, variableMarker)
	v, err := parseNumber(prefix, domain.CoefficientB, t)
	if err != nil {
		return 0, err
	}
	return applySign(sign, v), nil
}

// parseConstant reads c, signed by the preceding field.
func parseConstant(sign, t domain.Token) (float64, error) {
	v, err := parseNumber(t.Text, domain.CoefficientC, t)
	if err != nil {
		return 0, err
	}
	return applySign(sign, v), nil
}

// parseNumber reads a decimal float. Out-of-range values saturate to ±Inf
// or zero; hexadecimal literals are not accepted.
func parseNumber(s string, which domain.Coefficient, t domain.Token) (float64, error) {
	invalid := &domain.ParseError{Kind: domain.InvalidCoefficient, Coefficient: which, Token: t.Text}

	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, invalid
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, invalid
	}
	return v, nil
}

func applySign(sign domain.Token, v float64) float64 {
	if sign.Negative() {
		return -v
	}
	return v
}

func formatTokens(tokens []domain.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Kind.String() + "(" + t.Text + ")"
	}
	return strings.Join(parts, " ")
}
