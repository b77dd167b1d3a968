package services

import (
	"strings"

	"github.com/custodia-labs/quadra-cli/internal/core/domain"
)

// Markers recognised by the lexer.
const (
	quadraticMarker = "x^2"
	variableMarker  = "x"
)

// Tokenize normalises decimal commas to periods, splits the line on
// whitespace and classifies each field.
func Tokenize(line string) []domain.Token {
	fields := strings.Fields(strings.ReplaceAll(line, ",", "."))
	tokens := make([]domain.Token, len(fields))
	for i, f := range fields {
		tokens[i] = domain.Token{Kind: classify(f), Text: f, Pos: i}
	}
	return tokens
}

func classify(field string) domain.TokenKind {
	switch {
	case strings.Contains(field, quadraticMarker):
		return domain.TokenQuadratic
	case field == "+" || field == "-":
		return domain.TokenSign
	case strings.Contains(field, variableMarker):
		return domain.TokenLinear
	case strings.Contains(field, "="):
		return domain.TokenEquals
	default:
		return domain.TokenConstant
	}
}

// hasVariable reports whether a field carries x in any power.
func hasVariable(t domain.Token) bool {
	return t.Kind == domain.TokenQuadratic || t.Kind == domain.TokenLinear
}
