package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquation_Discriminant(t *testing.T) {
	assert.Equal(t, 1.0, Equation{A: 1, B: -3, C: 2}.Discriminant())
	assert.Equal(t, 0.0, Equation{A: 1, B: 2, C: 1}.Discriminant())
	assert.Equal(t, -4.0, Equation{A: 1, B: 0, C: 1}.Discriminant())
}

func TestEquation_Classify(t *testing.T) {
	tests := []struct {
		name     string
		eq       Equation
		expected RootKind
	}{
		{"positive discriminant", Equation{A: 1, B: -3, C: 2}, TwoReal},
		{"zero discriminant", Equation{A: 1, B: 2, C: 1}, DoubleRoot},
		{"negative discriminant", Equation{A: 1, B: 0, C: 1}, ComplexPair},
		{"tiny positive is not zero", Equation{A: 1, B: 2, C: 1 - 1e-12}, TwoReal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.eq.Classify())
		})
	}
}

func TestEquation_String(t *testing.T) {
	assert.Equal(t, "1.00x^2 - 3.00x + 2.00 = 0", Equation{A: 1, B: -3, C: 2}.String())
	assert.Equal(t, "-2.50x^2 + 0.00x - 1.00 = 0", Equation{A: -2.5, B: 0, C: -1}.String())
}

func TestEquation_IsDegenerate(t *testing.T) {
	assert.True(t, Equation{A: 0, B: 1, C: 1}.IsDegenerate())
	assert.False(t, Equation{A: 0.1}.IsDegenerate())
}

func TestComplex_Format(t *testing.T) {
	c := Complex{Real: 0, Imag: 1}
	assert.Equal(t, "0.00 ± 1.00i", c.String())
	assert.Equal(t, "-0.5 ± 0.9i", Complex{Real: -0.5, Imag: 0.866}.Format(1))
}

func TestRootKind_String(t *testing.T) {
	assert.Equal(t, "two_real", TwoReal.String())
	assert.Equal(t, "double_root", DoubleRoot.String())
	assert.Equal(t, "complex_pair", ComplexPair.String())
	assert.Equal(t, "linear", Linear.String())

	text, err := ComplexPair.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "complex_pair", string(text))
}

func TestToken_Negative(t *testing.T) {
	assert.True(t, Token{Kind: TokenSign, Text: "-"}.Negative())
	assert.False(t, Token{Kind: TokenSign, Text: "+"}.Negative())
	assert.False(t, Token{Kind: TokenOther, Text: "--"}.Negative())
}
