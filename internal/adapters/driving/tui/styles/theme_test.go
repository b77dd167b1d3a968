package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	assert.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
	assert.Contains(t, s.Result.Render("x ≈ 1.00"), "x ≈ 1.00")
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)
	assert.Equal(t, DefaultTheme(), s.Theme())
}
