package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("  hello  "))
	assert.Equal(t, "hello", SanitizeText("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold", SanitizeText("<b>bold</b>"))
	assert.Equal(t, "", SanitizeText("   "))
}
