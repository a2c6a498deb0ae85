package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("dana@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@portal.gov"))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidatePassword(t *testing.T) {
	ok, reason := ValidatePassword("longenough")
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = ValidatePassword("short")
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello  "))
	assert.Equal(t, "ab", SanitizeInput("a\x00b"))
	assert.Equal(t, "", SanitizeInput("   "))
}
