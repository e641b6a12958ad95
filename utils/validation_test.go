package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+919876543210",
		"9876543210",
		"+1 (415) 555-2671",
		"+44 20 7946 0958",
	}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"abc",
		"0123456789",
		"+",
		"++919876543210",
	}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestValidateImageSize(t *testing.T) {
	assert.True(t, ValidateImageSize(1024))
	assert.True(t, ValidateImageSize(MaxImageSize))
	assert.False(t, ValidateImageSize(MaxImageSize+1))
}
