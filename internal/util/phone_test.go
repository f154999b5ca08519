package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "bare local number", raw: "9876543210", expected: "+919876543210"},
		{name: "local number with separators", raw: "98765-43210", expected: "+919876543210"},
		{name: "already has country code", raw: "919876543210", expected: "+919876543210"},
		{name: "plus and country code", raw: "+91 98765 43210", expected: "+919876543210"},
		{name: "foreign country code passes through", raw: "+44 7911 123456", expected: "+447911123456"},
		{name: "short number passes through", raw: "12345", expected: "+12345"},
		{name: "empty input", raw: "", expected: ""},
		{name: "no digits at all", raw: "abc-def", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.raw, "91"))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a b@c.com"))
	assert.False(t, IsValidEmail(""))
}
