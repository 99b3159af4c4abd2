package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "test_data",
			expected: "test_data",
		},
		{
			name:     "string with whitespace",
			input:    "  test_data  ",
			expected: "test_data",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseEventData(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		event string
		value string
		ok    bool
	}{
		{name: "event with value", data: eventData("quiz.answer", "went"), event: "quiz.answer", value: "went", ok: true},
		{name: "value with colon", data: "quiz.answer:a:b", event: "quiz.answer", value: "a:b", ok: true},
		{name: "empty value", data: "wod.show:", event: "wod.show", value: "", ok: true},
		{name: "unprintable stripped", data: " quiz.answer:went\x00 ", event: "quiz.answer", value: "went", ok: true},
		{name: "no separator", data: "quiz.answer", ok: false},
		{name: "no event", data: ":went", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, value, ok := parseEventData(tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.event, event)
			assert.Equal(t, tt.value, value)
		})
	}
}
