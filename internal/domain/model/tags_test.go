package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercase and trim",
			input:    []string{"  Beach ", "SUNSET"},
			expected: []string{"beach", "sunset"},
		},
		{
			name:     "duplicates collapse to first appearance",
			input:    []string{"cat", "CAT", " cat "},
			expected: []string{"cat"},
		},
		{
			name:     "empties dropped",
			input:    []string{"", "   ", "dog"},
			expected: []string{"dog"},
		},
		{
			name:     "order kept",
			input:    []string{"zebra", "ant", "zebra", "bee"},
			expected: []string{"zebra", "ant", "bee"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTags(tt.input))
		})
	}
}

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindInvalidInput, KindOf(NewInvalidInput("empty upload")))
	assert.Equal(t, KindResourceLimit, KindOf(NewResourceLimit("too big")))
	assert.Equal(t, KindStorage, KindOf(NewStorageError("write failed", nil, true)))
	assert.True(t, IsNotFound(NewNotFound("no image 7")))
	assert.Equal(t, KindUnknown, KindOf(assert.AnError))
}
