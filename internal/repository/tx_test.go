package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	tests := map[string]string{
		"":      "%%",
		"Hop":   "%hop%",
		"50%":   "%50!%%",
		"a_b":   "%a!_b%",
		"wow!":  "%wow!!%",
		"C:\\x": "%c:\\x%",
	}
	for in, want := range tests {
		assert.Equal(t, want, likePattern(in), "term %q", in)
	}
}
