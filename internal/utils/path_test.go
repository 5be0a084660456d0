package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		home     string
		expected string
	}{
		{
			name:     "plain path untouched",
			input:    "/repo/project",
			home:     "/home/user",
			expected: "/repo/project",
		},
		{
			name:     "tilde only",
			input:    "~",
			home:     "/home/user",
			expected: "/home/user",
		},
		{
			name:     "tilde prefix",
			input:    "~/projects/app",
			home:     "/home/user",
			expected: "/home/user/projects/app",
		},
		{
			name:     "tilde mid-path untouched",
			input:    "/tmp/~cache",
			home:     "/home/user",
			expected: "/tmp/~cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandTilde(tt.input, tt.home)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpandTilde_NoHome(t *testing.T) {
	_, err := ExpandTilde("~/projects", "")
	assert.Error(t, err)

	// Paths without the shorthand do not need a home directory
	result, err := ExpandTilde("/repo", "")
	require.NoError(t, err)
	assert.Equal(t, "/repo", result)
}

func TestCollapseTilde(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		home     string
		expected string
	}{
		{
			name:     "inside home",
			input:    "/home/user/projects/app",
			home:     "/home/user",
			expected: "~/projects/app",
		},
		{
			name:     "home itself",
			input:    "/home/user",
			home:     "/home/user",
			expected: "~",
		},
		{
			name:     "outside home",
			input:    "/var/log",
			home:     "/home/user",
			expected: "/var/log",
		},
		{
			name:     "sibling with shared prefix",
			input:    "/home/userdata",
			home:     "/home/user",
			expected: "/home/userdata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CollapseTilde(tt.input, tt.home))
		})
	}
}

func TestResolveAgainst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		docPath  string
		home     string
		expected string
	}{
		{
			name:     "absolute path",
			input:    "/repo/project",
			docPath:  "/configs/ds.yaml",
			home:     "/home/user",
			expected: "/repo/project",
		},
		{
			name:     "relative to document",
			input:    "sub/dir",
			docPath:  "/configs/ds.yaml",
			home:     "/home/user",
			expected: "/configs/sub/dir",
		},
		{
			name:     "tilde expanded",
			input:    "~/repo",
			docPath:  "/configs/ds.yaml",
			home:     "/home/user",
			expected: "/home/user/repo",
		},
		{
			name:     "dot segments cleaned",
			input:    "/repo/./a/../b",
			docPath:  "/configs/ds.yaml",
			home:     "/home/user",
			expected: "/repo/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveAgainst(tt.input, tt.docPath, tt.home)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithinRoot(t *testing.T) {
	assert.True(t, WithinRoot("/repo", "/repo"))
	assert.True(t, WithinRoot("/repo", "/repo/sub"))
	assert.True(t, WithinRoot("/repo", "/repo/sub/deep"))
	assert.False(t, WithinRoot("/repo", "/other"))
	assert.False(t, WithinRoot("/repo", "/repository"))
	assert.False(t, WithinRoot("/repo/sub", "/repo"))
	assert.False(t, WithinRoot("", "/repo"))
}
