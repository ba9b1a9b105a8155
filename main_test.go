package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := renderTable([][]string{
		{"#", "Name"},
		{"1", "first_steps"},
		{"10", "x"},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	width := lipgloss.Width(lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, width, lipgloss.Width(line))
	}
	assert.Contains(t, lines[1], "first_steps")
}

func TestRenderTableEmpty(t *testing.T) {
	assert.Empty(t, renderTable(nil))
}
