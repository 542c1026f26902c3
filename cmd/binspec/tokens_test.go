package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensCommand(t *testing.T) {
	out, _, err := executeCommand(t, "", "tokens", "(36-149 1)")
	require.NoError(t, err)

	assert.Equal(t, `(:open_group "(" [1 1])
(:atom "36-149" [1 2])
(:atom "1" [1 9])
(:close_group ")" [1 10])
`, out)
}

func TestTokensCommandAll(t *testing.T) {
	out, _, err := executeCommand(t, "", "tokens", "--all", "(1-2 3)")
	require.NoError(t, err)

	assert.Contains(t, out, `(:separator " " [1 5])`)
	assert.Contains(t, out, `(:EOF "" [1 8])`)
}
