package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtCommand(t *testing.T) {
	out, errOut, err := executeCommand(t, "", "fmt", "( 149-36   1 )\n(150-224 2)")
	require.NoError(t, err)

	assert.Equal(t, "(36-149 1) (150-224 2)\n", out)
	assert.Equal(t, "Bin 149-36 specified backward; corrected to 36-149\n", errOut)
}

func TestFmtCommandInvalid(t *testing.T) {
	out, _, err := executeCommand(t, "", "fmt", "(10-20 x)")
	require.Error(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, "Resolution in bin group 0 is not a positive integer.", err.Error())
}
