package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommandPretty(t *testing.T) {
	out, _, err := executeCommand(t, "", "show", "(36-149 1) (150-224 225-324 2)")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "GROUP")
	assert.Contains(t, lines[0], "RESOLUTION")
	assert.Contains(t, lines[1], "36-149")
	assert.Contains(t, lines[1], "114")
	assert.Contains(t, lines[3], "225-324")
}

func TestShowCommandJSON(t *testing.T) {
	out, _, err := executeCommand(t, "", "show", "--format", "json", "(36-149 1) (150-224 2)")
	require.NoError(t, err)

	payload := []binPayload{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.Equal(t, []binPayload{
		{Group: 0, Start: 36, End: 149, Resolution: 1},
		{Group: 1, Start: 150, End: 224, Resolution: 2},
	}, payload)
}

func TestShowCommandUnknownFormat(t *testing.T) {
	_, _, err := executeCommand(t, "", "show", "--format", "xml", "(36-149 1)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}
