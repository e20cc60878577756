package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/disjoint"
	"github.com/rawbytedev/disjoint/pkg/groupfile"
)

const frame = "../../pkg/groupfile/testdata/frame.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"groupcheck"}, args...))
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--file", frame)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = run(t, "validate", "--file", frame, "--length", "9")
	require.ErrorIs(t, err, disjoint.ErrOutOfBounds)
	assert.Equal(t, "OutOfBounds\n", out)

	out, err = run(t, "validate", "-f", "../../pkg/groupfile/testdata/overlap.yml")
	require.ErrorIs(t, err, disjoint.ErrNotDisjoint)
	assert.Equal(t, "NotDisjoint\n", out)

	out, err = run(t, "validate", "-f", "../../pkg/groupfile/testdata/overlap.yml", "--shared")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "--file", "../../pkg/groupfile/testdata/frame.toml")
	require.NoError(t, err)
	assert.Equal(t, "header: [0 1 2]\nbody: [3 4 5 8 9]\npadding: []\n", out)

	_, err = run(t, "show", "--file", frame, "-n", "4")
	require.ErrorIs(t, err, disjoint.ErrOutOfBounds)
}

func TestMissingFile(t *testing.T) {
	_, err := run(t, "validate", "--file", "nope.yaml")
	require.Error(t, err)
	_, err = run(t, "validate")
	require.Error(t, err)
}

func TestLengthFlag(t *testing.T) {
	_, err := run(t, "validate", "--file", frame, "--length", "-1")
	require.ErrorIs(t, err, groupfile.ErrNegativeLength)
	_, err = run(t, "show", "--file", frame, "-n", "-7")
	require.ErrorIs(t, err, groupfile.ErrNegativeLength)

	out, err := run(t, "validate", "--file", frame, "--length", "0")
	require.ErrorIs(t, err, disjoint.ErrOutOfBounds)
	assert.Equal(t, "OutOfBounds\n", out)
}

func TestShowRefusesHugeLength(t *testing.T) {
	_, err := run(t, "show", "--file", frame, "--length", "1000000000000")
	require.ErrorIs(t, err, errTooLong)

	_, err = run(t, "show", "--file", frame, "--length", "1048576")
	require.NoError(t, err)
}
