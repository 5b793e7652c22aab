package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Flags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-kind", "vec2", "-mode", "catmull-rom", "-samples", "2",
		"-times", "0,1,3,4", "-keys", "0,0; 1,2; 3,1; 4,0"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "0.0000\t1.000000\t2.000000\n1.0000\t3.000000\t1.000000\n", stdout.String())
}

func TestRun_ListModes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-modes"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "cubic-bezier-mirrored")
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 7)
}

func TestRun_CurveFile(t *testing.T) {
	path := writeFile(t, "curve.yml", `
kind: vec4
mode: cubic-bezier
samples: 2
keys:
  - value: [0, 0, 0, 0]
  - value: [1, 1, 1, 1]
  - value: [2, 2, 2, 2]
  - value: [3, 3, 3, 3]
`)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-curve", path}, &stdout, &stderr))
	assert.True(t, strings.HasPrefix(stdout.String(), "0.0000\t0.000000"))
	assert.Contains(t, stdout.String(), "1.0000\t3.000000\t3.000000\t3.000000\t3.000000")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"-nosuchflag"}, &stdout, &stderr))
	require.Error(t, run([]string{"-keys", "0,0,0", "-times", "a"}, &stdout, &stderr))
	require.Error(t, run([]string{"-keys", "0,0,0;1,1,1", "-times", "0"}, &stdout, &stderr))
	require.Error(t, run([]string{"-curve", "/nonexistent.toml"}, &stdout, &stderr))
	require.Error(t, run([]string{"-mode", "cubic-bezier", "-keys", "0,0,0;1,1,1"}, &stdout, &stderr))
}
