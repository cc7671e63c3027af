package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFitCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"center", []string{"fit", "--size", "2,2,2", "--fov", "90", "--aspect", "1", "--distance", "10"}, "scale=10.000000 iterations=2 converged=true"},
		{"half", []string{"fit", "--size", "2,2,2", "--fov", "90", "--aspect", "1", "--distance", "10", "--percentage", "50"}, "scale=5.000000"},
		{"capped", []string{"fit", "--size", "2,2,2", "--fov", "90", "--aspect", "1", "--distance", "10", "--max-iterations", "1"}, "converged=false"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}

	t.Run("degenerate", func(t *testing.T) {
		_, err := run(t, "fit", "--size", "2,0,2")
		assert.Error(t, err)
	})

	t.Run("bad_size", func(t *testing.T) {
		_, err := run(t, "fit", "--size", "2,2")
		assert.Error(t, err)
	})
}

func TestSimulateCommand(t *testing.T) {
	out, err := run(t, "simulate", "--frames", "4", "--every", "2", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "frame=2 entity=camera"), lines[0])
	assert.Contains(t, out, "frame=4 entity=panel")
	assert.NotContains(t, out, "frame=1 ")

	_, err = run(t, "simulate", "--frames", "-1")
	assert.Error(t, err)
}

func TestSimulateWithScript(t *testing.T) {
	out, err := run(t, "simulate", "--frames", "2", "--dt", "500ms", "--script", "orbit.tengo", "--log-level", "error")
	require.NoError(t, err)
	assert.NotContains(t, out, "frame=2 entity=camera pos=(0.0000, 1.6000, 4.0000)")
}
