package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runArgs drives run with a config path that never exists.
func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	missing := filepath.Join(t.TempDir(), "absent.toml")
	code := run(append([]string{"--config", missing}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_ScenarioWithComplement(t *testing.T) {
	code, out, _ := runArgs(t, "-n", "4", "-e", "0-1,1-0", "-c")
	require.Equal(t, exitOK, code)
	want := "(0): 1100\n" +
		"(1): 1100\n" +
		"(2): 1011\n" +
		"(3): 0111\n" +
		"vertices: 4\n" +
		"edges: 5\n" +
		"density: 0.8333\n" +
		"isolated: []\n" +
		"degrees: [2 2 3 3]\n"
	require.Equal(t, want, out)
}

func TestRun_RejectedEdgeIsLogged(t *testing.T) {
	code, out, logs := runArgs(t, "-n", "3", "-e", "0-3,1-1,0-2", "-q")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "edges: 1\n")
	require.Contains(t, logs, "reason=\"out of range\"")
	require.Contains(t, logs, "reason=self-loop")
}

func TestRun_Topologies(t *testing.T) {
	tests := []struct {
		args  []string
		edges string
	}{
		{[]string{"-n", "5", "-t", "cycle"}, "edges: 5\n"},
		{[]string{"-n", "6", "-t", "grid", "--cols", "3"}, "edges: 7\n"},
		{[]string{"-n", "6", "-t", "star", "--size", "4"}, "edges: 3\n"},
		{[]string{"-n", "8", "-t", "regular", "--degree", "3", "--seed", "4"}, "edges: 12\n"},
		{[]string{"-n", "5", "-t", "random", "-p", "1"}, "edges: 10\n"},
		{[]string{"-n", "12", "-t", "regular", "--degree", "8"}, "edges: 48\n"},
	}
	for _, tc := range tests {
		code, out, logs := runArgs(t, append(tc.args, "-q")...)
		require.Equal(t, exitOK, code, logs)
		require.Contains(t, out, tc.edges, tc.args)
	}
}

func TestRun_Failures(t *testing.T) {
	for _, args := range [][]string{
		{"-t", "hypercube"},
		{"-n", "2", "-t", "cycle"},
		{"-n", "6", "-t", "grid", "--cols", "4"},
		{"-e", "zero-one"},
		{"--verbosity", "loud"},
		{"--no-such-flag"},
	} {
		code, _, _ := runArgs(t, args...)
		require.Equal(t, exitUsage, code, args)
	}
}

func TestRun_Help(t *testing.T) {
	code, _, _ := runArgs(t, "--help")
	require.Equal(t, exitOK, code)
}
