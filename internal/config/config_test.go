package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// newFlags returns a parsed flag set; the config file defaults to a path that
// does not exist so the working directory never leaks into tests.
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("cgraph", pflag.ContinueOnError)
	RegisterFlags(f)
	missing := filepath.Join(t.TempDir(), "absent.toml")
	require.NoError(t, f.Parse(append([]string{"--config", missing}, args...)))
	return f
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Vertices)
	require.Equal(t, TopologyNone, cfg.Topology)
	require.Equal(t, 0.5, cfg.Probability)
	require.Equal(t, int64(1), cfg.Seed)
	require.False(t, cfg.Complement)
	require.Equal(t, 4, cfg.TopologySize())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cgraph.toml")
	body := "vertices = 10\ntopology = \"cycle\"\nseed = 99\ncomplement = true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("CGRAPH_TOPOLOGY", "path")
	t.Setenv("CGRAPH_SEED", "5")

	f := pflag.NewFlagSet("cgraph", pflag.ContinueOnError)
	RegisterFlags(f)
	require.NoError(t, f.Parse([]string{"--config", path, "--seed", "7", "-vv"}))

	cfg, err := Load(f)
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Vertices, "file beats defaults")
	require.True(t, cfg.Complement, "file beats defaults")
	require.Equal(t, "path", cfg.Topology, "env beats file")
	require.Equal(t, int64(7), cfg.Seed, "flag beats env")
	require.Equal(t, 2, cfg.VerboseCnt)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("vertices = = 3"), 0o600))

	f := pflag.NewFlagSet("cgraph", pflag.ContinueOnError)
	RegisterFlags(f)
	require.NoError(t, f.Parse([]string{"--config", path}))

	_, err := Load(f)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	base := Config{Vertices: 4, Topology: TopologyNone, Probability: 0.5}
	require.NoError(t, base.Validate())

	tests := []struct {
		name string
		mut  func(c *Config)
	}{
		{"NegativeVertices", func(c *Config) { c.Vertices = -1 }},
		{"SizeTooLarge", func(c *Config) { c.Size = 5 }},
		{"UnknownTopology", func(c *Config) { c.Topology = "hypercube" }},
		{"Probability", func(c *Config) { c.Probability = 1.5 }},
	}
	for _, tc := range tests {
		c := base
		tc.mut(&c)
		require.ErrorIs(t, c.Validate(), ErrInvalid, tc.name)
	}
}

func TestParseEdges(t *testing.T) {
	t.Parallel()
	got, err := ParseEdges(" 0-1, 1-2 ,,3 - 0")
	require.NoError(t, err)
	require.Equal(t, []Pair{{0, 1}, {1, 2}, {3, 0}}, got)

	got, err = ParseEdges("")
	require.NoError(t, err)
	require.Empty(t, got)

	for _, bad := range []string{"0:1", "a-1", "1-b", "1-"} {
		_, err = ParseEdges(bad)
		require.ErrorIs(t, err, ErrInvalid, bad)
	}
}

// TestLoad_ConfigPathFromEnv resolves the file named by CGRAPH_CONFIG when
// --config is not given, and lets --config win when it is.
func TestLoad_ConfigPathFromEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(envPath, []byte("vertices = 9\n"), 0o600))
	flagPath := filepath.Join(dir, "flag.toml")
	require.NoError(t, os.WriteFile(flagPath, []byte("vertices = 6\n"), 0o600))
	t.Setenv("CGRAPH_CONFIG", envPath)

	f := pflag.NewFlagSet("cgraph", pflag.ContinueOnError)
	RegisterFlags(f)
	require.NoError(t, f.Parse(nil))
	cfg, err := Load(f)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Vertices)
	require.Equal(t, envPath, cfg.File)

	cfg, err = Load(newFlags(t, "--config", flagPath))
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Vertices)
	require.Equal(t, flagPath, cfg.File)
}
