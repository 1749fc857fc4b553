// Package config loads cgraph settings from defaults, an optional TOML file,
// CGRAPH_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "cgraph.toml"

// EnvPrefix prefixes every environment override (e.g. CGRAPH_VERTICES=8).
const EnvPrefix = "CGRAPH_"

// Topology names accepted by the "topology" key.
const (
	TopologyNone          = "none"
	TopologyComplete      = "complete"
	TopologyCycle         = "cycle"
	TopologyPath          = "path"
	TopologyStar          = "star"
	TopologyWheel         = "wheel"
	TopologyGrid          = "grid"
	TopologyRandom        = "random"
	TopologyRandomRegular = "regular"
)

var (
	// ErrInvalid wraps every semantic validation failure of a loaded Config.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds all configuration for the cgraph command.
type Config struct {
	Vertices    int     `koanf:"vertices"`
	Edges       string  `koanf:"edges"`
	Topology    string  `koanf:"topology"`
	Size        int     `koanf:"size"`
	Cols        int     `koanf:"cols"`
	Degree      int     `koanf:"degree"`
	Probability float64 `koanf:"probability"`
	Seed        int64   `koanf:"seed"`
	Complement  bool    `koanf:"complement"`
	Quiet       bool    `koanf:"quiet"`
	Verbosity   string  `koanf:"verbosity"`
	VerboseCnt  int     `koanf:"verbose"`
	JSON        bool    `koanf:"json"`
	File        string  `koanf:"config"`
}

// Defaults is the lowest-priority layer.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"vertices":    4,
		"edges":       "",
		"topology":    TopologyNone,
		"size":        0,
		"cols":        0,
		"degree":      0,
		"probability": 0.5,
		"seed":        int64(1),
		"complement":  false,
		"quiet":       false,
		"verbosity":   "",
		"verbose":     0,
		"json":        false,
		"config":      DefaultFile,
	}
}

// RegisterFlags declares every flag on f. Flag names equal config keys so the
// posflag provider can map them directly.
func RegisterFlags(f *pflag.FlagSet) {
	d := Defaults()
	f.IntP("vertices", "n", d["vertices"].(int), "number of vertices N")
	f.StringP("edges", "e", "", `explicit edges, e.g. "0-1,1-2"`)
	f.StringP("topology", "t", TopologyNone, "builder topology: none|complete|cycle|path|star|wheel|grid|random|regular")
	f.Int("size", 0, "vertices used by the topology (0 = all)")
	f.Int("cols", 0, "grid columns (grid topology)")
	f.Int("degree", 0, "degree (regular topology)")
	f.Float64P("probability", "p", d["probability"].(float64), "edge probability (random topology)")
	f.Int64("seed", d["seed"].(int64), "RNG seed for random topologies")
	f.BoolP("complement", "c", false, "replace the graph with its complement before printing")
	f.BoolP("quiet", "q", false, "print only the summary, not the rows")
	f.String("verbosity", "", "log level: trace|debug|info|warn|error")
	f.CountP("verbose", "v", "increase log verbosity (repeatable)")
	f.Bool("json", false, "log as JSON")
	f.String("config", DefaultFile, "optional TOML config file")
}

// Load resolves configuration. Priority: Flags > Env > Config File > Defaults.
// A missing config file is not an error; a malformed one is.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file (optional)
	path := configPath(f)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	// 3. Environment Variables
	// Prefix: CGRAPH_ (e.g., CGRAPH_VERTICES=8)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// configPath picks the config file: --config when given, then
// CGRAPH_CONFIG, then DefaultFile. It runs before the env and flag layers
// are loaded, so it reads both sources directly.
func configPath(f *pflag.FlagSet) string {
	if f != nil && f.Changed("config") {
		if p, err := f.GetString("config"); err == nil && p != "" {
			return p
		}
	}
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}

	return DefaultFile
}

// Validate checks cross-field constraints that the graph layer cannot see.
func (c *Config) Validate() error {
	if c.Vertices < 0 {
		return fmt.Errorf("vertices=%d: %w", c.Vertices, ErrInvalid)
	}
	if c.Size < 0 || c.Size > c.Vertices {
		return fmt.Errorf("size=%d not in [0,%d]: %w", c.Size, c.Vertices, ErrInvalid)
	}
	switch strings.ToLower(c.Topology) {
	case TopologyNone, TopologyComplete, TopologyCycle, TopologyPath, TopologyStar,
		TopologyWheel, TopologyGrid, TopologyRandom, TopologyRandomRegular:
	default:
		return fmt.Errorf("topology=%q: %w", c.Topology, ErrInvalid)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("probability=%g: %w", c.Probability, ErrInvalid)
	}

	return nil
}

// TopologySize is the number of vertices the topology spans.
func (c *Config) TopologySize() int {
	if c.Size == 0 {
		return c.Vertices
	}
	return c.Size
}

// Pair is one explicit edge from the "edges" key.
type Pair struct {
	U, V int
}

// ParseEdges parses "0-1, 1-2 ,3-0" into pairs. Empty input yields no pairs.
// Range checking is left to the graph, which reports it per edge.
func ParseEdges(s string) ([]Pair, error) {
	var out []Pair
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		a, b, ok := strings.Cut(tok, "-")
		if !ok {
			return nil, fmt.Errorf("edge %q: want u-v: %w", tok, ErrInvalid)
		}
		u, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", tok, errors.Join(ErrInvalid, err))
		}
		v, err := strconv.Atoi(strings.TrimSpace(b))
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", tok, errors.Join(ErrInvalid, err))
		}
		out = append(out, Pair{U: u, V: v})
	}

	return out, nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("not implemented")
}
