package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ornata/compressed-graph/builder"
	"github.com/ornata/compressed-graph/core"
	"github.com/ornata/compressed-graph/internal/config"
	"github.com/ornata/compressed-graph/internal/logging"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK    = 0
	exitUsage = 1
)

var errTopology = errors.New("cgraph: topology parameters")

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	f := pflag.NewFlagSet("cgraph", pflag.ContinueOnError)
	f.SetOutput(stderr)
	config.RegisterFlags(f)
	if err := f.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	level, err := logging.ParseLevel(cfg.Verbosity, cfg.VerboseCnt)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	logging.Setup(stderr, level, cfg.JSON)
	logging.Debug("configuration loaded",
		"vertices", cfg.Vertices, "topology", cfg.Topology, "seed", cfg.Seed, "file", cfg.File)

	g, err := buildGraph(cfg)
	if err != nil {
		logging.Error("cannot build graph", "error", err)
		return exitUsage
	}

	if cfg.Complement {
		g.Complement()
		logging.Debug("complemented", "edges", g.NumEdges())
	}

	if err := report(stdout, g, cfg.Quiet); err != nil {
		logging.Error("cannot write output", "error", err)
		return exitUsage
	}

	return exitOK
}

// buildGraph applies the configured topology, then the explicit edge list.
// Rejected explicit edges are logged and skipped, not fatal.
func buildGraph(cfg *config.Config) (*core.Graph, error) {
	pairs, err := config.ParseEdges(cfg.Edges)
	if err != nil {
		return nil, err
	}

	ctor, err := topology(cfg)
	if err != nil {
		return nil, err
	}
	var cons []builder.Constructor
	if ctor != nil {
		cons = append(cons, ctor)
	}
	g, err := builder.BuildGraph(cfg.Vertices, []builder.BuilderOption{builder.WithSeed(cfg.Seed)}, cons...)
	if err != nil {
		return nil, err
	}
	logging.Info("graph built", "vertices", g.NumVertices(), "edges", g.NumEdges(), "topology", cfg.Topology)

	for _, p := range pairs {
		res := g.AddEdge(p.U, p.V)
		if !res.OK() {
			logging.Warn("edge rejected", "u", p.U, "v", p.V, "reason", res.String())
			continue
		}
		logging.Trace("edge added", "u", p.U, "v", p.V)
	}

	return g, nil
}

// topology maps the configured name onto a builder constructor.
// It returns nil for TopologyNone.
func topology(cfg *config.Config) (builder.Constructor, error) {
	k := cfg.TopologySize()
	switch strings.ToLower(cfg.Topology) {
	case config.TopologyNone:
		return nil, nil
	case config.TopologyComplete:
		return builder.Complete(k), nil
	case config.TopologyCycle:
		return builder.Cycle(k), nil
	case config.TopologyPath:
		return builder.Path(k), nil
	case config.TopologyStar:
		return builder.Star(k), nil
	case config.TopologyWheel:
		return builder.Wheel(k), nil
	case config.TopologyGrid:
		if cfg.Cols <= 0 || k%cfg.Cols != 0 {
			return nil, fmt.Errorf("grid: cols=%d must divide size=%d: %w", cfg.Cols, k, errTopology)
		}
		return builder.Grid(k/cfg.Cols, cfg.Cols), nil
	case config.TopologyRandom:
		return builder.RandomSparse(k, cfg.Probability), nil
	case config.TopologyRandomRegular:
		return builder.RandomRegular(k, cfg.Degree), nil
	default:
		return nil, fmt.Errorf("unknown topology %q: %w", cfg.Topology, errTopology)
	}
}

// report prints the rows (unless quiet) followed by the summary block.
func report(w io.Writer, g *core.Graph, quiet bool) error {
	if !quiet {
		if err := g.Print(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "vertices: %d\nedges: %d\ndensity: %.4f\nisolated: %v\ndegrees: %v\n",
		g.NumVertices(), g.NumEdges(), g.Density(), g.IsolatedVertices(), g.DegreeSequence())

	return err
}
