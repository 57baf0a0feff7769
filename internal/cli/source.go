package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/internal/graphio"
)

// Topology names accepted by --topology.
const (
	topoPath     = "path"
	topoCycle    = "cycle"
	topoStar     = "star"
	topoWheel    = "wheel"
	topoComplete = "complete"
	topoGrid     = "grid"
	topoRandom   = "random"
)

const (
	defaultN    = 5
	defaultRows = 3
	defaultCols = 3
	defaultP    = 0.3
	defaultSeed = 42

	// generated weighted graphs draw weights uniformly from [minGenWeight, maxGenWeight)
	minGenWeight = 1.0
	maxGenWeight = 10.0
)

var (
	errNoSource      = errors.New("one of --input or --topology is required")
	errTwoSources    = errors.New("--input and --topology are mutually exclusive")
	errUnknownTopo   = errors.New("unknown topology")
	errNegativeCount = errors.New("--workers must be >= 0")
)

// graphOpts holds the flags that select and shape the input graph.
type graphOpts struct {
	input    string   // graph file (.toml or edge list)
	topology string   // generated topology name
	n        int      // vertex count for path/cycle/star/wheel/complete/random
	rows     int      // grid rows
	cols     int      // grid cols
	p        float64  // edge probability for random
	seed     int64    // RNG seed for random topologies and weights
	directed bool     // generate a directed graph
	weighted bool     // generate random weights and read edge weights
	keep     []string // vertex filter
}

func addGraphFlags(cmd *cobra.Command, o *graphOpts) {
	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", "", "graph file (.toml, .graph, .gv, .dot, .el, .txt)")
	f.StringVarP(&o.topology, "topology", "t", "", "generate a topology: path|cycle|star|wheel|complete|grid|random")
	f.IntVar(&o.n, "n", defaultN, "vertex count for generated topologies")
	f.IntVar(&o.rows, "rows", defaultRows, "grid rows")
	f.IntVar(&o.cols, "cols", defaultCols, "grid columns")
	f.Float64Var(&o.p, "p", defaultP, "edge probability for the random topology")
	f.Int64Var(&o.seed, "seed", defaultSeed, "random seed")
	f.BoolVar(&o.directed, "directed", false, "generate a directed graph")
	f.BoolVar(&o.weighted, "weighted", false, "use edge weights (generated graphs get random weights)")
	f.StringSliceVar(&o.keep, "keep", nil, "only keep these vertices (comma-separated)")
}

// loadGraph returns the graph selected by o together with any options
// stored in the input file.
func loadGraph(ctx context.Context, o graphOpts) (*core.Graph, graphio.OptionsSpec, error) {
	logger := loggerFromContext(ctx)

	var (
		g        *core.Graph
		fileOpts graphio.OptionsSpec
		err      error
	)
	switch {
	case o.input != "" && o.topology != "":
		return nil, fileOpts, errTwoSources
	case o.input != "":
		logger.Debug("loading graph", "path", o.input)
		var doc *graphio.Document
		if doc, err = graphio.Load(o.input); err != nil {
			return nil, fileOpts, err
		}
		if g, err = doc.Graph(); err != nil {
			return nil, fileOpts, err
		}
		fileOpts = doc.Options
	case o.topology != "":
		logger.Debug("generating graph", "topology", o.topology, "directed", o.directed, "seed", o.seed)
		if g, err = generate(o); err != nil {
			return nil, fileOpts, err
		}
	default:
		return nil, fileOpts, errNoSource
	}

	if len(o.keep) > 0 {
		g.SetVertexFilter(core.KeepVertices(o.keep...))
	}
	logger.Debug("graph ready", "vertices", len(g.Vertices()), "edges", len(g.Edges()), "directed", g.Directed())

	return g, fileOpts, nil
}

// generate builds the named topology.
func generate(o graphOpts) (*core.Graph, error) {
	var ctor builder.Constructor
	switch strings.ToLower(o.topology) {
	case topoPath:
		ctor = builder.Path(o.n)
	case topoCycle:
		ctor = builder.Cycle(o.n)
	case topoStar:
		ctor = builder.Star(o.n)
	case topoWheel:
		ctor = builder.Wheel(o.n)
	case topoComplete:
		ctor = builder.Complete(o.n)
	case topoGrid:
		ctor = builder.Grid(o.rows, o.cols)
	case topoRandom:
		ctor = builder.RandomSparse(o.n, o.p)
	default:
		return nil, fmt.Errorf("%w %q", errUnknownTopo, o.topology)
	}

	gopts := []core.GraphOption{core.WithDirected(o.directed)}
	bopts := []builder.BuilderOption{builder.WithSeed(o.seed)}
	if o.weighted {
		gopts = append(gopts, core.WithWeighted())
		bopts = append(bopts, builder.WithWeightFn(builder.UniformWeightFn(minGenWeight, maxGenWeight)))
	}

	return builder.BuildGraph(gopts, bopts, ctor)
}
