package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spectral/internal/graphio"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
)

const (
	cmdAdjacency = "adjacency"
	cmdLaplacian = "laplacian"
	cmdIncidence = "incidence"
)

// matrixOpts holds the output and assembly flags shared by all commands.
type matrixOpts struct {
	graph      graphOpts
	dense      bool   // dense instead of sparse output
	workers    int    // row-assembly goroutines; 0 = GOMAXPROCS
	deg        string // laplacian degree mode
	normalized bool   // laplacian normalization
}

type buildFunc func(spectral.Graph, ...spectral.Option) (matrix.Matrix, error)

func newAdjacencyCmd() *cobra.Command {
	return newMatrixCmd(cmdAdjacency, "Print the adjacency matrix", spectral.Adjacency)
}

func newIncidenceCmd() *cobra.Command {
	return newMatrixCmd(cmdIncidence, "Print the vertex×edge incidence matrix", spectral.Incidence)
}

// newLaplacianCmd adds --deg and --normalized on top of the shared flags.
func newLaplacianCmd() *cobra.Command {
	cmd := newMatrixCmd(cmdLaplacian, "Print the (normalized) Laplacian matrix", spectral.Laplacian)
	cmd.Flags().String("deg", string(spectral.DefaultDegree), "degree mode: total|in|out")
	cmd.Flags().Bool("normalized", spectral.DefaultNormalized, "normalize by 1/sqrt(d(v)·d(u))")

	return cmd
}

func newMatrixCmd(name, short string, build buildFunc) *cobra.Command {
	var opts matrixOpts

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatrix(cmd, name, build, opts)
		},
	}
	addGraphFlags(cmd, &opts.graph)
	cmd.Flags().BoolVar(&opts.dense, "dense", false, "print a dense matrix instead of sparse triplets")
	cmd.Flags().IntVar(&opts.workers, "workers", spectral.DefaultWorkers, "goroutines filling rows (0 = GOMAXPROCS)")

	return cmd
}

func runMatrix(cmd *cobra.Command, name string, build buildFunc, opts matrixOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.workers < 0 {
		return errNegativeCount
	}
	g, fileOpts, err := loadGraph(ctx, opts.graph)
	if err != nil {
		return err
	}

	sopts, err := resolveOptions(cmd, opts, fileOpts)
	if err != nil {
		return err
	}
	eff := spectral.NewOptions(sopts...)
	logger.Debug("building matrix", "kind", name, "sparse", eff.Sparse, "workers", eff.Workers,
		"deg", eff.Degree, "normalized", eff.Normalized, "weighted", eff.Weight != nil)

	prog := newProgress(logger)
	m, err := build(g, sopts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("built %s %dx%d", name, m.Rows(), m.Cols()))

	return writeMatrix(cmd.OutOrStdout(), m)
}

// resolveOptions merges file-level defaults with flags; flags the user set
// explicitly always win.
func resolveOptions(cmd *cobra.Command, opts matrixOpts, file graphio.OptionsSpec) ([]spectral.Option, error) {
	flags := cmd.Flags()
	sopts := []spectral.Option{spectral.WithWorkers(opts.workers)}

	dense := opts.dense
	if !flags.Changed("dense") && file.Sparse != nil {
		dense = !*file.Sparse
	}
	if dense {
		sopts = append(sopts, spectral.WithDense())
	}

	weighted := opts.graph.weighted
	if !flags.Changed("weighted") && file.EdgeWeights != nil {
		weighted = *file.EdgeWeights
	}
	if weighted {
		sopts = append(sopts, spectral.WithEdgeWeights())
	}

	if flags.Lookup("deg") == nil {
		return sopts, nil
	}
	deg, err := flags.GetString("deg")
	if err != nil {
		return nil, err
	}
	if !flags.Changed("deg") && file.Deg != "" {
		deg = file.Deg
	}
	normalized, err := flags.GetBool("normalized")
	if err != nil {
		return nil, err
	}
	if !flags.Changed("normalized") && file.Normalized != nil {
		normalized = *file.Normalized
	}

	return append(sopts,
		spectral.WithDegree(spectral.DegreeMode(deg)),
		spectral.WithNormalized(normalized),
	), nil
}
