package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowmat/internal/config"
	"github.com/katalvlaran/rowmat/matrix"
)

// stdinArg is the file argument that selects standard input.
const stdinArg = "-"

// app carries flag values and the resolved configuration for one invocation.
type app struct {
	configPath string
	eps        float64
	width      int
	asYAML     bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.DefaultConfig()

	root := &cobra.Command{
		Use:               "matcalc",
		Short:             "dense matrix calculator over YAML files",
		SilenceUsage:      true,
		PersistentPreRunE: a.resolve,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file path (yaml)")
	root.PersistentFlags().Float64Var(&a.eps, "eps", defaults.Epsilon, "tolerance for equal")
	root.PersistentFlags().IntVar(&a.width, "width", defaults.Width, "cell width when printing (0 = no padding)")
	root.PersistentFlags().BoolVar(&a.asYAML, "yaml", defaults.YAML, "print results as YAML")

	root.AddCommand(
		a.showCmd(),
		a.binaryCmd("add", "element-wise sum of two matrices", matrix.Add),
		a.binaryCmd("sub", "element-wise difference of two matrices", matrix.Sub),
		a.binaryCmd("mul", "matrix product of two matrices", matrix.Mul),
		a.scalarCmd("shift", "add a scalar to every element", matrix.AddScalar),
		a.scalarCmd("scale", "multiply every element by a scalar", matrix.Scale),
		a.transposeCmd(),
		a.equalCmd(),
	)

	return root
}

// resolve builds the effective config: defaults, then file, then explicit flags.
func (a *app) resolve(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("eps") {
		cfg.Epsilon = a.eps
	}
	if flags.Changed("width") {
		cfg.Width = a.width
	}
	if flags.Changed("yaml") {
		cfg.YAML = a.asYAML
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// emit prints m in the configured output format.
func (a *app) emit(w io.Writer, m *matrix.Matrix) error {
	if a.cfg.YAML {
		return matrix.Encode(w, m)
	}
	if err := matrix.Fprint(w, m, a.cfg.Options()...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)

	return err
}

// loadMatrix decodes the matrix stored at path, or stdin for "-".
func loadMatrix(cmd *cobra.Command, path string) (*matrix.Matrix, error) {
	if path == stdinArg {
		m, err := matrix.Decode(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return m, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := matrix.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// loadAll decodes every path in order.
func loadAll(cmd *cobra.Command, paths []string) ([]*matrix.Matrix, error) {
	out := make([]*matrix.Matrix, 0, len(paths))
	for _, p := range paths {
		m, err := loadMatrix(cmd, p)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}
