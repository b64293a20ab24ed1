// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsegen/fixture"
	"github.com/katalvlaran/sparsegen/ops"
)

// NewCmd builds the root command with one subcommand per scenario.
func NewCmd() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "sparsegen [command] [flags]",
		Short:         "sparsegen prints deterministic sparse-matrix test fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "`<Level>` of diagnostics on stderr: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("table", false, "append a table preview of the inputs")
	rootCmd.PersistentFlags().String("table-style", "light", "`<Style>` of the table preview: default, light, bold, double or round")
	rootCmd.PersistentFlags().Bool("prune-zeros", false, "drop exact zeros from operator results")

	addSubTimesCmd := scenarioCmd(fixture.NameAddSubTimes, "addsubtimes [flags]")
	addSubTimesCmd.Flags().IntP("rowsA", "p", fixture.DefaultDim, "`<Rows>` of A and B")
	addSubTimesCmd.Flags().IntP("colsA", "q", fixture.DefaultDim, "`<Cols>` of A and B")
	densityListFlag(addSubTimesCmd, fixture.DefaultDensity)
	seedFlag(addSubTimesCmd)

	matMulCmd := scenarioCmd(fixture.NameMatMul, "matmul [flags]")
	productFlags(matMulCmd, fixture.DefaultDensity)

	matMul3DCmd := scenarioCmd(fixture.NameMatMul3D, "matmul3d [flags]")
	matMul3DCmd.Flags().IntP("batchsize", "b", fixture.DefaultBatch, "`<Batch>` size")
	productFlags(matMul3DCmd, fixture.DefaultBatchDensity)

	matDivCmd := scenarioCmd(fixture.NameMatDiv, "matdiv [flags]")
	productFlags(matDivCmd, fixture.DefaultDensity)

	inverseCmd := scenarioCmd(fixture.NameInverse, "inverse [flags]")
	singleFlags(inverseCmd, "z")

	transposeCmd := scenarioCmd(fixture.NameTranspose, "transpose [flags]")
	singleFlags(transposeCmd, "n")

	cooToCSRCmd := scenarioCmd(fixture.NameCOOToCSR, "cootocsr [flags]")
	singleFlags(cooToCSRCmd, "n")
	cooToCSRCmd.Flags().BoolP("permute", "p", false, "shuffle the COO entries before conversion")

	invoke2DCmd := scenarioCmd(fixture.NameInvoke2D, "invoke2d [flags]")
	singleFlags(invoke2DCmd, "z")
	invoke2DCmd.Flags().BoolP("permute", "p", false, "shuffle the COO entries before conversion")

	testAllCmd := scenarioCmd(fixture.NameTestAll, "testall [flags]")
	testAllCmd.Flags().IntP("p", "p", fixture.DefaultDim, "`<Dim>` of the square A and B")
	densityListFlag(testAllCmd, fixture.DefaultDensity)
	seedFlag(testAllCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [flags]",
		Short: "Render every case of a YAML manifest",
		RunE:  doBatch,
	}
	batchCmd.Args = cobra.NoArgs
	batchCmd.Flags().StringP("file", "f", "", "`<Manifest>` path")
	batchCmd.MarkFlagRequired("file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the scenarios",
		RunE:  doList,
	}
	listCmd.Args = cobra.NoArgs

	rootCmd.AddCommand(
		addSubTimesCmd,
		matMulCmd,
		matMul3DCmd,
		matDivCmd,
		inverseCmd,
		transposeCmd,
		cooToCSRCmd,
		invoke2DCmd,
		testAllCmd,
		batchCmd,
		listCmd,
	)
	return rootCmd
}

func scenarioCmd(name, use string) *cobra.Command {
	summary, _ := fixture.Summary(name)
	cmd := &cobra.Command{
		Use:   use,
		Short: summary,
		RunE:  doScenario,
	}
	cmd.Args = cobra.NoArgs
	cmd.Annotations = map[string]string{"scenario": name}

	return cmd
}

// densityListFlag registers -z. Both "-z 0.3,0.6" and "-z 0.3 0.6" work:
// numbers following the flag are taken as further ratios.
func densityListFlag(cmd *cobra.Command, def float64) {
	cmd.Flags().Float64SliceP("nonzerosRatios", "z", []float64{def},
		"`<Ratios>` of A and B: one for both, two for A then B (comma or space separated)")
	cmd.Args = trailingRatios
}

// trailingRatios accepts positional arguments only as extra -z values.
func trailingRatios(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if !cmd.Flags().Changed("nonzerosRatios") {
		return fmt.Errorf("unexpected arguments %q", args)
	}
	for _, a := range args {
		if _, err := strconv.ParseFloat(a, 64); err != nil {
			return fmt.Errorf("nonzerosRatios: %q is not a number", a)
		}
	}
	return nil
}

func seedFlag(cmd *cobra.Command) {
	cmd.Flags().Int64P("randomseed", "s", int64(fixture.DefaultSeed), "`<Seed>` in [0, 4294967295]")
}

func productFlags(cmd *cobra.Command, def float64) {
	cmd.Flags().IntP("rowsA", "p", fixture.DefaultDim, "`<Rows>` of A")
	cmd.Flags().IntP("colsA", "k", fixture.DefaultDim, "`<Cols>` of A, rows of B")
	cmd.Flags().IntP("colsB", "q", fixture.DefaultDim, "`<Cols>` of B")
	densityListFlag(cmd, def)
	seedFlag(cmd)
}

func singleFlags(cmd *cobra.Command, ratioShort string) {
	cmd.Flags().IntP("rows", "r", fixture.DefaultDim, "`<Rows>` of the matrix")
	cmd.Flags().IntP("cols", "c", fixture.DefaultDim, "`<Cols>` of the matrix")
	cmd.Flags().Float64P("nonzerosRatio", ratioShort, fixture.DefaultDensity, "`<Ratio>` of non-zero cells")
	seedFlag(cmd)
}

// params maps the scenario's flags onto fixture.Params. Every flag it reads
// was registered by the scenario's constructor above.
func params(cmd *cobra.Command, name string, args []string) (fixture.Params, error) {
	var p fixture.Params
	flags := cmd.Flags()
	dims := map[string]*int{}
	switch name {
	case fixture.NameAddSubTimes:
		dims["rowsA"], dims["colsA"] = &p.Rows, &p.Cols
	case fixture.NameMatMul, fixture.NameMatDiv:
		dims["rowsA"], dims["colsA"], dims["colsB"] = &p.Rows, &p.Inner, &p.Cols
	case fixture.NameMatMul3D:
		dims["rowsA"], dims["colsA"], dims["colsB"] = &p.Rows, &p.Inner, &p.Cols
		dims["batchsize"] = &p.Batch
	case fixture.NameTestAll:
		dims["p"] = &p.Rows
	default:
		dims["rows"], dims["cols"] = &p.Rows, &p.Cols
	}
	for flag, dst := range dims {
		v, err := flags.GetInt(flag)
		if err != nil {
			return p, err
		}
		if v < 1 {
			return p, fmt.Errorf("--%s must be positive, got %d", flag, v)
		}
		*dst = v
	}

	var err error
	if flags.Lookup("nonzerosRatios") != nil {
		if p.Densities, err = flags.GetFloat64Slice("nonzerosRatios"); err != nil {
			return p, err
		}
		for _, a := range args {
			v, _ := strconv.ParseFloat(a, 64) // checked by trailingRatios
			p.Densities = append(p.Densities, v)
		}
	} else {
		var d float64
		if d, err = flags.GetFloat64("nonzerosRatio"); err != nil {
			return p, err
		}
		p.Densities = []float64{d}
	}
	if flags.Lookup("permute") != nil {
		if p.Permute, err = flags.GetBool("permute"); err != nil {
			return p, err
		}
	}

	seed, err := flags.GetInt64("randomseed")
	if err != nil {
		return p, err
	}
	if seed < 0 || seed > math.MaxUint32 {
		return p, fmt.Errorf("--randomseed %d out of range [0, %d]", seed, uint32(math.MaxUint32))
	}
	p.Seed = uint32(seed)

	return p, nil
}

func newGenerator(cmd *cobra.Command) (*fixture.Generator, error) {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	var level slog.Level
	if err = level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	prune, err := cmd.Flags().GetBool("prune-zeros")
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	opts := []fixture.Option{fixture.WithLogger(logger)}
	if prune {
		opts = append(opts, fixture.WithOpOptions(ops.WithPruneZeros()))
	}

	return fixture.NewGenerator(opts...), nil
}

func tableFlags(cmd *cobra.Command) (bool, string, error) {
	show, err := cmd.Flags().GetBool("table")
	if err != nil {
		return false, "", err
	}
	style, err := cmd.Flags().GetString("table-style")
	if err != nil {
		return false, "", err
	}
	return show, style, nil
}

func doScenario(cmd *cobra.Command, args []string) error {
	name := cmd.Annotations["scenario"]
	p, err := params(cmd, name, args)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	show, style, err := tableFlags(cmd)
	if err != nil {
		return err
	}
	text, err := gen.Render(name, p, show, style)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(text)
	return err
}

func doBatch(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	gen, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	_, style, err := tableFlags(cmd)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	m, err := fixture.LoadManifest(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return gen.Batch(cmd.Context(), m, style, fileSink(cmd.OutOrStdout(), filepath.Dir(path)))
}

// fileSink writes cases without an output path to stdout and the others to
// their file, resolved against the manifest directory when relative.
func fileSink(stdout io.Writer, baseDir string) fixture.Sink {
	return func(c fixture.Case, text []byte) error {
		if c.Output == "" {
			_, err := stdout.Write(text)
			return err
		}
		out := c.Output
		if !filepath.IsAbs(out) {
			out = filepath.Join(baseDir, out)
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		return os.WriteFile(out, text, 0o644)
	}
}

func doList(cmd *cobra.Command, args []string) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"SCENARIO", "DENSITY", "DESCRIPTION"})
	for _, name := range fixture.Scenarios() {
		summary, err := fixture.Summary(name)
		if err != nil {
			return err
		}
		def, err := fixture.DefaultParams(name)
		if err != nil {
			return err
		}
		tw.AppendRow(table.Row{name, def.Densities[0], summary})
	}
	tw.Render()
	return nil
}
