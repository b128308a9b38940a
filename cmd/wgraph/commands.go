// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/gonumgraph"
	"github.com/katalvlaran/wgraph/graphio"
	"github.com/katalvlaran/wgraph/graphmetrics"
)

func wantArgs(args []string, n int, form string) error {
	if len(args) != n {
		return fmt.Errorf("want %s: %w", form, errUsage)
	}

	return nil
}

func parseKey(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("vertex key %q: %w", s, errUsage)
	}

	return k, nil
}

func cmdStats(args []string, logger *slog.Logger, stdout io.Writer) error {
	if err := wantArgs(args, 1, "stats <file>"); err != nil {
		return err
	}
	start := time.Now()
	g, err := graphio.ReadFile(args[0])
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "file", args[0], "elapsed", time.Since(start))

	st := g.Stats()
	tw := tabwriter.NewWriter(stdout, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "file:\t%s (%s)\n", args[0], humanize.Bytes(fileSize(args[0])))
	fmt.Fprintf(tw, "vertices:\t%s\n", humanize.Comma(int64(st.VertexCount)))
	fmt.Fprintf(tw, "edges:\t%s\n", humanize.Comma(int64(st.EdgeCount)))
	fmt.Fprintf(tw, "modifications:\t%s\n", humanize.Comma(int64(st.ModificationCount)))
	fmt.Fprintf(tw, "avg degree:\t%.2f\n", st.AverageDegree())
	fmt.Fprintf(tw, "max degree:\t%d\n", st.MaxDegree)
	fmt.Fprintf(tw, "fingerprint:\t%016x\n", g.Fingerprint())

	return tw.Flush()
}

func cmdNeighbors(args []string, stdout io.Writer) error {
	if err := wantArgs(args, 2, "neighbors <file> <key>"); err != nil {
		return err
	}
	key, err := parseKey(args[1])
	if err != nil {
		return err
	}
	g, err := graphio.ReadFile(args[0])
	if err != nil {
		return err
	}
	if !g.HasVertex(key) {
		return fmt.Errorf("key %d: %w", key, core.ErrVertexNotFound)
	}
	for _, nb := range g.NeighborKeys(key) {
		w, _ := g.Weight(key, nb)
		fmt.Fprintf(stdout, "%d\t%g\n", nb, w)
	}

	return nil
}

func cmdPath(args []string, stdout io.Writer) error {
	if err := wantArgs(args, 3, "path <file> <from> <to>"); err != nil {
		return err
	}
	from, err := parseKey(args[1])
	if err != nil {
		return err
	}
	to, err := parseKey(args[2])
	if err != nil {
		return err
	}
	g, err := graphio.ReadFile(args[0])
	if err != nil {
		return err
	}
	for _, k := range []int{from, to} {
		if !g.HasVertex(k) {
			return fmt.Errorf("key %d: %w", k, core.ErrVertexNotFound)
		}
	}

	u := gonumgraph.New(g)
	nodes, weight := path.DijkstraFrom(u.Node(int64(from)), u).To(int64(to))
	if len(nodes) == 0 {
		fmt.Fprintf(stdout, "no path from %d to %d\n", from, to)
		return nil
	}
	keys := make([]string, len(nodes))
	for i, n := range nodes {
		keys[i] = strconv.FormatInt(n.ID(), 10)
	}
	fmt.Fprintf(stdout, "%s (weight %g)\n", strings.Join(keys, " -> "), weight)

	return nil
}

func cmdDump(args []string, stdout io.Writer) error {
	if err := wantArgs(args, 1, "dump <file>"); err != nil {
		return err
	}
	g, err := graphio.ReadFile(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, g)

	return err
}

func cmdMetrics(args []string, stdout io.Writer) error {
	if err := wantArgs(args, 1, "metrics <file>"); err != nil {
		return err
	}
	g, err := graphio.ReadFile(args[0])
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	if err := reg.Register(graphmetrics.New(g, graphmetrics.WithName(name))); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(stdout, mf); err != nil {
			return err
		}
	}

	return nil
}

func cmdGenerate(args []string, defaults GenerateConfig, logger *slog.Logger, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", defaults.Vertices, "number of vertices")
	degree := fs.Int("degree", defaults.Degree, "average degree")
	seed := fs.Int64("seed", defaults.Seed, "random seed")
	maxWeight := fs.Float64("max-weight", 0, "draw weights uniformly from [0,max); 0 means every weight is 1")
	out := fs.String("out", "", "output YAML file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("generate: %w", errUsage)
	}
	if *out == "" || fs.NArg() != 0 {
		return fmt.Errorf("generate needs -out and no positional arguments: %w", errUsage)
	}
	if *maxWeight < 0 || math.IsNaN(*maxWeight) || math.IsInf(*maxWeight, 0) {
		return fmt.Errorf("-max-weight %g: must be finite and ≥ 0: %w", *maxWeight, errUsage)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(*seed)}
	if *maxWeight > 0 {
		bopts = append(bopts, builder.WithUniformWeight(0, *maxWeight))
	}
	start := time.Now()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithCapacity(*n)}, bopts, builder.RandomDegree(*n, *degree))
	if err != nil {
		return err
	}
	if err := graphio.WriteFile(*out, g); err != nil {
		return err
	}
	logger.Info("graph generated",
		"file", *out,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"seed", *seed,
		"elapsed", time.Since(start))
	fmt.Fprintf(stdout, "wrote %s: %s vertices, %s edges (%s)\n", *out,
		humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.EdgeCount())),
		humanize.Bytes(fileSize(*out)))

	return nil
}
