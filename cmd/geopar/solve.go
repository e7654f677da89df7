package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geopar/figfile"
	"github.com/katalvlaran/geopar/solve"
)

type solveFlags struct {
	pairing solve.Policy
	jobs    int
	emit    bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{pairing: solve.PairingAsk, jobs: 1}
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Deduce unknown angles and classify each figure",
		Long: `Runs the 180° and 360° rules until nothing new follows. If angles are
still unknown, angle pairing is applied according to --pairing. Each
figure ends with one verdict:

  1B                unique all-angle consequence of the premises
  1A                inconclusive, pairing declined
  2                 a consequence of the premises (pairing was needed)
  INCONCLUSIVE (n)  a rule fails or angles stay unknown after stage n

With --jobs 1 each report is printed as its figure is solved. With more
jobs, pairing prompts come first and the reports follow in argument order
once every figure is done.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, f, args)
		},
	}
	cmd.Flags().Var(&f.pairing, "pairing", "apply angle pairing: ask, always or never")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 1, "figures solved concurrently")
	cmd.Flags().BoolVar(&f.emit, "emit", false, "print each solved figure in its input format")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags, paths []string) error {
	if f.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", f.jobs)
	}
	out := cmd.OutOrStdout()
	p := newPrompter(cmd.InOrStdin(), out, a.interactive(cmd.InOrStdin()))

	// With one job each report streams to out, so a figure shows before its
	// pairing prompt. Concurrent reports are buffered and printed in
	// argument order once every figure is done.
	reports := make([]bytes.Buffer, len(paths))
	sink := func(i int) io.Writer {
		if f.jobs == 1 {
			return out
		}
		return &reports[i]
	}
	failed := make([]error, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(f.jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			w := sink(i)
			defer fmt.Fprintln(w)

			log := a.logger.With(zap.String("figure", path))
			err := solveOne(w, path, f, log,
				solve.WithContext(ctx),
				solve.WithPairing(f.pairing),
				solve.WithDecider(p.decider(path)),
				solve.WithLogger(log))
			if err == nil {
				return nil
			}
			log.Warn("figure failed", zap.Error(err))
			fmt.Fprintln(w, styles.Error.Render(err.Error()))
			failed[i] = err
			if aborted(err) {
				return err
			}
			return nil
		})
	}
	waitErr := g.Wait()

	n := 0
	for i := range paths {
		if _, err := reports[i].WriteTo(out); err != nil {
			return err
		}
		if failed[i] != nil {
			n++
		}
	}
	if waitErr != nil {
		return waitErr
	}
	if n > 0 {
		return fmt.Errorf("%d of %d figures failed", n, len(paths))
	}

	return nil
}

// solveOne loads, solves and renders one figure into w.
func solveOne(w io.Writer, path string, f *solveFlags, log *zap.Logger, opts ...solve.Option) error {
	m, err := figfile.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, renderFigure(path+": before", m))

	rep, err := solve.Solve(m, opts...)
	if err != nil {
		return err
	}
	log.Info("figure solved",
		zap.String("label", rep.Label()),
		zap.Int("deduced", rep.Deduced()),
		zap.Int("remaining", rep.Remaining))

	fmt.Fprintln(w, renderStats(rep))
	fmt.Fprintln(w, renderFigure(path+": after", m))
	if rep.Check != nil {
		fmt.Fprintln(w, renderCheck(*rep.Check))
	}
	fmt.Fprintln(w, renderVerdict(rep))

	if f.emit {
		return figfile.Write(w, m, figfile.FormatOf(path))
	}

	return nil
}
