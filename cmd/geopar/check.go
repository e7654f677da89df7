package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geopar/angle"
	"github.com/katalvlaran/geopar/figfile"
	"github.com/katalvlaran/geopar/validate"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check fully known figures against the 180°, 360° and pairing rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			bad := 0
			for _, path := range args {
				log := a.logger.With(zap.String("figure", path))
				r, err := checkOne(path)
				switch {
				case errors.Is(err, angle.ErrUnknownOperand):
					fmt.Fprintf(out, "%s: %s\n", path, styles.Warning.Render("has unknown angles; run solve first"))
					bad++
				case err != nil:
					fmt.Fprintln(out, styles.Error.Render(err.Error()))
					bad++
				default:
					fmt.Fprintln(out, styles.Title.Render(path))
					fmt.Fprintln(out, renderCheck(r))
					if !r.OK() {
						bad++
					}
				}
				log.Debug("figure checked", zap.Bool("ok", err == nil && r.OK()), zap.Error(err))
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d figures are not consistent", bad, len(args))
			}
			return nil
		},
	}
}

func checkOne(path string) (validate.Report, error) {
	m, err := figfile.Load(path)
	if err != nil {
		return validate.Report{}, err
	}

	return validate.Check(m)
}
