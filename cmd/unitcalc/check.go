package main

import (
	"fmt"

	unitcalc "github.com/grindlemire/go-unitcalc"
	"github.com/grindlemire/go-unitcalc/internal/validate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		flags     contextFlags
		verbose   bool
		exclusive bool
	)
	cmd := &cobra.Command{
		Use:   "check [flags] sheet...",
		Short: "Validate resolved units against a numeric range",
		Long: `Check resolves every unit and runs the validation chain over the results:
a range check, a finiteness check and, with --context, a check that the
layout context holds every box each unit reads.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vc := a.cfg.Validate
			if f := cmd.Flags(); f.Changed("min") {
				vc.Min, _ = f.GetFloat64("min")
			}
			if f := cmd.Flags(); f.Changed("max") {
				vc.Max, _ = f.GetFloat64("max")
			}
			if exclusive {
				vc.Inclusive = false
			}
			if f := cmd.Flags(); f.Changed("context") {
				vc.Context, _ = f.GetBool("context")
			}

			sheets, err := a.loadSheets(args, &flags)
			if err != nil {
				return err
			}

			validators := []validate.Validator{
				validate.NewRange("range", vc.Min, vc.Max, vc.Inclusive),
				validate.Finite{},
			}
			if vc.Context {
				validators = append(validators, validate.Context{})
			}
			m := validate.NewManager(validators,
				validate.WithLogger(a.log),
				validate.WithWorkers(vc.Workers),
				validate.WithMaxErrors(vc.MaxErrors),
			)

			calc := unitcalc.NewCalculator(unitcalc.WithCalculatorLogger(a.log))
			out := cmd.OutOrStdout()
			failed := 0
			for _, s := range sheets {
				inputs := make([]validate.Input, len(s.units))
				for i, d := range s.units {
					inputs[i] = validate.Resolved(d, calc.Resolve(d, s.ctx))
				}
				outcomes, err := m.ValidateBatch(cmd.Context(), inputs, s.ctx)
				if err != nil {
					return err
				}

				sheetFailed := 0
				for i, o := range outcomes {
					switch {
					case !o.OK:
						sheetFailed++
						fmt.Fprintf(out, "%s: %s: %s\n", s.path, inputs[i].ID(), o.Message)
					case verbose:
						fmt.Fprintf(out, "%s: %s: ok (%g)\n", s.path, inputs[i].ID(), inputs[i].Value())
					}
				}
				if sheetFailed > 0 {
					failed++
				}
				a.log.Debug("sheet checked", zap.String("path", s.path), zap.Int("failed", sheetFailed))
			}

			st := m.Stats()
			fmt.Fprintf(out, "%d checked, %d passed, %d failed (%.1f%%)\n",
				st.Total, st.Successful, st.Failed, st.SuccessRate()*100)
			if failed > 0 {
				return fmt.Errorf("%d sheet(s) had errors", failed)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report passing units too")
	cmd.Flags().Float64("min", 0, "lower bound of the allowed range")
	cmd.Flags().Float64("max", 0, "upper bound of the allowed range")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "exclude the bounds from the allowed range")
	cmd.Flags().Bool("context", false, "fail units whose context is incomplete")
	return cmd
}
