package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrhapile/symptom-diagnoser/pkg/engine"
	"github.com/mrhapile/symptom-diagnoser/pkg/render"
)

func (a *app) diagnoseCmd() *cobra.Command {
	var facts []string
	cmd := &cobra.Command{
		Use:   "diagnose [symptom...]",
		Short: "Forward chaining: derive everything the symptoms imply",
		Long: `Applies every rule whose conditions hold until nothing new can be derived.

Example:
  diagnoser diagnose fever cough
  diagnoser diagnose -f fever,cough --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := a.facts(facts, args)
			res, err := engine.Forward(a.catalog, initial)
			if err != nil {
				return err
			}
			a.logger.Info("Forward chaining done",
				zap.Int("facts", len(initial)),
				zap.Int("fired", len(res.Fired)),
				zap.Int("derived", len(res.Derived)),
				zap.Int("rounds", res.Rounds))

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return render.Forward(cmd.OutOrStdout(), res, a.styles())
		},
	}
	cmd.Flags().StringSliceVarP(&facts, "fact", "f", nil, "Known symptom (repeatable)")
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	var facts []string
	cmd := &cobra.Command{
		Use:   "verify [conclusion] [symptom...]",
		Short: "Backward chaining: check whether a conclusion is justified",
		Long: `Works back from the conclusion through the rules that can establish it
and prints the reasoning trace. A negative verdict is not an error.

Example:
  diagnoser verify needs_isolation fever cough`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := a.facts(facts, args[1:])
			res, err := engine.Verify(a.catalog, args[0], initial)
			if err != nil {
				return err
			}
			a.logger.Info("Backward verification done",
				zap.String("target", res.Target),
				zap.Bool("success", res.Success),
				zap.Int("steps", len(res.Trace)))

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return render.Verification(cmd.OutOrStdout(), res, a.styles())
		},
	}
	cmd.Flags().StringSliceVarP(&facts, "fact", "f", nil, "Known symptom (repeatable)")
	return cmd
}

func (a *app) screenCmd() *cobra.Command {
	var (
		facts   []string
		targets []string
	)
	cmd := &cobra.Command{
		Use:   "screen [symptom...]",
		Short: "Verify every conclusion against the symptoms",
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := a.facts(facts, args)
			opts := []engine.ScreenOption{engine.WithConcurrency(a.cfg.Screen.Concurrency)}
			if len(targets) > 0 {
				opts = append(opts, engine.WithTargets(targets...))
			}

			results, err := engine.Screen(cmd.Context(), a.catalog, initial, opts...)
			if err != nil {
				return err
			}

			confirmed := 0
			for _, r := range results {
				if r.Success {
					confirmed++
				}
			}
			a.logger.Info("Screening done",
				zap.Int("targets", len(results)),
				zap.Int("confirmed", confirmed))

			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return render.Screening(cmd.OutOrStdout(), results, a.styles())
		},
	}
	cmd.Flags().StringSliceVarP(&facts, "fact", "f", nil, "Known symptom (repeatable)")
	cmd.Flags().StringSliceVarP(&targets, "target", "t", nil, "Conclusion to screen (default: all)")
	return cmd
}
