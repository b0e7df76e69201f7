package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrhapile/symptom-diagnoser/pkg/datalog"
	"github.com/mrhapile/symptom-diagnoser/pkg/engine"
)

// errDisagreement is returned when the reasoning modes derive different facts.
var errDisagreement = errors.New("reasoning modes disagree")

func (a *app) crosscheckCmd() *cobra.Command {
	var (
		facts       []string
		showProgram bool
	)
	cmd := &cobra.Command{
		Use:   "crosscheck [symptom...]",
		Short: "Check forward chaining, backward chaining and Datalog agree",
		Long: `Derives the closure of the symptoms three ways: forward chaining,
backward verification of every conclusion, and the Mangle Datalog engine.
Fails if any of them disagree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := a.facts(facts, args)
			out := cmd.OutOrStdout()

			if showProgram {
				fmt.Fprintln(out, datalog.Program(a.catalog, initial))
			}

			fwd, err := engine.Forward(a.catalog, initial)
			if err != nil {
				return err
			}
			closure, err := datalog.Closure(a.catalog, initial)
			if err != nil {
				return err
			}

			var problems []string
			if d := diff(fwd.Derived, closure); d != "" {
				problems = append(problems, "forward vs datalog: "+d)
			}

			derived := make(map[string]bool, len(fwd.Derived))
			for _, f := range fwd.Derived {
				derived[f] = true
			}
			for _, target := range a.catalog.AllConclusions() {
				res, err := engine.Verify(a.catalog, target, initial)
				if err != nil {
					return err
				}
				if res.Success != derived[target] {
					problems = append(problems, fmt.Sprintf("backward %s=%t, forward %t", target, res.Success, derived[target]))
				}
			}

			if len(problems) > 0 {
				for _, p := range problems {
					a.logger.Error("Crosscheck mismatch", zap.String("detail", p))
				}
				return fmt.Errorf("%w: %s", errDisagreement, strings.Join(problems, "; "))
			}

			_, err = fmt.Fprintf(out, "forward, backward and datalog agree on %d facts\n", len(fwd.Derived))
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&facts, "fact", "f", nil, "Known symptom (repeatable)")
	cmd.Flags().BoolVar(&showProgram, "show-program", false, "Print the generated Datalog program")
	return cmd
}

// diff describes the facts only one of two sorted lists contains.
func diff(left, right []string) string {
	in := func(list []string) map[string]bool {
		m := make(map[string]bool, len(list))
		for _, s := range list {
			m[s] = true
		}
		return m
	}
	l, r := in(left), in(right)

	var parts []string
	for _, s := range left {
		if !r[s] {
			parts = append(parts, "-"+s)
		}
	}
	for _, s := range right {
		if !l[s] {
			parts = append(parts, "+"+s)
		}
	}
	return strings.Join(parts, " ")
}
