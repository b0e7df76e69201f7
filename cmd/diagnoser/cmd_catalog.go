package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrhapile/symptom-diagnoser/pkg/render"
)

func (a *app) symptomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms",
		Short: "List observable symptoms (conditions no rule concludes)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNames(cmd, a.catalog.ObservableSymptoms())
		},
	}
}

func (a *app) conclusionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conclusions",
		Short: "List every conclusion the catalog can reach",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printNames(cmd, a.catalog.AllConclusions())
		},
	}
}

func (a *app) printNames(cmd *cobra.Command, names []string) error {
	if a.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), names)
	}
	for _, n := range names {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", n, render.Label(n)); err != nil {
			return err
		}
	}
	return nil
}
