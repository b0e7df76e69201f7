package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mrhapile/symptom-diagnoser/pkg/config"
	"github.com/mrhapile/symptom-diagnoser/pkg/render"
	"github.com/mrhapile/symptom-diagnoser/pkg/rules"
)

// app carries what every subcommand needs once the root pre-run has loaded it.
type app struct {
	// Flags
	configPath  string
	catalogPath string
	verbose     bool
	jsonOutput  bool
	noColor     bool

	cfg     *config.Config
	logger  *zap.Logger
	catalog *rules.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "diagnoser",
		Short: "Rule-based symptom to diagnosis reasoning",
		Long: `diagnoser reasons over a catalog of production rules
(conditions -> conclusion) loaded from a CSV or YAML file.

  diagnose  forward chaining: everything inferable from the given symptoms
  verify    backward chaining: is one conclusion justified, and why
  screen    backward chaining for every conclusion in the catalog`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "diagnoser.yaml", "Config file")
	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "Rule catalog file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Write results as JSON")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(a.symptomsCmd())
	rootCmd.AddCommand(a.conclusionsCmd())
	rootCmd.AddCommand(a.diagnoseCmd())
	rootCmd.AddCommand(a.verifyCmd())
	rootCmd.AddCommand(a.screenCmd())
	rootCmd.AddCommand(a.crosscheckCmd())

	return rootCmd
}

// setup loads config, builds the logger and loads the rule catalog.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.catalogPath != "" {
		cfg.Catalog = a.catalogPath
	}
	if a.noColor {
		cfg.Render.Color = false
	}
	a.cfg = cfg

	level, _ := cfg.Logging.ZapLevel()
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if !cfg.Logging.JSON {
		zcfg.Encoding = "console"
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))

	opts := []rules.LoadOption{rules.WithLogger(a.logger)}
	if cfg.SkipInvalid {
		opts = append(opts, rules.WithSkipInvalid())
	}
	a.catalog, err = rules.LoadFile(cfg.Catalog, opts...)
	if err != nil {
		return fmt.Errorf("load catalog %s: %w", cfg.Catalog, err)
	}

	a.logger.Debug("Catalog ready",
		zap.String("path", cfg.Catalog),
		zap.Int("rules", a.catalog.Len()),
		zap.Int("observable", len(a.catalog.ObservableSymptoms())))
	return nil
}

func (a *app) styles() render.Styles {
	if a.cfg != nil && a.cfg.Render.Color {
		return render.Colored()
	}
	return render.Plain()
}

// facts merges --fact values and positional arguments, trimmed and without
// duplicates, and warns about names the catalog never mentions.
func (a *app) facts(flagged, args []string) []string {
	known := make(map[string]struct{})
	for _, s := range a.catalog.ObservableSymptoms() {
		known[s] = struct{}{}
	}
	for _, s := range a.catalog.AllConclusions() {
		known[s] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, f := range append(append([]string{}, flagged...), args...) {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		if _, ok := known[f]; !ok {
			a.logger.Warn("Fact is not used by any rule", zap.String("fact", f))
		}
		out = append(out, f)
	}
	return out
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
