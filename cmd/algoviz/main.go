package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/storage"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	profile    string
	verbose    bool
	preset     string
	speedMs    int
	sortBy     string
	searchBy   string
	live       bool
	outPath    string
	svgPath    string
	sweep      bool
	theme      string

	itemName     string
	itemCategory string
	itemStock    int
	itemPrice    int

	cfg    *config.Config
	logger = zap.NewNop()
)

// main wires the algoviz commands; with no subcommand it opens the TUI.
func main() {
	rootCmd := &cobra.Command{
		Use:               "algoviz",
		Short:             "merge sort and binary search, step by step, over an inventory",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "dataset directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "config profile (classroom, stability, stress)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", config.DefaultPreset, "built-in dataset used instead of the saved one")
	rootCmd.PersistentFlags().IntVar(&speedMs, "speed", 1000, "auto-advance interval in ms (2000, 1000, 500, 250)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal UI",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "", "color theme")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "print the merge sort trace",
		Args:  cobra.NoArgs,
		RunE:  runSort,
	}
	sortCmd.Flags().StringVar(&sortBy, "by", config.DefaultSortBy, "field: name, category, price, stock")
	sortCmd.Flags().BoolVar(&live, "live", false, "play the trace in the terminal")

	searchCmd := &cobra.Command{
		Use:   "search [target]",
		Short: "print the binary search trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
	searchCmd.Flags().StringVar(&searchBy, "by", config.DefaultSearchBy, "field: name or category")
	searchCmd.Flags().BoolVar(&live, "live", false, "play the trace in the terminal")

	findCmd := &cobra.Command{
		Use:   "find [target]",
		Short: "list every item whose field equals target (linear scan)",
		Args:  cobra.ExactArgs(1),
		RunE:  runFind,
	}
	findCmd.Flags().StringVar(&searchBy, "by", config.DefaultSearchBy, "field: name or category")

	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "manage the saved dataset",
	}
	itemsListCmd := &cobra.Command{
		Use:   "list",
		Short: "list items",
		Args:  cobra.NoArgs,
		RunE:  listItems,
	}
	itemsAddCmd := &cobra.Command{
		Use:   "add",
		Short: "add an item",
		Args:  cobra.NoArgs,
		RunE:  addItem,
	}
	itemsAddCmd.Flags().StringVar(&itemName, "name", "", "item name (1-50 characters)")
	itemsAddCmd.Flags().StringVar(&itemCategory, "category", "", "one of the item categories")
	itemsAddCmd.Flags().IntVar(&itemStock, "stock", 0, "stock (0-99999)")
	itemsAddCmd.Flags().IntVar(&itemPrice, "price", 0, "price in rupiah (0-999999999)")
	itemsDeleteCmd := &cobra.Command{
		Use:   "delete [index]",
		Short: "delete the item at index",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteItem,
	}
	itemsResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "replace the saved dataset with the preset",
		Args:  cobra.NoArgs,
		RunE:  resetItems,
	}
	itemsCmd.AddCommand(itemsListCmd, itemsAddCmd, itemsDeleteCmd, itemsResetCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in datasets and config profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("datasets:")
			for _, name := range inventory.PresetNames() {
				items, _ := inventory.Preset(name)
				fmt.Printf("  %-12s %d items\n", name, len(items))
			}
			fmt.Println("profiles:")
			for _, name := range config.ListProfiles() {
				p := config.Profiles[name]
				fmt.Printf("  %-12s preset=%s sort=%s search=%s speed=%dms\n", name, p.Preset, p.SortBy, p.SearchBy, p.SpeedMs)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [sort|search] [target]",
		Short: "export a trace to JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	exportJSONCmd.Flags().StringVar(&svgPath, "svg", "", "also write the final search frame as SVG")
	exportJSONCmd.Flags().StringVar(&sortBy, "sort-by", config.DefaultSortBy, "sort field")
	exportJSONCmd.Flags().StringVar(&searchBy, "search-by", config.DefaultSearchBy, "search field")

	plotCmd := &cobra.Command{
		Use:   "plot [sort|search] [target]",
		Short: "plot comparisons per level or the search window",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  plotTrace,
	}
	plotCmd.Flags().StringVar(&sortBy, "sort-by", config.DefaultSortBy, "sort field")
	plotCmd.Flags().StringVar(&searchBy, "search-by", config.DefaultSearchBy, "search field")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a YAML scenario, or sweep every sort field",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&sweep, "sweep", false, "sort the dataset by every field")

	rootCmd.AddCommand(tuiCmd, sortCmd, searchCmd, findCmd, itemsCmd, presetsCmd, exportJSONCmd, plotCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves the config (defaults, file, profile, then changed flags)
// and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if profile != "" {
		if err := cfg.ApplyProfile(profile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("preset") {
		cfg.Preset = preset
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speedMs
	}
	if flags.Changed("by") {
		if cmd.Name() == "sort" {
			cfg.SortBy = sortBy
		} else {
			cfg.SearchBy = searchBy
		}
	}
	if flags.Changed("sort-by") {
		cfg.SortBy = sortBy
	}
	if flags.Changed("search-by") {
		cfg.SearchBy = searchBy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	logger, err = buildLogger(cmd)
	return err
}

func buildLogger(cmd *cobra.Command) (*zap.Logger, error) {
	interactive := cmd.Name() == "algoviz" || cmd.Name() == "tui"
	if interactive && cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	level, _ := cfg.Level()
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogFile != "" {
		zc.OutputPaths = []string{cfg.LogFile}
		zc.ErrorOutputPaths = []string{cfg.LogFile}
	}
	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return l, nil
}

func openStore() *storage.Store {
	return storage.New(cfg.DataDir, logger)
}

// loadItems returns the preset when --preset was given, else the saved
// dataset, else the configured preset.
func loadItems(cmd *cobra.Command) ([]inventory.Item, error) {
	if cmd.Flags().Changed("preset") {
		return inventory.Preset(cfg.Preset)
	}
	fallback, err := inventory.Preset(cfg.Preset)
	if err != nil {
		return nil, err
	}
	return openStore().LoadOr(fallback)
}

func runTUI(cmd *cobra.Command, args []string) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	app := viz.NewApp(viz.Options{
		Items:       items,
		Store:       openStore(),
		Logger:      logger,
		SortField:   cfg.SortField(),
		SearchField: cfg.SearchField(),
		Speed:       cfg.Speed(),
		Theme:       theme,
	})
	defer app.Close()

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
