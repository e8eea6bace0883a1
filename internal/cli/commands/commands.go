package commands

import (
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rvtest/internal/cli"
	"rvtest/internal/config"
	"rvtest/internal/discovery"
	"rvtest/internal/domain"
	"rvtest/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	View *ViewCommand
}

// NewCommands creates all commands with dependencies. Components that depend
// on resolved settings (scanner, runner, formatter) are built when a command
// executes, after flags and config files are merged into cfg.
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	viewer := ui.NewResultBrowser()

	return &Commands{
		Run:  NewRunCommand(cfg, filter, viewer),
		List: NewListCommand(cfg, filter),
		View: NewViewCommand(viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.ConfigFile, cli.FlagConfig, config.DefaultConfigFile, "YAML config file")
	persistent.StringVar(&flags.EnvFile, cli.FlagEnvFile, config.DefaultEnvFile, "Dotenv file loaded before reading RVTEST_* variables")
	persistent.StringVar(&flags.Profile, cli.FlagProfile, "", "Harness profile ("+strings.Join(config.ProfileNames(), ", ")+")")
	persistent.BoolVarP(&flags.Verbose, cli.FlagVerbose, "v", false, "Enable debug logging on stderr")
	persistent.BoolVar(&flags.NoColor, cli.FlagNoColor, false, "Disable colored output")

	resolve := func(cmd *cobra.Command, args []string) error {
		return resolveConfig(cmd, args, flags, cfg)
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run [corpus]",
		Short:   "Run the emulator against every test image",
		Long:    "Discover test images in the corpus directory, run the emulator once per image and mode, and print a pass/fail report",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: resolve,
		RunE:    c.Run.Execute,
	}
	addEmulatorFlags(runCmd.Flags(), flags)
	addDiscoveryFlags(runCmd.Flags(), flags)
	runCmd.Flags().StringVar(&flags.Progress, cli.FlagProgress, config.DefaultProgress, "Progress style (auto, line, log, bar)")
	runCmd.Flags().BoolVar(&flags.ASCII, cli.FlagASCII, false, "Print PASS/FAIL instead of emoji markers")
	runCmd.Flags().StringVar(&flags.JSONPath, cli.FlagJSON, "", "Also write a JSON report to this path")
	runCmd.Flags().BoolVar(&flags.Browse, cli.FlagBrowse, false, "Open the interactive result browser after the report")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list [corpus]",
		Short:   "List discovered tests",
		Long:    "Build the work list and print each test with the emulator command it would run, without executing anything",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: resolve,
		RunE:    c.List.Execute,
	}
	addEmulatorFlags(listCmd.Flags(), flags)
	addDiscoveryFlags(listCmd.Flags(), flags)
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <report.json>",
		Short: "Browse a saved JSON report interactively",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			setupOutput(cmd.ErrOrStderr(), flags.Verbose, flags.NoColor)
			return nil
		},
		RunE: c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}

func addEmulatorFlags(fs *pflag.FlagSet, flags *cli.Flags) {
	fs.StringVarP(&flags.Emulator, cli.FlagEmulator, "e", config.DefaultEmulator, "Path to the emulator executable")
	fs.StringVar(&flags.ArgShape, cli.FlagShape, "", "Argument shape (bare, testing, flagged); defaults to the profile's")
	fs.StringVar(&flags.Convention, cli.FlagConvention, "", "Exit code meaning pass (pass-on-one, pass-on-zero); defaults to the profile's")
	fs.BoolVarP(&flags.MultiMode, cli.FlagMultiMode, "m", false, "Run each image in baseline and accelerated mode")
}

func addDiscoveryFlags(fs *pflag.FlagSet, flags *cli.Flags) {
	fs.StringVar(&flags.Suffix, cli.FlagSuffix, "", "Only include files whose name ends with this token")
	fs.BoolVar(&flags.AllFiles, cli.FlagAllFiles, false, "Include every regular file regardless of suffix")
	fs.IntVar(&flags.Width, cli.FlagWidth, 0, "Display name column width; defaults to the profile's")
	fs.StringVar(&flags.LongNames, cli.FlagLongNames, config.DefaultLongNames, "Names wider than the column (reject, unpadded)")
	fs.StringVarP(&flags.NameFilter, cli.FlagFilter, "f", "", "Filter images by name pattern (supports wildcards, e.g. 'add*' or '*mul*')")
}

// resolveConfig layers config file, environment, flags and the positional
// corpus argument into cfg and validates the result.
func resolveConfig(cmd *cobra.Command, args []string, flags *cli.Flags, cfg *config.Config) error {
	fs := cmd.Flags()
	loaded, err := config.Load(flags.Sources(fs))
	if err != nil {
		return err
	}
	flags.ApplyTo(fs, loaded)
	if len(args) == 1 {
		loaded.CorpusDir = args[0]
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	*cfg = *loaded

	setupOutput(cmd.ErrOrStderr(), cfg.Verbose, cfg.NoColor)
	slog.Debug("configuration resolved",
		"profile", cfg.Profile,
		"emulator", cfg.GetEmulatorPath(),
		"shape", cfg.ArgShape,
		"convention", cfg.Convention,
		"corpus", cfg.GetCorpusPath(),
		"suffix", cfg.Suffix,
		"width", cfg.PadWidth,
		"multi_mode", cfg.MultiMode,
	)
	return nil
}

func setupOutput(stderr io.Writer, verbose, noColor bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if noColor {
		color.NoColor = true
	}
}

// discoverTests builds the ordered work list for cfg
func discoverTests(cfg *config.Config, filter *discovery.Filter) ([]domain.TestCase, error) {
	policy, err := discovery.ParseLongNamePolicy(cfg.LongNames)
	if err != nil {
		return nil, err
	}

	corpus := cfg.GetCorpusPath()
	images, err := discovery.NewScanner(discovery.IncludeFor(cfg.Suffix)).Scan(corpus)
	if err != nil {
		return nil, err
	}
	images = filter.FilterByName(images, cfg.NameFilter)

	tests, err := discovery.Build(corpus, images, discovery.Padder{Width: cfg.PadWidth, Policy: policy})
	if err != nil {
		return nil, err
	}
	return discovery.Expand(tests, cfg.MultiMode), nil
}
