package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/flexlab/internal/batch"
	"github.com/ytget/flexlab/internal/config"
	"github.com/ytget/flexlab/internal/dataset"
	"github.com/ytget/flexlab/internal/logging"
	"github.com/ytget/flexlab/internal/platform"
	"github.com/ytget/flexlab/internal/render"
	"github.com/ytget/flexlab/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	// Global flags
	verbose      bool
	configPath   string
	rawDir       string
	processedDir string
	logsDir      string
	noLogFile    bool

	// process flags
	maxParallel int
	regionSize  float64
	workbook    bool

	// plot flags
	dpi       float64
	openPlots bool

	params config.Params
	logger *zap.Logger

	// launchGUI opens the analyzer window and blocks until it is closed
	launchGUI = ui.Launch
)

// Run log prefixes per command
var logPrefixes = map[string]string{
	"process": "process_data",
	"plot":    "generate_plots",
	"analyze": "analyze_modulus",
}

var rootCmd = &cobra.Command{
	Use:   "flexlab",
	Short: "Flexural test data reduction",
	Long: `flexlab reduces three point bend test exports to flexural strength and
flexural modulus.

  process  read raw_data/*.csv and write the strength summary
  plot     render the summary as bar charts
  analyze  pick the modulus fit window of each specimen by hand`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		if err := loadParams(cmd); err != nil {
			return err
		}

		dir := params.LogsDir
		if noLogFile {
			dir = ""
		}
		var err error
		logger, _, err = logging.New(logging.Options{
			Dir:     dir,
			Prefix:  logPrefixes[cmd.Name()],
			Verbose: verbose,
			Console: cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Compute flexural strength and initial modulus for every specimen",
	Args:  cobra.NoArgs,
	RunE:  runProcess,
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the strength and modulus summaries as bar charts",
	Args:  cobra.NoArgs,
	RunE:  runPlot,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Open the interactive modulus analyzer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := params
		launchGUI(version, &p, logger)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flexlab v%s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVarP(&configPath, "config", "c", "", "Parameters file (default "+config.DefaultParamsFile+" when present)")
	pf.StringVar(&rawDir, "raw-dir", "", "Directory with specimen CSV files")
	pf.StringVar(&processedDir, "processed-dir", "", "Directory for summaries and plots")
	pf.StringVar(&logsDir, "logs-dir", "", "Directory for run logs")
	pf.BoolVar(&noLogFile, "no-log-file", false, "Log to the console only")

	processCmd.Flags().IntVarP(&maxParallel, "parallel", "p", config.DefaultMaxParallel, "Files processed at once (1-10)")
	processCmd.Flags().Float64Var(&regionSize, "region", config.DefaultRegionSize, "Initial linear region as decimal strain")
	processCmd.Flags().BoolVar(&workbook, "xlsx", false, "Also write the summary as an Excel workbook")

	plotCmd.Flags().Float64Var(&dpi, "dpi", config.DefaultDPI, "Output resolution of the plots")
	plotCmd.Flags().BoolVar(&openPlots, "open", false, "Open the plots with the default viewer")

	rootCmd.AddCommand(processCmd, plotCmd, analyzeCmd, versionCmd)
}

// loadParams reads the parameters file and applies explicitly set flags
func loadParams(cmd *cobra.Command) error {
	p, err := config.LoadParams(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("raw-dir") {
		p.RawDataDir = rawDir
	}
	if flags.Changed("processed-dir") {
		p.ProcessedDir = processedDir
	}
	if flags.Changed("logs-dir") {
		p.LogsDir = logsDir
	}
	if flags.Changed("parallel") {
		p.MaxParallel = maxParallel
	}
	if flags.Changed("region") {
		p.RegionSize = regionSize
	}
	if flags.Changed("xlsx") {
		p.Workbook = workbook
	}
	if flags.Changed("dpi") {
		p.DPI = dpi
	}

	if err := p.Validate(); err != nil {
		return err
	}
	params = p
	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting data processing",
		zap.String("raw_data_dir", params.RawDataDir),
		zap.Float64("region_size", params.RegionSize),
		zap.Int("max_parallel", params.MaxParallel))

	svc := batch.NewService(params.MaxParallel, params.RegionSize, logger)
	report, err := batch.ProcessDirectory(ctx, svc, params, logger)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("Processing interrupted")
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d of %d files -> %s\n", report.Processed, report.Files, report.SummaryPath)
	if report.Workbook != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Workbook -> %s\n", report.Workbook)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	rows, err := dataset.ReadSummary(params.SummaryPath())
	if err != nil {
		return fmt.Errorf("run 'flexlab process' first: %w", err)
	}
	if len(rows) == 0 {
		logger.Warn("Summary has no rows, no plots written", zap.String("path", params.SummaryPath()))
		return nil
	}
	opts := render.BarOptions{DPI: params.DPI}
	var saved []string

	strengthPath := params.StrengthPlotPath()
	if err := render.SaveStrengthPlot(strengthPath, rows, opts); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Plot saved to %s", strengthPath))
	fmt.Fprintln(cmd.OutOrStdout(), strengthPath)
	saved = append(saved, strengthPath)

	modulusPath := params.ModulusPlotPath()
	err = render.SaveModulusPlot(modulusPath, rows, opts)
	switch {
	case errors.Is(err, render.ErrNoBars):
		logger.Warn("No modulus values in summary, skipping modulus plot")
	case err != nil:
		return err
	default:
		logger.Info(fmt.Sprintf("Plot saved to %s", modulusPath))
		fmt.Fprintln(cmd.OutOrStdout(), modulusPath)
		saved = append(saved, modulusPath)
	}

	if openPlots {
		for _, path := range saved {
			if err := platform.OpenFileWithDefaultApp(path); err != nil {
				logger.Warn("Failed to open plot", zap.String("path", path), zap.Error(err))
			}
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
