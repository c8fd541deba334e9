package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/riftlang/beamdriver"
)

var (
	flagOut     string
	flagLib     string
	flagConfig  string
	flagEscript string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "beamc [flags] <module>...",
	Short:        "Compile BEAM modules through a persistent escript worker",
	Args:         cobra.MinimumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagOut, "out", "", "build output directory")
	rootCmd.Flags().StringVar(&flagLib, "lib", "", "directory holding compiled dependencies")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a beamc config file")
	rootCmd.Flags().StringVar(&flagEscript, "escript", "", "explicit path to the escript binary")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "discard compiler diagnostics")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log driver activity to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := defaultConfig()

	if flagConfig != "" {
		loaded, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if flagOut != "" {
		cfg.Out = flagOut
	}

	if flagLib != "" {
		cfg.Lib = flagLib
	}

	if flagEscript != "" {
		cfg.Escript = flagEscript
	}

	if flagVerbose {
		cfg.Verbose = true
	}

	if cfg.Out == "" {
		return fmt.Errorf("no output directory: set --out or \"out\" in the config file")
	}

	if cfg.Lib == "" {
		return fmt.Errorf("no library directory: set --lib or \"lib\" in the config file")
	}

	opts := []beamdriver.Option{
		beamdriver.WithArtifactDir(cfg.ArtifactDir),
	}

	if cfg.Escript != "" {
		opts = append(opts, beamdriver.WithEscriptPath(cfg.Escript))
	}

	if cfg.Verbose {
		opts = append(opts, beamdriver.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}

	driver := beamdriver.New(opts...)
	defer func() { _ = driver.Close() }()

	sink := beamdriver.SinkForward
	if flagQuiet {
		sink = beamdriver.SinkDiscard
	}

	return driver.Compile(cmd.Context(), cfg.Out, cfg.Lib, args, sink)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
