package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	profileMode string

	// Run flags
	sampleMode bool
	inputDir   string
	workers    int
	timing     bool
	plain      bool

	writeConfig bool

	logger *zap.Logger
	cfg    *Config
)

var rootCmd = &cobra.Command{
	Use:           "advent2023",
	Short:         "Solvers for the 2023 Advent of Code puzzles",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("input-dir") {
			cfg.InputDir = inputDir
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}
		return cfg.Validate()
	},
}

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve the given days (all days if none are named)",
	Long: `Solves each day's two parts from its input file, or from the worked
examples with --sample. Sample answers are checked against the known results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveDays(cmd.Context(), args, false)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [day...]",
	Short: "Solve days from their inputs and compare with the answers in the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveDays(cmd.Context(), args, true)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered days",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range Registry(cfg) {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", d.Number, d.Title)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration after defaults, the config file, the environment
and flags are applied. With --write it is saved to the --config path instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeConfig {
			if err := cfg.Save(configPath); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			logger.Info("config written", zap.String("path", configPath))
			return nil
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "advent.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&profileMode, "profile", "off", "Profile the run: cpu, mem, clock or off")

	for _, c := range []*cobra.Command{runCmd, checkCmd} {
		c.Flags().StringVar(&inputDir, "input-dir", "", "Directory holding the dayNN_input.txt files")
		c.Flags().IntVar(&workers, "workers", 4, "Days solved at once")
		c.Flags().BoolVar(&timing, "timing", false, "Print the per-part stopwatch buckets")
		c.Flags().BoolVar(&plain, "plain", false, "Disable colours and progress redraws")
	}
	runCmd.Flags().BoolVar(&sampleMode, "sample", false, "Solve the worked examples instead of the inputs")
	configCmd.Flags().BoolVar(&writeConfig, "write", false, "Save the effective configuration to the --config path")

	rootCmd.AddCommand(runCmd, checkCmd, listCmd, configCmd)
}

// selectDays resolves day-number arguments against the registry.
func selectDays(registry []Day, args []string) ([]Day, error) {
	if len(args) == 0 {
		return registry, nil
	}
	out := make([]Day, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("day %q is not a number", a)
		}
		d, err := FindDay(registry, n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func buildJobs(days []Day, check bool) ([]Job, error) {
	jobs := make([]Job, 0, len(days))
	for _, d := range days {
		if sampleMode && !check {
			jobs = append(jobs, SampleJob(d))
			continue
		}
		want := Answers{}
		if check {
			want = cfg.Answers[d.Number]
		}
		job, err := InputJob(d, cfg, want)
		if err != nil {
			return nil, err
		}
		job.RequireWant = check
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func startProfile(mode string, dir string) (interface{ Stop() }, error) {
	var kind func(*profile.Profile)
	switch mode {
	case "", "off":
		return nil, nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	case "clock":
		kind = profile.ClockProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(kind, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook), nil
}

func solveDays(ctx context.Context, args []string, check bool) error {
	days, err := selectDays(Registry(cfg), args)
	if err != nil {
		return err
	}
	jobs, err := buildJobs(days, check)
	if err != nil {
		return err
	}

	prof, err := startProfile(profileMode, cfg.ProfileDir)
	if err != nil {
		return err
	}
	if prof != nil {
		defer prof.Stop()
	}

	r := NewRunner(cfg.Workers, logger, len(jobs))
	var wg sync.WaitGroup
	wg.Add(1)
	go PrintUpdates(r, os.Stderr, !plain, &wg)
	results, runErr := r.Run(ctx, jobs)
	close(r.Progress)
	wg.Wait()

	fmt.Print(RenderResults(results, plain))
	if timing {
		fmt.Print(r.Watch.Results())
	}
	return runErr
}

// execute runs the command line and flushes the logger, whether or not the
// command failed.
func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
