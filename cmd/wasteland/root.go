package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/wasteland/internal/cli"
	"github.com/aretw0/wasteland/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wasteland",
	Short: "Wasteland walks left/right node maps",
	Long: `Wasteland follows a cyclic L/R instruction line through a map of two-edge nodes.
It counts the steps from a start node to a goal node and the step at which every
walk from a set of start nodes stands on a goal node at once.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log engine events to stderr")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
}

// addQueryFlags registers the flags selecting which walks to run.
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Start node of the single walk (default AAA, empty to skip)")
	cmd.Flags().String("goal", "", "Goal node of the single walk (default ZZZ, empty to skip)")
	cmd.Flags().String("start-suffix", "", "Suffix of the synchronized start nodes (default A, empty to skip)")
	cmd.Flags().String("goal-suffix", "", "Suffix of the synchronized goal nodes (default Z, empty to skip)")
}

// addEngineFlags registers the flags tuning walks and the report cache.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("step-limit", 0, "Fail walks longer than this many steps (0 = unbounded)")
	cmd.Flags().Int("parallel", 1, "Synchronized walks to run at once")
	cmd.Flags().String("redis-url", "", "Cache reports in Redis (e.g. redis://localhost:6379/0)")
	cmd.Flags().String("cache-dir", "", "Cache reports as JSON files in this directory")
}

// resolveOptions loads the config file, takes the map path from args and
// applies every flag the user set explicitly.
func resolveOptions(cmd *cobra.Command, args []string) (cli.Options, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return cli.Options{}, err
	}
	if len(args) > 0 {
		cfg.Map = args[0]
	}

	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	str := func(name string, dst *string) {
		if changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	str("start", &cfg.Query.Start)
	str("goal", &cfg.Query.Goal)
	str("start-suffix", &cfg.Query.StartSuffix)
	str("goal-suffix", &cfg.Query.GoalSuffix)
	str("format", &cfg.Format)
	str("redis-url", &cfg.Redis.URL)
	str("cache-dir", &cfg.CacheDir)
	str("log-level", &cfg.LogLevel)
	str("log-format", &cfg.LogFormat)
	if changed("step-limit") {
		cfg.StepLimit, _ = flags.GetUint64("step-limit")
	}
	if changed("parallel") {
		cfg.Parallelism, _ = flags.GetInt("parallel")
	}
	if changed("port") {
		cfg.Server.Port, _ = flags.GetInt("port")
	}

	debug, _ := flags.GetBool("debug")
	opts := cli.NewOptions(cfg, debug)
	opts.Stdin = cmd.InOrStdin()
	opts.Stdout = cmd.OutOrStdout()
	opts.Stderr = cmd.ErrOrStderr()
	return opts, nil
}
