package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/macexpect"
	"github.com/aretw0/macexpect/internal/logging"
	"github.com/aretw0/macexpect/pkg/adapters/redis"
	"github.com/aretw0/macexpect/pkg/config"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Without a subcommand it prints the
// expected time and energy on a single line.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "macexpect",
		Short: "Exact expected time and energy of a duty-cycled MAC protocol",
		Long: `macexpect enumerates every execution branch of a three-node duty-cycled
MAC protocol polled by a gateway, and prints the exact expected completion
time (slots) and total energy (mW·s).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExpectation,
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("model", "", "YAML or JSON file with model parameters")
	flags.StringArray("set", nil, "Override a model parameter (key=value, repeatable)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("redis", "", "Redis address used to cache results (e.g. localhost:6379)")
	flags.Duration("redis-ttl", 0, "Expiration of cached results (0 keeps them)")
	flags.Bool("depth-first", false, "Expand the most recent state first instead of the oldest")

	rootCmd.Flags().Bool("json", false, "Print the full result as JSON")

	rootCmd.AddCommand(
		newReportCmd(),
		newModelCmd(),
		newGraphCmd(),
		newServeCmd(),
		newMCPCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runExpectation(cmd *cobra.Command, args []string) error {
	analyzer, model, err := setup(cmd)
	if err != nil {
		return err
	}

	res, err := analyzer.Analyze(cmd.Context(), model)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.ExpectedTime, res.ExpectedEnergy)
	return err
}

// setup resolves the model and builds an Analyzer from the persistent flags.
func setup(cmd *cobra.Command, extra ...macexpect.Option) (*macexpect.Analyzer, domain.Model, error) {
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, domain.Model{}, err
	}

	model, err := loadModel(cmd)
	if err != nil {
		return nil, domain.Model{}, err
	}

	opts := []macexpect.Option{macexpect.WithLogger(logger)}
	if depthFirst, _ := cmd.Flags().GetBool("depth-first"); depthFirst {
		opts = append(opts, macexpect.WithTraversal(domain.DepthFirst))
	}
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		ttl, _ := cmd.Flags().GetDuration("redis-ttl")
		opts = append(opts, macexpect.WithStore(redis.New(addr, os.Getenv("REDIS_PASSWORD"), 0, redis.WithTTL(ttl))))
		logger.Debug("caching results in redis", "address", addr)
	}
	opts = append(opts, extra...)

	return macexpect.New(opts...), model, nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

func loadModel(cmd *cobra.Command) (domain.Model, error) {
	model := config.Default()
	if path, _ := cmd.Flags().GetString("model"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return domain.Model{}, err
		}
		model = loaded
	}

	pairs, _ := cmd.Flags().GetStringArray("set")
	overrides, err := config.ParseOverrides(pairs)
	if err != nil {
		return domain.Model{}, err
	}
	return config.Apply(model, overrides)
}
