package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	palinscan "github.com/bft-labs/palinscan"
	"github.com/bft-labs/palinscan/internal/cliconfig"
)

const helpDescription = `
Scan integer bases N = 3, 4, 5, ... for P(N), the smallest integer above 2N
that is palindromic both in base N and in base 2, and print each P(N) that
exceeds every previously printed one, until the sequence reaches the target
(one quadrillion by default).

Each output line shows elapsed time, the base, the comma-grouped decimal
value, and the value's digits in base N and base 2. Palindromes are generated
additively, without digit arrays, so the scan stays fast even deep into the
quadrillions; everything must fit in 64 bits, and the program exits with an
error if it does not.
`

var exampleUsage = strings.TrimSpace(`
  palinscan
  palinscan --target 1000000000 --progress-every 10s
  palinscan --config $HOME/.palinscan/config.toml --metrics-addr :9187
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := palinscan.Logger()

	root := &cobra.Command{
		Use:     "palinscan",
		Short:   "Find ever-larger numbers palindromic in both base N and base 2",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.palinscan/config.toml),
			// then apply env and flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else {
				// Nothing to watch for live reload.
				cfgFile = ""
			}

			// Apply environment variables (PALINSCAN_*)
			// These override file config but are overridden by flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Info().Interface("config", cfg).Msg("configuration")

			libCfg := palinscan.Config{
				StartBase:     cfg.StartBase,
				Target:        cfg.Target,
				MaxBase:       cfg.MaxBase,
				ProgressEvery: cfg.ProgressEvery,
				LogLevel:      cfg.LogLevel,
				MetricsAddr:   cfg.MetricsAddr,
				ConfigPath:    cfgFile,
				Quiet:         cfg.Quiet,
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Info().Msg("received signal, stopping...")
				cancel()
			}()

			if err := palinscan.Run(ctx, libCfg); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.palinscan/config.toml)")
	root.Flags().Uint64Var(&cfg.StartBase, "start-base", cfg.StartBase, "first base to examine")
	root.Flags().Uint64Var(&cfg.Target, "target", cfg.Target, "stop once an emitted value reaches this")
	root.Flags().Uint64Var(&cfg.MaxBase, "max-base", cfg.MaxBase, "defensive upper bound on the base loop (0 = derived from target)")

	root.Flags().DurationVar(&cfg.ProgressEvery, "progress-every", cfg.ProgressEvery, "interval between progress log lines")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "address to serve Prometheus metrics on (empty = disabled)")
	root.Flags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress stdout sequence lines (log only)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("palinscan")
		os.Exit(1)
	}
}
