// Command vizgen submits plotting code to a remote execution service and
// renders the returned visualization.
//
// Usage:
//
//	vizgen generate plot.py --mode static --out plot.html
//	vizgen classify artifact.txt
//	vizgen serve
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/vizexec/logging"
)

var (
	// Global flags
	verbose  bool
	envFile  string
	endpoint string
	timeout  time.Duration

	cfg    Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vizgen",
	Short: "Generate visualizations from Python or R code on a remote runner",
	Long: `vizgen sends plotting code to a remote execution service and renders the
artifact it returns: an inline HTML document, an HTML data URI, or an image
data URI.

Configuration is read from the environment (VIZGEN_*), optionally loaded from
a .env file; flags override the environment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := LoadConfig(envFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("endpoint") {
			cfg.Endpoint = endpoint
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = timeout
		}

		logger = logging.New(logging.Options{
			Environment: logging.ParseEnvironment(cfg.Environment),
			Writer:      cmd.ErrOrStderr(),
			Verbose:     verbose,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file to load")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Launch endpoint URL (or set VIZGEN_ENDPOINT)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-submission timeout (or set VIZGEN_TIMEOUT)")

	rootCmd.AddCommand(generateCmd, classifyCmd, serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// errReported marks failures already shown to the user.
var errReported = errors.New("reported")
