// Package cli implements the nuxtgen command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

// Version is set from build flags by the main package.
var Version = "dev"

type rootOptions struct {
	logLevel string
	logger   *log.Logger
}

// NewRootCommand builds the nuxtgen command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nuxtgen",
		Short: "Render the virtual build files of a Nuxt-style application",
		Long: `nuxtgen renders the generated source files a Nuxt-style build consumes
(component re-exports, plugin registries, type declarations, runtime config
shims and layout/middleware tables) from a project description.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
			}
			opts.logger = &log.Logger{
				Handler: clihandler.New(cmd.ErrOrStderr()),
				Level:   level,
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error, fatal)")

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newLintCommand(opts))
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
