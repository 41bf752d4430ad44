// Package commands implements the CLI commands for the planner.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/planner/internal/app"
	"go.trai.ch/planner/internal/build"
	"go.trai.ch/planner/internal/core/domain"
)

// CLI represents the command line interface for planner.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "A single-screen daily task planner for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runPlanner,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("config", "c", "", "Path to a "+domain.ConfigFileName+" file (default: search upwards from the working directory)")
	rootCmd.Flags().StringP("output-mode", "o", "", "Output mode: auto, tui, or linear (default: from config, else auto)")
	rootCmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	rootCmd.Flags().Bool("log-json", false, "Write log records as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runPlanner(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	// If --ci is set, override output-mode to "linear"
	if ci {
		outputMode = string(domain.OutputLinear)
	}

	return c.app.Run(cmd.Context(), app.RunOptions{
		ConfigPath: configPath,
		OutputMode: outputMode,
		JSONLogs:   logJSON,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
