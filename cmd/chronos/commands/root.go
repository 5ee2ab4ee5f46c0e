// Package commands implements the CLI commands for chronos.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/chronos/internal/adapters/config"
	"go.trai.ch/chronos/internal/build"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
)

// Application represents the application logic interface.
type Application interface {
	ResolveAll(ctx context.Context, groupIDs []string) []domain.Resolution
	ListGroups(ctx context.Context) ([]domain.Group, error)
}

// Loader builds the application for a command. The context carries the
// config.Overrides taken from the persistent flags.
type Loader func(ctx context.Context) (Application, ports.Logger, error)

// CLI represents the command line interface for chronos.
type CLI struct {
	load    Loader
	rootCmd *cobra.Command

	configPath string
	logJSON    bool
}

// New creates a new CLI instance building its application with load.
func New(load Loader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "chronos",
		Short:         "Resolve group timetables from the Chronos export site",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		load:    load,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to the configuration file (default $CHRONOS_CONFIG, then "+domain.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(c.newGroupsCmd())
	rootCmd.AddCommand(c.newTimetableCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// application builds the application with the persistent flags applied.
func (c *CLI) application(cmd *cobra.Command) (Application, ports.Logger, error) {
	ctx := config.WithOverrides(cmd.Context(), config.Overrides{
		Path:    c.configPath,
		LogJSON: c.logJSON,
	})
	return c.load(ctx)
}
