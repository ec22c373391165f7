// Package commands implements the CLI commands for apkfetch.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/apkfetch/internal/app"
	"go.trai.ch/apkfetch/internal/build"
	"go.trai.ch/apkfetch/internal/core/domain"
)

// CLI represents the command line interface for apkfetch.
type CLI struct {
	app       Application
	formatter LogFormatter
	rootCmd   *cobra.Command
	outcome   domain.Outcome
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (domain.Outcome, error)
}

// LogFormatter switches log output between pretty and JSON.
type LogFormatter interface {
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogFormatter lets the --json flag switch the given logger to JSON output.
func WithLogFormatter(f LogFormatter) Option {
	return func(c *CLI) {
		c.formatter = f
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	c := &CLI{app: a}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd := &cobra.Command{
		Use:   "apkfetch <package>",
		Short: "Download the latest APK of a package unless it is already archived",
		Long: "apkfetch looks up the current version of an Android package in the store, compares it\n" +
			"with the versions archived in the inventory directory and downloads it when it is newer.",
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.applyLogFormat,
		RunE:              c.runFetch,
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

	rootCmd.Flags().StringP("credentials", "c", domain.DefaultCredentialsPath, "Path to the credentials file")
	rootCmd.Flags().StringP("out", "o", domain.DefaultOutDir, "Output location, resolved against the program directory")
	rootCmd.Flags().String("inventory-dir", "", "Directory of archived APKs (overrides the config file)")
	rootCmd.Flags().String("config", domain.DefaultConfigFileName, "Path to the configuration file")
	rootCmd.Flags().Bool("trace", false, "Print the duration of every phase")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyLogFormat(cmd *cobra.Command, _ []string) error {
	jsonLogs, _ := cmd.Flags().GetBool("json")
	if jsonLogs && c.formatter != nil {
		c.formatter.SetJSON(true)
	}
	return nil
}

func (c *CLI) runFetch(cmd *cobra.Command, args []string) error {
	credentials, _ := cmd.Flags().GetString("credentials")
	out, _ := cmd.Flags().GetString("out")
	inventoryDir, _ := cmd.Flags().GetString("inventory-dir")
	configPath, _ := cmd.Flags().GetString("config")
	trace, _ := cmd.Flags().GetBool("trace")

	outcome, err := c.app.Run(cmd.Context(), app.RunOptions{
		Package:         args[0],
		CredentialsPath: credentials,
		OutPath:         out,
		InventoryDir:    inventoryDir,
		ConfigPath:      configPath,
		Trace:           trace,
	})
	c.outcome = outcome
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// Outcome returns the result of the last fetch. It is OutcomeDownloaded when no
// fetch ran, e.g. for help and version output.
func (c *CLI) Outcome() domain.Outcome {
	return c.outcome
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
