package commands

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"evalgo.org/webapp/internal/config"
	"evalgo.org/webapp/internal/logging"
	"evalgo.org/webapp/internal/version"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "webapp",
	Short: "Instance metadata web application",
	Long: `webapp serves a landing page describing the instance it runs on,
a liveness probe for the load balancer and JSON info and status endpoints.

Deployment descriptors come from ENVIRONMENT, AWS_REGION and INSTANCE_ID;
the listen port from PORT (default 5000).

Running webapp without a subcommand starts the server.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runServer,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, text)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "%s" .Version}}
`)
}

// loadConfig resolves configuration and the logger before any command runs.
// Flags override every other source.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	if logFormat != "" {
		loaded.Logging.Format = logFormat
	}
	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	cfg = loaded
	logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, info.String())

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Fprintf(out, "\nDetails:\n")
			fmt.Fprintf(out, "  Version:     %s\n", info.Version)
			fmt.Fprintf(out, "  API Version: %s\n", version.ServiceVersion)
			fmt.Fprintf(out, "  Git Commit:  %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Built:       %s\n", info.BuildTime)
			fmt.Fprintf(out, "  Go Version:  %s\n", info.GoVersion)
			fmt.Fprintf(out, "  Platform:    %s\n", info.Platform)
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "verbose version output")
}
