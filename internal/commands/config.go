package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runShowConfig,
}

var initConfigCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInitConfig,
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(initConfigCmd)

	initConfigCmd.Flags().Bool("force", false, "overwrite an existing file")
}

func runShowConfig(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

const defaultConfig = `# webapp configuration
#
# ENVIRONMENT, AWS_REGION, INSTANCE_ID and PORT override the matching keys.

server:
  host: 0.0.0.0
  port: 5000
  read_timeout: 15s
  write_timeout: 15s
  shutdown_timeout: 10s
  debug: false

app:
  environment: Development
  region: us-east-1
  instance_id: Unknown

logging:
  level: info
  format: json

security:
  allowed_origins:
    - "*"
`

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := "config.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
	return nil
}
