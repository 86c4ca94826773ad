package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"evalgo.org/webapp/models"
	"evalgo.org/webapp/pkg/webapp/client"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check the liveness of a running instance",
	Long: `Query /health on a running instance and exit non-zero unless it
reports healthy. Suitable for a container HEALTHCHECK.

Examples:
  # Probe the local instance on the configured port
  webapp probe

  # Probe a remote instance
  webapp probe --url http://10.0.1.15:5000`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().String("url", "", "base URL of the instance (default: http://127.0.0.1:<server.port>)")
	probeCmd.Flags().Duration("timeout", 3*time.Second, "request timeout")
}

func runProbe(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("url")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	c, err := client.New(baseURL, client.WithTimeout(timeout))
	if err != nil {
		return err
	}

	health, err := c.Health(cmd.Context())
	if err != nil {
		return fmt.Errorf("probe %s: %w", baseURL, err)
	}
	if health.Status != models.StatusHealthy {
		return fmt.Errorf("probe %s: status %q", baseURL, health.Status)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is %s (%s)\n", health.Service, health.Version, health.Status, health.Timestamp)
	return nil
}
