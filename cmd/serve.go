package cmd

import (
	"fmt"
	"net/http"

	"github.com/example/paydemo/internal/console"
	"github.com/example/paydemo/internal/relay"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the payments API relay",
	Long: `Start the HTTP relay in front of the Stripe API. Every endpoint is
a thin forward to the official SDK scoped to a connected account; the SDK
owns auth, transport and retries. Requires STRIPE_SECRET_KEY in the
environment or a .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	_ = godotenv.Load()

	cfg, err := relay.FromEnv()
	if err != nil {
		return ExitError{Code: 2, Err: err}
	}

	server := relay.NewServer(relay.NewClient(cfg.SecretKey))
	console.Info("relay listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, server); err != nil {
		return fmt.Errorf("relay server failed: %w", err)
	}
	return nil
}
