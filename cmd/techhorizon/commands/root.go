package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/infrastructure/config"
	"github.com/muhammad-sayem/Tech-Horizon-Server/pkg/logger"
)

var (
	// Global flags
	logLevel string

	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "techhorizon",
	Short: "Tech Horizon - product discovery marketplace API",
	Long: `Tech Horizon serves the marketplace API used by the web client:
product submissions and moderation, upvotes, the featured spotlight,
reviews, coupons, admin statistics and payment intents.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		if logLevel != "" {
			c.LogLevel = logLevel
		}
		cfg = c
		log = logger.Init(logger.Options{
			Level:   c.LogLevel,
			Pretty:  c.IsDevelopment(),
			Service: "techhorizon",
		})
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL (trace, debug, info, warn, error)")
}
