package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/app"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/infrastructure/db/mongo"
)

// indexesCmd creates the MongoDB indexes
var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create MongoDB indexes",
	Long: `Create the indexes the API relies on, including the unique index on
users.email. Safe to run repeatedly; serve runs it on startup as well.

Existing duplicate emails make the unique index fail and must be cleaned up
by hand first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Connect(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(cmd.Context())

		if err := mongo.EnsureIndexes(cmd.Context(), a.Database()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "indexes ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
