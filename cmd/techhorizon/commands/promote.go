package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/app"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

var (
	// Promote flags
	promoteEmail string
	promoteRole  string
)

// promoteCmd grants a role without going through the admin-gated routes
var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Grant Admin or Moderator to an existing account",
	Long: `Grant a role directly in the database. The HTTP promotion routes need an
existing admin, so this is how the first one is created.

Examples:
  techhorizon promote --email alice@example.com
  techhorizon promote --email bob@example.com --role Moderator`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if promoteEmail == "" {
			return errors.New("--email is required")
		}
		role := domain.Role(promoteRole)

		a, err := app.Connect(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close(cmd.Context())

		if _, err := a.Accounts.PromoteByEmail(cmd.Context(), promoteEmail, role); err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return fmt.Errorf("no account registered for %s", promoteEmail)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", promoteEmail, role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd)

	promoteCmd.Flags().StringVarP(&promoteEmail, "email", "e", "", "Email of the account to promote")
	promoteCmd.Flags().StringVarP(&promoteRole, "role", "r", string(domain.RoleAdmin), "Role to grant (Admin or Moderator)")
}
