package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/erp_ledger/internal/utils"
)

var (
	tokenUser string
	tokenTTL  time.Duration
)

// tokenCmd issues a bearer token signed with JWT_SECRET, for service
// integrations and local testing.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := tokenUser
		if user == "" {
			user = cfg.SystemUserID
		}
		token, err := utils.GenerateJWT(user, cfg.JWTSecret, tokenTTL, cfg.JWTIssuer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "Subject of the token (default LEDGER_SYSTEM_USER)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}
