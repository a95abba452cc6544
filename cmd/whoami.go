package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"evidencija/cli/internal/credentials"
	"evidencija/cli/internal/tokeninfo"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// whoamiCmd shows who the resolved token belongs to. Claims are decoded
// locally; nothing is sent to the API.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the account of the current API token",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := credentials.With(getenv, tokenStore(), func(tok *credentials.Token) error {
			fmt.Printf("Token source: %s\n", tok.Source)

			claims, err := tokeninfo.Inspect(tok.Bearer())
			if err != nil {
				fmt.Println("Token is opaque; no account details available")
				return nil
			}
			fmt.Printf("👤 Current user: %s\n", claims.Identity())
			if claims.Issuer != "" {
				fmt.Printf("Issuer: %s\n", claims.Issuer)
			}
			if claims.ExpiresAt.IsZero() {
				return nil
			}
			exp := claims.ExpiresAt.Local().Format(time.RFC1123)
			if claims.Expired(time.Now()) {
				pterm.Warning.Println("Token expired at " + exp)
			} else {
				fmt.Printf("Expires: %s\n", exp)
			}
			return nil
		})
		if stderrors.Is(err, credentials.ErrNoToken) {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'evidencija login' or set " + credentials.EnvToken + ".")
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

var getenv = os.Getenv
