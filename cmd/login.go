// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"evidencija/cli/internal/credentials"
	"evidencija/cli/internal/keychain"
	"evidencija/cli/internal/terminal"
	"evidencija/cli/internal/tokeninfo"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// loginCmd stores a bearer token in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Store an API token in the OS keychain",
	Long: `The login command reads a bearer token and stores it in the OS keychain, where
the update and query commands find it when EVIDENCIJA_TOKEN is not set.

The token is read without echo when stdin is a terminal, or from the first line
of stdin otherwise. A leading "Bearer " is accepted and stripped. No network call
is made and the token is not verified.`,
	Example: `  evidencija login
  pbpaste | evidencija login`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return fmt.Errorf("open keychain: %w", err)
		}

		raw, err := terminal.ReadSecret(os.Stdin, os.Stderr, "Paste API token: ")
		if err != nil {
			return err
		}
		token := credentials.Normalize(raw)
		if token == "" {
			return fmt.Errorf("no token entered")
		}

		claims, inspectErr := tokeninfo.Inspect(token)
		switch {
		case stderrors.Is(inspectErr, tokeninfo.ErrNotJWT):
			pterm.Warning.Println("Token is not a JWT; storing it as-is")
		case inspectErr != nil:
			pterm.Warning.Println("Token claims could not be decoded; storing it as-is")
		case claims.Expired(time.Now()):
			pterm.Warning.Println(fmt.Sprintf("Token already expired at %s", claims.ExpiresAt.Local().Format(time.RFC1123)))
		}

		if err := km.SaveAccessToken(token); err != nil {
			return err
		}
		if inspectErr == nil {
			pterm.Success.Println("Token saved for " + claims.Identity())
		} else {
			pterm.Success.Println("Token saved")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
