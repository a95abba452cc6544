// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"evidencija/cli/internal/credentials"
	"evidencija/cli/internal/keychain"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd removes the stored token from the OS keychain.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	Long: `The logout command removes the API token saved by login from the OS keychain.
A token supplied through EVIDENCIJA_TOKEN is not affected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return fmt.Errorf("open keychain: %w", err)
		}
		if err := km.ClearAuth(); err != nil {
			return err
		}
		pterm.Success.Println("Stored token has been removed")
		if v := credentials.Normalize(getenv(credentials.EnvToken)); v != "" {
			pterm.Info.Println(credentials.EnvToken + " is still set in the environment")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
