package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/server"
)

var tokenService string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a service token",
	Long:  "Mint a JWT for a calling service, signed with the configured auth.jwt_secret.",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenService, "service", "backend", "Name of the calling service")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.AuthEnabled() {
		return fmt.Errorf("auth.jwt_secret is not configured")
	}
	jwtCfg, err := cfg.JWT()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(tokenService)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
