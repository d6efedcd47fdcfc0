// Package main provides a CLI for the manage-tokens function.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fadilmartias/mock-interview/internal/config"
	"github.com/fadilmartias/mock-interview/internal/service"
)

var (
	flagUID string
	flagURL string
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tokenctl",
		Short:        "Inspect and spend interview tokens",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flagUID, "uid", "", "user id")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "manage-tokens function URL (default: TOKEN_BACKEND_URL)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the token balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.GetTokenCount(cmd.Context(), flagUID))
			return nil
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "use",
		Short: "Spend one token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printJSON(cmd, svc.CheckAndUseToken(cmd.Context(), flagUID))
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the account with the default balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return printJSON(cmd, svc.InitializeUserTokens(cmd.Context(), flagUID))
		},
	})

	rootCmd.SetContext(context.Background())
	return rootCmd
}

func newService() (service.TokenBackendServiceInterface, error) {
	if strings.TrimSpace(flagUID) == "" {
		return nil, fmt.Errorf("--uid is required")
	}
	cfg := *config.LoadTokenBackendConfig()
	if flagURL != "" {
		cfg.FunctionURL = flagURL
	}
	return service.NewTokenBackendService(&cfg), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
