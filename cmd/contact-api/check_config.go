package main

import (
	"fmt"
	"os"

	"github.com/osa911/contact-api/internal/config"

	"github.com/spf13/cobra"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate the environment configuration",
	Long:  `Loads the configuration the server would use and reports problems. The API key itself is never printed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Configuration invalid: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Environment:      %s\n", cfg.Environment)
		fmt.Printf("Listen address:   %s\n", cfg.Addr())
		fmt.Printf("Log level:        %s\n", cfg.LogLevel)
		fmt.Printf("Email provider:   %s\n", configuredLabel(cfg.EmailConfigured()))
		fmt.Printf("Tracing:          %s\n", configuredLabel(cfg.OTLPEndpoint != ""))

		if !cfg.EmailConfigured() {
			fmt.Println("\nRESEND_API_KEY is missing: every submission will fail with 500.")
			os.Exit(2)
		}
	},
}

func configuredLabel(ok bool) string {
	if ok {
		return "configured"
	}
	return "NOT configured"
}
