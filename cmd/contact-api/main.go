package main

import (
	"fmt"
	"os"

	"github.com/osa911/contact-api/internal/config"
	"github.com/osa911/contact-api/internal/logging"
	"github.com/osa911/contact-api/internal/version"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

// loadConfig reads the environment and initializes the global logger from it.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(cfg.Logging()); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logging.GetGlobalLogger()
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "contact-api",
	Short: "Contact form API",
	Long: `contact-api serves POST /api/contact, validates submissions and emails the
site owner, then sends a best-effort confirmation to the submitter.`,
	// Running without a subcommand starts the server.
	Run: func(cmd *cobra.Command, args []string) {
		serveCmd.Run(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("contact-api %s\n", version.Info())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkConfigCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(versionCmd)

	sendCmd.Flags().String("url", "http://localhost:8080", "Base URL of the contact API")
	sendCmd.Flags().String("name", "", "Sender name")
	sendCmd.Flags().String("email", "", "Sender email address")
	sendCmd.Flags().String("message", "", "Message text (at least 10 characters)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
