package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/osa911/contact-api/internal/api/dto/v1/contact"
	"github.com/osa911/contact-api/internal/client"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a contact form to a running server",
	Long: `Posts a submission to /api/contact and prints the server's answer.

Example:
  contact-api send --name Ann --email a@b.com --message "Hello there!"`,
	Run: func(cmd *cobra.Command, args []string) {
		baseURL, _ := cmd.Flags().GetString("url")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending contact form..."
		s.Start()
		res, err := client.NewContactClient(baseURL, nil).Submit(ctx, contact.ContactRequest{
			Name:    name,
			Email:   email,
			Message: message,
		})
		s.Stop()

		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}

		if !res.OK() {
			fmt.Printf("Rejected (%d): %s\n", res.StatusCode, res.Response.Error)
			os.Exit(1)
		}
		fmt.Println(res.Response.Message)
	},
}
