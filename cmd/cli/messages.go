package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/axellelanca/portfolio/cmd"
	"github.com/spf13/cobra"
)

var limitFlag int

// MessagesCmd represents the 'messages' command
var MessagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Lists contact form submissions, newest first.",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		s := openStore()
		defer s.close()

		subs, err := s.contacts.ListSubmissions(context.Background(), limitFlag)
		if err != nil {
			log.Fatalf("Failed to list messages: %v", err)
		}
		if len(subs) == 0 {
			fmt.Println("No messages.")
			return
		}
		for _, m := range subs {
			fmt.Printf("[%s] %s\n", m.Timestamp.Format("2006-01-02 15:04"), m.String())
			fmt.Printf("  Subject: %s\n", m.Subject)
			fmt.Printf("  %s\n\n", m.Message)
		}
	},
}

func init() {
	MessagesCmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum number of messages to list")
	cmd.RootCmd.AddCommand(MessagesCmd)
}
