package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/axellelanca/portfolio/cmd"
	"github.com/spf13/cobra"
)

// SiteInfoCmd represents the 'site-info' command
var SiteInfoCmd = &cobra.Command{
	Use:   "site-info",
	Short: "Shows or updates the site-wide information.",
	Long: `Without flags, prints the current site information. Each given flag
updates the matching field; the other fields keep their values.`,
	Run: func(c *cobra.Command, _ []string) {
		s := openStore()
		defer s.close()
		ctx := context.Background()

		info, err := s.content.GeneralInfo(ctx)
		if err != nil {
			log.Fatalf("Failed to load site information: %v", err)
		}

		flags := c.Flags()
		changed := false
		for name, target := range map[string]*string{
			"name":   &info.Name,
			"email":  &info.ContactEmail,
			"footer": &info.FooterText,
			"resume": &info.ResumeURL,
		} {
			if flags.Changed(name) {
				v, _ := flags.GetString(name)
				*target = v
				changed = true
			}
		}

		if changed {
			if err := s.content.SaveGeneralInfo(ctx, &info); err != nil {
				log.Fatalf("Failed to save site information: %v", err)
			}
			fmt.Println("Site information updated.")
		}

		fmt.Printf("Name:   %s\n", info.Name)
		fmt.Printf("Email:  %s\n", info.ContactEmail)
		fmt.Printf("Footer: %s\n", info.FooterText)
		fmt.Printf("Resume: %s\n", info.ResumeURL)
	},
}

func init() {
	SiteInfoCmd.Flags().String("name", "", "Site owner name")
	SiteInfoCmd.Flags().String("email", "", "Contact email address")
	SiteInfoCmd.Flags().String("footer", "", "Footer text")
	SiteInfoCmd.Flags().String("resume", "", "Resume download URL")
	cmd.RootCmd.AddCommand(SiteInfoCmd)
}
