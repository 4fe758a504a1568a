package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/axellelanca/portfolio/cmd"
	"github.com/spf13/cobra"
)

var recentFlag int

// StatsCmd represents the 'stats' command
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Shows click statistics.",
	Long: `Shows the number of tracked clicks per action kind and per project.
With --recent, also lists the latest click events, newest first.`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	StatsCmd.Flags().IntVar(&recentFlag, "recent", 0, "Number of recent click events to list")
	cmd.RootCmd.AddCommand(StatsCmd)
}

func runStats(_ *cobra.Command, _ []string) {
	s := openStore()
	defer s.close()
	ctx := context.Background()

	stats, err := s.clicks.Stats(ctx)
	if err != nil {
		log.Fatalf("Error retrieving statistics: %v", err)
	}

	fmt.Printf("Total clicks: %d\n", stats.Total)
	fmt.Println("By action:")
	for _, c := range stats.ByAction {
		fmt.Printf("  %-24s %d\n", c.ActionType.Label(), c.Total)
	}
	if len(stats.ByProject) > 0 {
		fmt.Println("By project:")
		for _, p := range stats.ByProject {
			fmt.Printf("  #%-4d %-30s %d\n", p.ProjectID, p.Title, p.Total)
		}
	}

	if recentFlag <= 0 {
		return
	}
	events, err := s.clicks.RecentClicks(ctx, recentFlag)
	if err != nil {
		log.Fatalf("Error retrieving recent clicks: %v", err)
	}
	fmt.Println("Recent clicks:")
	for _, e := range events {
		fmt.Printf("  %s  ip=%s  details=%s\n", e.String(), deref(e.IPAddress), deref(e.Details))
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

