package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog database statistics",
		Run:   runStats,
	}

	catalogCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	if formatFlag == "text" {
		fmt.Printf("%s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
		fmt.Printf("%d businesses, %d signature experiences\n", stats.Businesses, stats.Signatures)
		for _, c := range stats.Clusters {
			fmt.Printf("  %-12s %2d  avg %.2f\n", c.Cluster, c.Count, c.AvgRating)
		}
		return
	}
	printJSON(stats)
}
