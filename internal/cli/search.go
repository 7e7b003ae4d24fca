package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the stored catalog by keyword",
		Long:  "Search business names, types, descriptions and local insights in the catalog database. Run 'catalog import --builtin' first to seed it.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().StringP("cluster", "c", "", "Filter by cluster")
	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	catalogCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	clusterStr, _ := cmd.Flags().GetString("cluster")
	categoryStr, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	cluster, category, err := parseFilters(clusterStr, categoryStr)
	if err != nil {
		exitErr("search", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Search(cmd.Context(), store.SearchParams{
		Query:    query,
		Cluster:  cluster,
		Category: category,
		Limit:    limit,
	})
	if err != nil {
		exitErr("search", err)
	}

	if formatFlag == "text" {
		for _, b := range results {
			fmt.Printf("%-36s %s\n", b.Name, b.Description)
		}
		return
	}
	if len(results) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(results)
}
