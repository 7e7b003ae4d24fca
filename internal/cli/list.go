package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/export"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List businesses",
		Run:   runList,
	}

	cmd.Flags().StringP("cluster", "c", "", "Filter by cluster")
	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().Bool("names-only", false, "Only output business names")

	catalogCmd.AddCommand(cmd)
}

// parseFilters validates optional cluster and category flags. Empty values
// mean no filter.
func parseFilters(clusterStr, categoryStr string) (model.Cluster, model.Category, error) {
	var cluster model.Cluster
	if clusterStr != "" {
		c, err := model.ParseCluster(clusterStr)
		if err != nil {
			return "", "", err
		}
		cluster = c
	}
	var category model.Category
	if categoryStr != "" {
		c, err := model.ParseCategory(categoryStr)
		if err != nil {
			return "", "", err
		}
		category = c
	}
	return cluster, category, nil
}

type listEntry struct {
	model.Business
	Booking    catalog.BookingInfo `json:"booking"`
	Directions string              `json:"directions_url"`
}

func runList(cmd *cobra.Command, args []string) {
	clusterStr, _ := cmd.Flags().GetString("cluster")
	categoryStr, _ := cmd.Flags().GetString("category")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	cluster, category, err := parseFilters(clusterStr, categoryStr)
	if err != nil {
		exitErr("list", err)
	}

	c, err := loadCatalog(cmd)
	if err != nil {
		exitErr("load catalog", err)
	}

	entries := []listEntry{}
	for _, b := range c.Businesses() {
		if cluster != "" && b.Cluster != cluster {
			continue
		}
		if category != "" && b.Category != category {
			continue
		}
		entries = append(entries, listEntry{
			Business:   b,
			Booking:    catalog.Booking(b.Name),
			Directions: export.DirectionsURL(b.Name, catalog.CoordinatesFor(b.Name)),
		})
	}

	if namesOnly || formatFlag == "text" {
		for _, e := range entries {
			if namesOnly {
				fmt.Println(e.Name)
				continue
			}
			fmt.Printf("%-36s %-12s %-8s %.1f  %s\n", e.Name, e.Cluster, e.Category, e.Rating, e.Price)
		}
		return
	}
	printJSON(entries)
}
