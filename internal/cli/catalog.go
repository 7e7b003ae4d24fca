package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and curate the business catalog",
}

func init() {
	sigs := &cobra.Command{
		Use:   "signatures",
		Short: "List signature experiences",
		Run:   runSignatures,
	}
	styles := &cobra.Command{
		Use:   "styles",
		Short: "List travel styles and the clusters each allows",
		Run:   runStyles,
	}

	catalogCmd.AddCommand(sigs, styles)
	RootCmd.AddCommand(catalogCmd)
}

func runSignatures(cmd *cobra.Command, args []string) {
	c, err := loadCatalog(cmd)
	if err != nil {
		exitErr("load catalog", err)
	}
	if formatFlag == "text" {
		for _, s := range c.Signatures() {
			fmt.Printf("%-22s %s (%s, %s)\n", s.ID, s.Name, s.Duration, s.Price)
		}
		return
	}
	printJSON(c.Signatures())
}

func runStyles(cmd *cobra.Command, args []string) {
	if formatFlag == "text" {
		for _, s := range catalog.TravelStyles() {
			fmt.Printf("%-11s %-18s %v\n", s.Style, s.Label, s.Clusters)
		}
		return
	}
	printJSON(catalog.TravelStyles())
}
