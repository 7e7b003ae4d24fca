package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

func init() {
	alt := &cobra.Command{
		Use:   "alternatives",
		Short: "List substitutes for one activity",
		Long:  "Regenerate the itinerary for the given preferences and list the unused businesses that could replace one activity.",
		Run:   runAlternatives,
	}
	addPrefFlags(alt)
	addActivityFlags(alt)
	RootCmd.AddCommand(alt)

	swap := &cobra.Command{
		Use:   "swap [name]",
		Short: "Replace one activity with an alternative",
		Long:  "Regenerate the itinerary for the given preferences, replace one activity with the named alternative, and print the result.",
		Args:  cobra.ExactArgs(1),
		Run:   runSwap,
	}
	addPrefFlags(swap)
	addActivityFlags(swap)
	RootCmd.AddCommand(swap)
}

func addActivityFlags(cmd *cobra.Command) {
	cmd.Flags().Int("day", 1, "Day number, starting at 1")
	cmd.Flags().Int("activity", 0, "Activity index within the day, starting at 0")
}

func runAlternatives(cmd *cobra.Command, args []string) {
	day, _ := cmd.Flags().GetInt("day")
	index, _ := cmd.Flags().GetInt("activity")

	sess := generate(cmd)
	alts, err := sess.Alternatives(day, index)
	if err != nil {
		exitErr("alternatives", err)
	}

	if formatFlag == "text" {
		for _, b := range alts {
			fmt.Printf("%-36s %.1f  %-10s %s\n", b.Name, b.Rating, b.Price, b.DriveTime)
		}
		return
	}
	if len(alts) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(alts)
}

type swapOutput struct {
	Replaced model.Business `json:"replaced"`
	Day      model.DayPlan  `json:"day"`
	Used     []string       `json:"used"`
}

func runSwap(cmd *cobra.Command, args []string) {
	day, _ := cmd.Flags().GetInt("day")
	index, _ := cmd.Flags().GetInt("activity")

	sess := generate(cmd)
	old, err := sess.Swap(day, index, args[0])
	if err != nil {
		exitErr("swap", err)
	}
	snap := sess.Snapshot()
	d, _ := snap.Itinerary.Day(day)

	if formatFlag == "text" {
		fmt.Printf("Replaced %s with %s\n", old.Name, args[0])
		for _, a := range d.Activities {
			fmt.Printf("  %-9s %s\n", a.Time, a.Activity.Name)
		}
		return
	}
	printJSON(swapOutput{Replaced: old, Day: *d, Used: snap.Used})
}
