package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
	"github.com/mytravelspring/rio-nido-complete/internal/planner"
)

func addPrefFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("guest", "g", "", "Guest name")
	cmd.Flags().StringP("interests", "i", "", "Comma-separated interests: food, wine, nature, coffee, dessert (required)")
	cmd.Flags().StringP("style", "s", string(model.TravelModerate), "Travel style: stay_local, relaxed, moderate, day_trip")
	cmd.Flags().IntP("days", "n", 2, "Trip duration in days")
	cmd.Flags().Int("group", 2, "Group size")
	cmd.Flags().String("signature", "", "Signature experience id to schedule on day 2")

	cmd.MarkFlagRequired("interests")
}

func parseInterests(s string) ([]model.Category, error) {
	var out []model.Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := model.ParseCategory(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func prefsFromFlags(cmd *cobra.Command) (model.Preferences, error) {
	guest, _ := cmd.Flags().GetString("guest")
	interestsStr, _ := cmd.Flags().GetString("interests")
	style, _ := cmd.Flags().GetString("style")
	days, _ := cmd.Flags().GetInt("days")
	group, _ := cmd.Flags().GetInt("group")
	signature, _ := cmd.Flags().GetString("signature")

	interests, err := parseInterests(interestsStr)
	if err != nil {
		return model.Preferences{}, err
	}
	ts, err := model.ParseTravelStyle(style)
	if err != nil {
		return model.Preferences{}, err
	}
	prefs := model.Preferences{
		GuestName:    guest,
		Interests:    interests,
		TravelStyle:  ts,
		TripDuration: days,
		GroupSize:    group,
		Signature:    signature,
	}
	if err := prefs.Validate(); err != nil {
		return model.Preferences{}, err
	}
	return prefs, nil
}

// generate builds a session for the flags' preferences. The CLI is stateless,
// so alternatives and swaps regenerate the same plan first.
func generate(cmd *cobra.Command) *planner.Session {
	prefs, err := prefsFromFlags(cmd)
	if err != nil {
		exitErr("preferences", err)
	}
	sess := planner.NewSession(newPlanner(cmd))
	if err := sess.Generate(prefs); err != nil {
		exitErr("generate", err)
	}
	return sess
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
