package planner

import (
	"errors"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/mytravelspring/rio-nido-complete/internal/catalog"
	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

var fixedNow = time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	return New(catalog.Default(), WithClock(func() time.Time { return fixedNow }))
}

func activityNames(d model.DayPlan) []string {
	var out []string
	for _, a := range d.Activities {
		out = append(out, a.Activity.Name)
	}
	return out
}

func assertNames(t *testing.T, label string, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}

func TestAssemble_WineModerateTwoDays(t *testing.T) {
	p := newTestPlanner(t)
	it, used, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryWine},
		TravelStyle:  model.TravelModerate,
		TripDuration: 2,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(it.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(it.Days))
	}
	if it.Days[0].Focus != model.ClusterTownCenter || it.Days[1].Focus != model.ClusterWineRegion {
		t.Errorf("unexpected focus %s, %s", it.Days[0].Focus, it.Days[1].Focus)
	}
	assertNames(t, "day 1", activityNames(it.Days[0]),
		[]string{"Graze at Rio Nido Lodge", "Boon Eat + Drink", "Saucy Mama's Pizza"})
	assertNames(t, "day 2", activityNames(it.Days[1]),
		[]string{"Big Bottom Market", "Furthermore Wines"})

	main := it.Days[1].Activities[1]
	if main.Type != model.SlotTypeMain || main.Time != TimeMain {
		t.Errorf("expected main at %s, got %s at %s", TimeMain, main.Type, main.Time)
	}
	if used.Len() != 5 {
		t.Errorf("expected 5 used, got %d", used.Len())
	}
}

func TestAssemble_SignatureDelaysMain(t *testing.T) {
	p := newTestPlanner(t)
	it, used, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryWine},
		TravelStyle:  model.TravelModerate,
		TripDuration: 2,
		Signature:    "redwood_meditation",
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	acts := it.Days[1].Activities
	if len(acts) != 3 {
		t.Fatalf("expected 3 activities on day 2, got %d", len(acts))
	}
	sig := acts[1]
	if sig.Type != model.SlotTypeSignature || sig.Time != TimeSignature {
		t.Errorf("expected signature at %s, got %s at %s", TimeSignature, sig.Type, sig.Time)
	}
	if sig.Signature == nil || sig.Signature.ID != "redwood_meditation" {
		t.Errorf("expected redwood_meditation reference, got %+v", sig.Signature)
	}
	if sig.Activity.Rating != model.SignatureRating || sig.Activity.Category != model.CategorySignature {
		t.Errorf("unexpected signature record %+v", sig.Activity)
	}
	if acts[2].Activity.Name != "Furthermore Wines" || acts[2].Time != TimeMainDelayed {
		t.Errorf("expected Furthermore Wines at %s, got %s at %s", TimeMainDelayed, acts[2].Activity.Name, acts[2].Time)
	}
	if used.Has(sig.Activity.Name) {
		t.Error("signature experience should not consume the used set")
	}
	for _, a := range it.Days[0].Activities {
		if a.Type == model.SlotTypeSignature {
			t.Error("signature placed on day 1")
		}
	}
}

func TestAssemble_SignatureOnlyOnDayTwo(t *testing.T) {
	p := newTestPlanner(t)
	it, _, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryFood},
		TravelStyle:  model.TravelDayTrip,
		TripDuration: 4,
		Signature:    "river_adventure",
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	count := 0
	for _, d := range it.Days {
		for _, a := range d.Activities {
			if a.Type == model.SlotTypeSignature {
				count++
				if d.Day != 2 {
					t.Errorf("signature on day %d", d.Day)
				}
			}
		}
	}
	if count != 1 {
		t.Errorf("expected one signature activity, got %d", count)
	}
}

func TestAssemble_DayTripFoodNature(t *testing.T) {
	p := newTestPlanner(t)
	it, used, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryFood, model.CategoryNature},
		TravelStyle:  model.TravelDayTrip,
		TripDuration: 3,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	assertNames(t, "day 1", activityNames(it.Days[0]),
		[]string{"Graze at Rio Nido Lodge", "Russian River Beach", "Boon Eat + Drink", "Saucy Mama's Pizza"})
	assertNames(t, "day 2", activityNames(it.Days[1]), []string{"Big Bottom Market"})
	assertNames(t, "day 3", activityNames(it.Days[2]),
		[]string{"Jilly's Roadhouse", "Goat Rock Beach", "The Blue Heron"})
	if it.Days[2].Focus != model.ClusterCoastal {
		t.Errorf("expected coastal focus, got %s", it.Days[2].Focus)
	}
	if used.Len() != 8 {
		t.Errorf("expected 8 used, got %d", used.Len())
	}
}

func TestAssemble_NoMatchingMainIsSkipped(t *testing.T) {
	p := newTestPlanner(t)
	it, _, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryArts},
		TravelStyle:  model.TravelRelaxed,
		TripDuration: 1,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	want := []model.SlotType{model.SlotTypeMorning, model.SlotTypeLunch, model.SlotTypeEvening}
	var got []model.SlotType
	for _, a := range it.Days[0].Activities {
		got = append(got, a.Type)
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected slots %v, got %v", want, got)
	}
}

func TestAssemble_CoffeeOnlyHasNoMain(t *testing.T) {
	p := newTestPlanner(t)
	it, _, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryCoffee},
		TravelStyle:  model.TravelStayLocal,
		TripDuration: 1,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	first := it.Days[0].Activities[0]
	if first.Activity.Name != "Coffee Bazaar" {
		t.Errorf("expected Coffee Bazaar for a coffee lover's morning, got %s", first.Activity.Name)
	}
	for _, a := range it.Days[0].Activities {
		if a.Type == model.SlotTypeMain {
			t.Errorf("did not expect a main slot, got %s", a.Activity.Name)
		}
	}
}

func TestAssemble_NoInterests(t *testing.T) {
	p := newTestPlanner(t)
	_, _, err := p.Assemble(model.Preferences{TravelStyle: model.TravelModerate, TripDuration: 2})
	if !errors.Is(err, ErrNoInterests) {
		t.Errorf("expected ErrNoInterests, got %v", err)
	}
}

func TestAssemble_InvalidDuration(t *testing.T) {
	p := newTestPlanner(t)
	_, _, err := p.Assemble(model.Preferences{Interests: []model.Category{model.CategoryFood}})
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestAssemble_UnknownSignature(t *testing.T) {
	p := newTestPlanner(t)
	_, _, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryFood},
		TripDuration: 2,
		Signature:    "skydiving",
	})
	if !errors.Is(err, ErrUnknownSignature) {
		t.Errorf("expected ErrUnknownSignature, got %v", err)
	}
}

func TestAssemble_UnknownStyleUsesNearbyClusters(t *testing.T) {
	p := newTestPlanner(t)
	it, _, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryWine},
		TravelStyle:  "helicopter",
		TripDuration: 3,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	for _, d := range it.Days {
		if d.Focus != model.ClusterLodge && d.Focus != model.ClusterTownCenter {
			t.Errorf("day %d: unexpected focus %s", d.Day, d.Focus)
		}
	}
}

func TestAssemble_Dates(t *testing.T) {
	p := newTestPlanner(t)
	it, _, err := p.Assemble(model.Preferences{
		Interests:    []model.Category{model.CategoryFood},
		TravelStyle:  model.TravelModerate,
		TripDuration: 2,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if it.Days[0].Date != "2026-10-18" {
		t.Errorf("expected 2026-10-18, got %s", it.Days[0].Date)
	}
	if it.Days[1].Date != "2026-10-19" {
		t.Errorf("expected 2026-10-19, got %s", it.Days[1].Date)
	}
	if it.Days[1].DisplayDate != "Monday, October 19" {
		t.Errorf("expected Monday, October 19, got %s", it.Days[1].DisplayDate)
	}
	if it.Days[1].FocusLabel != model.ClusterWineRegion.Label() {
		t.Errorf("expected focus label %q, got %q", model.ClusterWineRegion.Label(), it.Days[1].FocusLabel)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	p := newTestPlanner(t)
	prefs := model.Preferences{
		Interests:    []model.Category{model.CategoryWine, model.CategoryFood, model.CategoryDessert},
		TravelStyle:  model.TravelDayTrip,
		TripDuration: 5,
		Signature:    "foraging_tour",
	}
	a, ua, err := p.Assemble(prefs)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	for range 5 {
		b, ub, err := p.Assemble(prefs)
		if err != nil {
			t.Fatalf("assemble: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatal("itineraries differ between identical runs")
		}
		if !slices.Equal(ua.Names(), ub.Names()) {
			t.Fatal("used sets differ between identical runs")
		}
	}
}

func slotClusters(st model.SlotType, focus model.Cluster) []model.Cluster {
	switch st {
	case model.SlotTypeMorning:
		return []model.Cluster{focus, model.ClusterLodge, model.ClusterTownCenter}
	case model.SlotTypeMain:
		return []model.Cluster{focus}
	case model.SlotTypeLunch:
		return []model.Cluster{focus, model.ClusterTownCenter}
	case model.SlotTypeEvening:
		return eveningClusters(focus)
	}
	return nil
}

func TestAssemble_Invariants(t *testing.T) {
	p := newTestPlanner(t)
	interestSets := [][]model.Category{
		{model.CategoryFood},
		{model.CategoryWine},
		{model.CategoryCoffee, model.CategoryDessert},
		{model.CategoryNature, model.CategoryWine, model.CategoryFood},
		{model.CategoryArts, model.CategoryMusic},
	}
	for _, style := range model.TravelStyles {
		for days := 1; days <= 7; days++ {
			for _, interests := range interestSets {
				for _, sig := range []string{"", "coastal_photography"} {
					prefs := model.Preferences{Interests: interests, TravelStyle: style, TripDuration: days, Signature: sig}
					it, used, err := p.Assemble(prefs)
					if err != nil {
						t.Fatalf("%+v: %v", prefs, err)
					}
					if len(it.Days) != days {
						t.Fatalf("%+v: expected %d days, got %d", prefs, days, len(it.Days))
					}

					seen := map[string]bool{}
					placed := 0
					for _, d := range it.Days {
						for _, a := range d.Activities {
							if seen[a.Activity.Name] {
								t.Errorf("%+v: %q placed twice", prefs, a.Activity.Name)
							}
							seen[a.Activity.Name] = true
							if a.Type == model.SlotTypeSignature {
								continue
							}
							placed++
							if !used.Has(a.Activity.Name) {
								t.Errorf("%+v: %q missing from used set", prefs, a.Activity.Name)
							}
							slot, _ := a.Type.TimeSlot()
							if !a.Activity.AvailableAt(slot) {
								t.Errorf("%+v: %q placed outside its slots at %s", prefs, a.Activity.Name, slot)
							}
							if !slices.Contains(slotClusters(a.Type, d.Focus), a.Activity.Cluster) {
								t.Errorf("%+v: %q from unreachable cluster %s", prefs, a.Activity.Name, a.Activity.Cluster)
							}
						}
					}
					if placed != used.Len() {
						t.Errorf("%+v: %d placed but %d used", prefs, placed, used.Len())
					}
				}
			}
		}
	}
}

func TestClusterFocus(t *testing.T) {
	cases := []struct {
		style model.TravelStyle
		want  []model.Cluster
	}{
		{model.TravelStayLocal, []model.Cluster{model.ClusterTownCenter, model.ClusterTownCenter, model.ClusterTownCenter, model.ClusterTownCenter}},
		{model.TravelRelaxed, []model.Cluster{model.ClusterTownCenter, model.ClusterLodge, model.ClusterTownCenter, model.ClusterLodge}},
		{model.TravelModerate, []model.Cluster{model.ClusterTownCenter, model.ClusterWineRegion, model.ClusterLodge, model.ClusterTownCenter, model.ClusterWineRegion}},
		{model.TravelDayTrip, []model.Cluster{model.ClusterTownCenter, model.ClusterWineRegion, model.ClusterCoastal, model.ClusterLodge, model.ClusterTownCenter}},
	}
	for _, tc := range cases {
		allowed := catalog.ClustersFor(tc.style)
		for i, want := range tc.want {
			if got := ClusterFocus(i+1, tc.style, allowed); got != want {
				t.Errorf("%s day %d: expected %s, got %s", tc.style, i+1, want, got)
			}
		}
	}
}

func TestClusterFocus_EmptyAllowed(t *testing.T) {
	if got := ClusterFocus(4, model.TravelModerate, nil); got != model.ClusterTownCenter {
		t.Errorf("expected town-center, got %s", got)
	}
}

func TestPlanDay_SharesUsedSet(t *testing.T) {
	p := newTestPlanner(t)
	prefs := model.Preferences{Interests: []model.Category{model.CategoryFood}, TripDuration: 1}
	used := NewUsedSet("Graze at Rio Nido Lodge", "Boon Eat + Drink")
	d := p.PlanDay(1, prefs, model.ClusterTownCenter, used)
	for _, a := range d.Activities {
		if a.Activity.Name == "Graze at Rio Nido Lodge" || a.Activity.Name == "Boon Eat + Drink" {
			t.Errorf("reused %q", a.Activity.Name)
		}
	}
	if d.Activities[0].Activity.Name != "Big Bottom Market" {
		t.Errorf("expected Big Bottom Market for morning, got %s", d.Activities[0].Activity.Name)
	}
}

func TestPlanDay_NilUsedSet(t *testing.T) {
	p := newTestPlanner(t)
	prefs := model.Preferences{Interests: []model.Category{model.CategoryFood}, TripDuration: 1}
	d := p.PlanDay(1, prefs, model.ClusterTownCenter, nil)
	assertNames(t, "day 1", activityNames(d),
		[]string{"Graze at Rio Nido Lodge", "Boon Eat + Drink", "Saucy Mama's Pizza"})
}
