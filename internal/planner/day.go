package planner

import (
	"time"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// Display times for each slot.
const (
	TimeMorning       = "8:30 AM"
	TimeSignature     = "10:00 AM"
	TimeMain          = "11:00 AM"
	TimeMainDelayed   = "2:00 PM"
	TimeLunch         = "1:00 PM"
	TimeEvening       = "7:00 PM"
	signatureDay      = 2
	dateLayout        = "2006-01-02"
	displayDateLayout = "Monday, January 2"
)

// PlanDay schedules one day around focus, recording every placement in used.
// Slots without a candidate are left out of the plan. A nil used set starts
// the day with nothing used.
func (p *Planner) PlanDay(day int, prefs model.Preferences, focus model.Cluster, used *UsedSet) model.DayPlan {
	if used == nil {
		used = NewUsedSet()
	}
	var sig *model.SignatureExperience
	if prefs.Signature != "" {
		if s, ok := p.catalog.Signature(prefs.Signature); ok {
			sig = &s
		} else {
			p.log.Warn("unknown signature experience", "id", prefs.Signature)
		}
	}
	return p.planDay(startOfDay(p.now()), day, prefs, focus, sig, used)
}

func (p *Planner) planDay(start time.Time, day int, prefs model.Preferences, focus model.Cluster, sig *model.SignatureExperience, used *UsedSet) model.DayPlan {
	date := start.AddDate(0, 0, day-1)
	plan := model.DayPlan{
		Day:         day,
		Date:        date.Format(dateLayout),
		DisplayDate: date.Format(displayDateLayout),
		Focus:       focus,
		FocusLabel:  focus.Label(),
		Activities:  []model.ScheduledActivity{},
	}
	sel := NewSelector(prefs.Interests)
	signaturePlaced := false

	place := func(st model.SlotType, label string, cats []model.Category, clusters []model.Cluster) {
		slot, _ := st.TimeSlot()
		if len(cats) == 0 {
			p.log.Debug("slot skipped", "day", day, "slot", st, "reason", "no categories")
			return
		}
		candidates, err := Filter(p.catalog, FilterParams{Categories: cats, Clusters: clusters, Used: used, Slot: slot})
		if err != nil {
			p.log.Error("filter slot", "day", day, "slot", st, "err", err)
			return
		}
		b, ok := sel.Select(candidates, used)
		if !ok {
			p.log.Debug("slot skipped", "day", day, "slot", st, "reason", "no candidates")
			return
		}
		plan.Activities = append(plan.Activities, model.ScheduledActivity{Time: label, Type: st, Activity: b})
	}

	for _, st := range model.DaySequence {
		switch st {
		case model.SlotTypeMorning:
			place(st, TimeMorning,
				[]model.Category{model.CategoryCoffee, model.CategoryFood},
				[]model.Cluster{focus, model.ClusterLodge, model.ClusterTownCenter})

		case model.SlotTypeSignature:
			if day != signatureDay || sig == nil {
				continue
			}
			s := *sig
			plan.Activities = append(plan.Activities, model.ScheduledActivity{
				Time:      TimeSignature,
				Type:      st,
				Activity:  s.AsBusiness(),
				Signature: &s,
			})
			signaturePlaced = true

		case model.SlotTypeMain:
			label := TimeMain
			if signaturePlaced {
				label = TimeMainDelayed
			}
			place(st, label, mainCategories(prefs.Interests), []model.Cluster{focus})

		case model.SlotTypeLunch:
			place(st, TimeLunch,
				[]model.Category{model.CategoryFood},
				[]model.Cluster{focus, model.ClusterTownCenter})

		case model.SlotTypeEvening:
			place(st, TimeEvening, []model.Category{model.CategoryFood}, eveningClusters(focus))
		}
	}
	return plan
}

// mainCategories are the interests a main activity may draw from; coffee is
// kept for mornings.
func mainCategories(interests []model.Category) []model.Category {
	out := make([]model.Category, 0, len(interests))
	for _, c := range interests {
		if c != model.CategoryCoffee {
			out = append(out, c)
		}
	}
	return out
}

func eveningClusters(focus model.Cluster) []model.Cluster {
	if focus == model.ClusterCoastal {
		return []model.Cluster{model.ClusterCoastal}
	}
	return []model.Cluster{focus, model.ClusterTownCenter, model.ClusterLodge}
}
