package catalog

import "github.com/mytravelspring/rio-nido-complete/internal/model"

// Property describes the lodge the catalog is curated around.
type Property struct {
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	Coordinates   model.Coordinates `json:"coordinates"`
	Neighborhood  string            `json:"neighborhood"`
	WalkingRadius string            `json:"walking_radius"`
}

// Lodge is the property every itinerary starts from.
var Lodge = Property{
	Name:          "Rio Nido Lodge",
	Address:       "4444 Wood Road, Guerneville, CA 95446",
	Coordinates:   model.Coordinates{Lat: 38.5024, Lng: -122.9911},
	Neighborhood:  "guerneville",
	WalkingRadius: "quarter-mile",
}

func hours(openHour, closeHour int, slots ...model.TimeSlot) *model.Hours {
	return &model.Hours{Open: openHour, Close: closeHour, Slots: slots}
}

const (
	morning   = model.SlotMorning
	lunch     = model.SlotLunch
	afternoon = model.SlotAfternoon
	evening   = model.SlotEvening
)

var defaultBusinesses = []model.Business{
	{
		Name:         "Graze at Rio Nido Lodge",
		Type:         "Lodge Restaurant",
		Description:  "Farm-to-table dining at your lodge with Russian River wines",
		Rating:       4.8,
		Price:        model.PriceModerate,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterLodge,
		LocalInsight: "Ask about the seasonal tasting menu featuring local Guerneville farms",
		DriveTime:    "0 min - at your lodge",
		Hours:        hours(7, 22, morning, lunch, evening),
	},
	{
		Name:         "Boon Eat + Drink",
		Type:         "Farm-to-Table Restaurant",
		Description:  "Celebrity Chef Crista Luedtke's flagship with Russian River wine pairings",
		Rating:       4.7,
		Price:        model.PriceModerate,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterTownCenter,
		LocalInsight: "Ask about their seasonal tasting menu - changes monthly based on local farm harvests",
		DriveTime:    "8 min drive",
		Hours:        hours(11, 22, lunch, evening),
	},
	{
		Name:         "Saucy Mama's Pizza",
		Type:         "Artisan Pizza",
		Description:  "Wood-fired pizza with local ingredients and craft beer selection",
		Rating:       4.5,
		Price:        model.PriceBudget,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterTownCenter,
		LocalInsight: "Tuesday night is locals' night with special pizza deals",
		DriveTime:    "7 min drive",
		Hours:        hours(11, 21, lunch, evening),
	},
	{
		Name:         "Big Bottom Market",
		Type:         "Gourmet Deli & Market",
		Description:  "Famous for their maple bacon biscuits and artisanal sandwiches",
		Rating:       4.6,
		Price:        model.PriceBudget,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterTownCenter,
		LocalInsight: "Get there early - the maple bacon biscuits sell out by 10am on weekends",
		DriveTime:    "8 min drive",
		Hours:        hours(7, 16, morning, lunch),
	},
	{
		Name:         "Coffee Bazaar",
		Type:         "Local Roastery",
		Description:  "Local roastery with 'Russian River Blend' and homemade pastries",
		Rating:       4.4,
		Price:        model.PriceBudget,
		Category:     model.CategoryCoffee,
		Cluster:      model.ClusterTownCenter,
		LocalInsight: "Try the 'Russian River Blend' - roasted weekly in small batches",
		DriveTime:    "6 min drive",
		Hours:        hours(7, 17, morning, afternoon),
	},
	{
		Name:         "Nimble & Finn's",
		Type:         "Ice Cream & Coffee",
		Description:  "Artisanal ice cream with unique flavors like lavender honey",
		Rating:       4.7,
		Price:        model.PriceBudget,
		Category:     model.CategoryDessert,
		Cluster:      model.ClusterTownCenter,
		LocalInsight: "The lavender honey is made from Russian River Valley lavender farms",
		DriveTime:    "9 min drive",
		Hours:        hours(11, 21, afternoon, evening),
	},
	{
		Name:         "Russian River Beach",
		Type:         "River Beach",
		Description:  "Sandy river beach perfect for swimming and sunbathing",
		Rating:       4.5,
		Price:        model.PriceFree,
		Category:     model.CategoryNature,
		Cluster:      model.ClusterTownCenter,
		LocalInsight: "Water is warmest in late afternoon - perfect after exploring",
		DriveTime:    "5 min drive",
		Hours:        hours(6, 20, morning, afternoon, evening),
	},
	{
		Name:         "Furthermore Wines",
		Type:         "Boutique Artisan Winery",
		Description:  "Small-production winery where the winemaker often pours personally",
		Rating:       4.9,
		Price:        model.PriceModerate,
		Category:     model.CategoryWine,
		Cluster:      model.ClusterWineRegion,
		LocalInsight: "Call ahead - the winemaker loves sharing the story behind each vintage",
		DriveTime:    "12 min drive",
		Hours:        hours(11, 17, afternoon),
	},
	{
		Name:         "Williams Selyem",
		Type:         "Legendary Cult Pinot Producer",
		Description:  "Iconic cult winery with library wines and exclusive tastings",
		Rating:       4.9,
		Price:        model.PriceExpensive,
		Category:     model.CategoryWine,
		Cluster:      model.ClusterWineRegion,
		LocalInsight: "Ask about library wine tastings - some bottles from the 1980s",
		DriveTime:    "14 min drive",
		Hours:        hours(11, 16, afternoon),
	},
	{
		Name:         "Gary Farrell Winery",
		Type:         "Elevated Tasting Experience",
		Description:  "Panoramic vineyard views with award-winning Pinot and Chardonnay",
		Rating:       4.8,
		Price:        model.PriceModerate,
		Category:     model.CategoryWine,
		Cluster:      model.ClusterWineRegion,
		LocalInsight: "Book the terrace tasting for stunning Russian River Valley views",
		DriveTime:    "15 min drive",
		Hours:        hours(11, 17, afternoon),
	},
	{
		Name:         "Lynmar Estate",
		Type:         "Biodynamic Winery & Gardens",
		Description:  "Biodynamic farming with farm-to-table herb pairings",
		Rating:       4.7,
		Price:        model.PriceModerate,
		Category:     model.CategoryWine,
		Cluster:      model.ClusterWineRegion,
		LocalInsight: "Take the garden tour - they use herbs from their gardens in tastings",
		DriveTime:    "13 min drive",
		Hours:        hours(10, 17, afternoon),
	},
	{
		Name:         "Merry Edwards Winery",
		Type:         "Pioneering Female Winemaker",
		Description:  "Temple to Pinot Noir from pioneering female vintner",
		Rating:       4.8,
		Price:        model.PriceModerate,
		Category:     model.CategoryWine,
		Cluster:      model.ClusterWineRegion,
		LocalInsight: "Ask about Merry's story - she's a Russian River Valley pioneer",
		DriveTime:    "11 min drive",
		Hours:        hours(10, 16, afternoon),
	},
	{
		Name:         "Jilly's Roadhouse",
		Type:         "Coastal American",
		Description:  "Scenic Highway 1 roadhouse with ocean views and hearty portions",
		Rating:       4.6,
		Price:        model.PriceModerate,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterCoastal,
		LocalInsight: "Sit on the deck for ocean views - weekend brunch is legendary",
		DriveTime:    "22 min drive to Jenner",
		Hours:        hours(8, 20, morning, lunch, evening),
	},
	{
		Name:         "Cafe Aquatica",
		Type:         "Waterfront Cafe",
		Description:  "Jenner waterfront cafe where Russian River meets the Pacific",
		Rating:       4.4,
		Price:        model.PriceBudget,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterCoastal,
		LocalInsight: "Perfect spot to watch harbor seals at the river mouth",
		DriveTime:    "20 min drive to Jenner",
		Hours:        hours(8, 16, morning, lunch),
	},
	{
		Name:         "The Blue Heron",
		Type:         "Historic Duncan Mills",
		Description:  "Historic restaurant in Victorian Duncan Mills with comfort food",
		Rating:       4.5,
		Price:        model.PriceModerate,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterCoastal,
		LocalInsight: "Try their famous pot roast - recipe hasn't changed since 1970s",
		DriveTime:    "18 min drive to Duncan Mills",
		Hours:        hours(11, 21, lunch, evening),
	},
	{
		Name:         "Duncan Mills General Store & Cafe",
		Type:         "Historic Breakfast Spot",
		Description:  "Victorian-era general store with hearty breakfast and local atmosphere",
		Rating:       4.3,
		Price:        model.PriceBudget,
		Category:     model.CategoryFood,
		Cluster:      model.ClusterCoastal,
		LocalInsight: "The pancakes are massive - perfect for sharing after hiking",
		DriveTime:    "18 min drive to Duncan Mills",
		Hours:        hours(7, 14, morning, lunch),
	},
	{
		Name:         "Goat Rock Beach",
		Type:         "Dramatic Coastal Beach",
		Description:  "Where Russian River meets Pacific, famous harbor seal colony",
		Rating:       4.8,
		Price:        model.PriceFree,
		Category:     model.CategoryNature,
		Cluster:      model.ClusterCoastal,
		LocalInsight: "Visit during pupping season (March-May) to see baby harbor seals",
		DriveTime:    "25 min drive to Jenner coast",
		Hours:        hours(6, 20, morning, afternoon, evening),
	},
}

var defaultSignatures = []model.SignatureExperience{
	{
		ID:              "redwood_meditation",
		Name:            "Private Redwood Grove Meditation",
		Description:     "Guided meditation among 800-year-old redwoods at dawn",
		Duration:        "90 minutes",
		Price:           model.PriceExpensive,
		Location:        "Armstrong Redwoods State Reserve",
		Distance:        "1.2 miles from lodge",
		BookingRequired: true,
	},
	{
		ID:              "wine_country_insider",
		Name:            "Hidden Winery & Culinary Tour",
		Description:     "Private access to appointment-only wineries with chef pairings",
		Duration:        "6 hours",
		Price:           model.PriceExpensive,
		Location:        "Westside Road Wine Corridor",
		Distance:        "10-15 miles from lodge",
		BookingRequired: true,
	},
	{
		ID:              "river_adventure",
		Name:            "Russian River Adventure Package",
		Description:     "Private kayaking, swimming spots, and riverside picnic",
		Duration:        "4 hours",
		Price:           model.PriceModerate,
		Location:        "Russian River beaches & tributaries",
		Distance:        "0-8 miles from lodge",
		BookingRequired: true,
	},
	{
		ID:              "coastal_photography",
		Name:            "Sonoma Coast Photography Workshop",
		Description:     "Professional photographer guides you to hidden coastal gems",
		Duration:        "5 hours",
		Price:           model.PriceModerate,
		Location:        "Jenner & Goat Rock Beach area",
		Distance:        "20-25 miles from lodge",
		BookingRequired: true,
	},
	{
		ID:              "foraging_tour",
		Name:            "Wild Mushroom & Foraging Experience",
		Description:     "Expert-guided foraging tour with farm-to-table cooking class",
		Duration:        "4 hours",
		Price:           model.PriceModerate,
		Location:        "Occidental & Sebastopol hills",
		Distance:        "12-15 miles from lodge",
		BookingRequired: true,
	},
}

var defaultCatalog = mustNew(defaultBusinesses, defaultSignatures)

func mustNew(b []model.Business, s []model.SignatureExperience) *Catalog {
	c, err := New(b, s)
	if err != nil {
		panic("catalog: invalid built-in data: " + err.Error())
	}
	return c
}

// Default returns the built-in Rio Nido catalog.
func Default() *Catalog { return defaultCatalog }
