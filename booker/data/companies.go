package data

import (
	"time"

	"github.com/squaredcircle/booker/booker/game"
)

// Companies is the launch promotion catalog. Weekly and monthly shows
// here are what the scheduler expands into calendar events.
var Companies = []game.Company{
	{
		ID:         "wwe",
		Name:       "WWE",
		Type:       "global",
		Money:      500_000_000,
		Popularity: 95,
		TVDeal: &game.TVDeal{
			Network:  "USA Network",
			Value:    265_000_000,
			Duration: 5,
		},
		Roster: []string{"roman-reigns", "cody-rhodes", "seth-rollins", "bianca-belair"},
		Championships: []game.Championship{
			{ID: "wwe-championship", Name: "WWE Championship", Prestige: 100, Holder: "cody-rhodes", History: []game.TitleReign{}},
			{ID: "wwe-womens-championship", Name: "WWE Women's Championship", Prestige: 95, Holder: "bianca-belair", History: []game.TitleReign{}},
		},
		Venues:           []string{"Madison Square Garden", "Allstate Arena", "Staples Center"},
		Rivals:           []string{"aew"},
		Era:              "Renaissance Era",
		Founded:          "1953",
		TrainingFacility: true,
		WeeklyShows: []game.WeeklyShow{
			{ID: "raw", Name: "Monday Night Raw", DayOfWeek: time.Monday, Venue: "Allstate Arena", Duration: 180, TVDeal: true},
			{ID: "smackdown", Name: "Friday Night SmackDown", DayOfWeek: time.Friday, Venue: "Madison Square Garden", Duration: 120, TVDeal: true},
		},
		MonthlyShows: []game.MonthlyShow{
			{ID: "wwe-ple", Name: "Premium Live Event", DayOfMonth: 28, Venue: "Staples Center", Duration: 240, PPV: true},
		},
	},
	{
		ID:         "aew",
		Name:       "All Elite Wrestling",
		Type:       "national",
		Money:      100_000_000,
		Popularity: 80,
		TVDeal: &game.TVDeal{
			Network:  "TBS",
			Value:    45_000_000,
			Duration: 4,
		},
		Roster: []string{"mjf", "kenny-omega"},
		Championships: []game.Championship{
			{ID: "aew-world-championship", Name: "AEW World Championship", Prestige: 90, Holder: "mjf", History: []game.TitleReign{}},
		},
		Venues:           []string{"Daily's Place", "United Center"},
		Rivals:           []string{"wwe"},
		Era:              "Boom Era",
		Founded:          "2019",
		TrainingFacility: false,
		WeeklyShows: []game.WeeklyShow{
			{ID: "dynamite", Name: "Dynamite", DayOfWeek: time.Wednesday, Venue: "Daily's Place", Duration: 120, TVDeal: true},
		},
		MonthlyShows: []game.MonthlyShow{
			{ID: "aew-ppv", Name: "Pay-Per-View", DayOfMonth: 25, Venue: "United Center", Duration: 240, PPV: true},
		},
	},
	{
		ID:         "njpw",
		Name:       "New Japan Pro-Wrestling",
		Type:       "international",
		Money:      50_000_000,
		Popularity: 75,
		Roster:     []string{"kazuchika-okada", "hiroshi-tanahashi"},
		Championships: []game.Championship{
			{ID: "iwgp-world-championship", Name: "IWGP World Heavyweight Championship", Prestige: 92, Holder: "kazuchika-okada", History: []game.TitleReign{}},
		},
		Venues:           []string{"Tokyo Dome", "Korakuen Hall"},
		Rivals:           []string{},
		Era:              "Reiwa Era",
		Founded:          "1972",
		TrainingFacility: true,
		WeeklyShows: []game.WeeklyShow{
			{ID: "strong", Name: "NJPW Strong", DayOfWeek: time.Saturday, Venue: "Korakuen Hall", Duration: 90, TVDeal: false},
		},
		MonthlyShows: []game.MonthlyShow{
			{ID: "njpw-special", Name: "Road to Tokyo Dome", DayOfMonth: 4, Venue: "Tokyo Dome", Duration: 240, PPV: true},
		},
	},
}

// CompanyByID resolves a catalog company.
func CompanyByID(id string) (game.Company, bool) {
	for _, c := range Companies {
		if c.ID == id {
			return c, true
		}
	}
	return game.Company{}, false
}
