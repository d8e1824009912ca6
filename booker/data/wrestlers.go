package data

import "github.com/squaredcircle/booker/booker/game"

// Wrestlers is the launch roster catalog. IDs are stable and referenced
// by the company rosters in companies.go.
var Wrestlers = []game.Wrestler{
	{
		ID:            "roman-reigns",
		Name:          "Roman Reigns",
		Company:       "wwe",
		Overall:       95,
		Charisma:      92,
		Wrestling:     90,
		Entertainment: 93,
		Mic:           88,
		Look:          96,
		Strength:      94,
		Speed:         82,
		Stamina:       90,
		Moveset:       []string{"Superman Punch", "Drive By", "Samoan Drop", "Powerbomb"},
		Finishers:     []string{"Spear"},
		Signatures:    []string{"Superman Punch"},
		Contract:      game.Contract{Salary: 5_000_000, Duration: 3},
		Heat:          map[string]int{},
		PushLevel:     game.PushMainEvent,
		Age:           38,
		Experience:    13,
		Popularity:    95,
		Alignment:     game.AlignmentHeel,
		Gimmick:       "Tribal Chief",
		Hometown:      "Pensacola, Florida",
		Height:        `6'3"`,
		Weight:        "265 lbs",
		Debut:         "2010",
		Momentum:      80,
	},
	{
		ID:            "cody-rhodes",
		Name:          "Cody Rhodes",
		Company:       "wwe",
		Overall:       92,
		Charisma:      90,
		Wrestling:     88,
		Entertainment: 91,
		Mic:           92,
		Look:          88,
		Strength:      85,
		Speed:         86,
		Stamina:       88,
		Moveset:       []string{"Disaster Kick", "Cody Cutter", "Figure Four", "Superplex"},
		Finishers:     []string{"Cross Rhodes"},
		Signatures:    []string{"Cody Cutter"},
		Contract:      game.Contract{Salary: 4_000_000, Duration: 3},
		Heat:          map[string]int{},
		PushLevel:     game.PushMainEvent,
		Age:           38,
		Experience:    17,
		Popularity:    93,
		Alignment:     game.AlignmentFace,
		Gimmick:       "American Nightmare",
		Hometown:      "Marietta, Georgia",
		Height:        `6'2"`,
		Weight:        "220 lbs",
		Debut:         "2007",
		Momentum:      85,
	},
	{
		ID:            "seth-rollins",
		Name:          "Seth Rollins",
		Company:       "wwe",
		Overall:       93,
		Charisma:      89,
		Wrestling:     94,
		Entertainment: 90,
		Mic:           87,
		Look:          85,
		Strength:      82,
		Speed:         90,
		Stamina:       92,
		Moveset:       []string{"Pedigree", "Frog Splash", "Buckle Bomb", "Falcon Arrow"},
		Finishers:     []string{"Curb Stomp"},
		Signatures:    []string{"Pedigree"},
		Contract:      game.Contract{Salary: 3_500_000, Duration: 2},
		Heat:          map[string]int{},
		PushLevel:     game.PushMainEvent,
		Age:           37,
		Experience:    18,
		Popularity:    90,
		Alignment:     game.AlignmentFace,
		Gimmick:       "Visionary",
		Hometown:      "Davenport, Iowa",
		Height:        `6'1"`,
		Weight:        "217 lbs",
		Debut:         "2005",
		Momentum:      75,
	},
	{
		ID:            "bianca-belair",
		Name:          "Bianca Belair",
		Company:       "wwe",
		Overall:       90,
		Charisma:      88,
		Wrestling:     87,
		Entertainment: 89,
		Mic:           84,
		Look:          92,
		Strength:      90,
		Speed:         93,
		Stamina:       94,
		Moveset:       []string{"Handspring Moonsault", "Spear", "Glam Slam", "450 Splash"},
		Finishers:     []string{"KOD"},
		Signatures:    []string{"Handspring Moonsault"},
		Contract:      game.Contract{Salary: 2_500_000, Duration: 3},
		Heat:          map[string]int{},
		PushLevel:     game.PushMainEvent,
		Age:           34,
		Experience:    8,
		Popularity:    88,
		Alignment:     game.AlignmentFace,
		Gimmick:       "EST",
		Hometown:      "Knoxville, Tennessee",
		Height:        `5'7"`,
		Weight:        "165 lbs",
		Debut:         "2016",
		Momentum:      70,
	},
	{
		ID:            "mjf",
		Name:          "MJF",
		Company:       "aew",
		Overall:       91,
		Charisma:      95,
		Wrestling:     86,
		Entertainment: 92,
		Mic:           96,
		Look:          84,
		Strength:      80,
		Speed:         82,
		Stamina:       85,
		Moveset:       []string{"Heat Seeker", "Kangaroo Kick", "Armbar", "Piledriver"},
		Finishers:     []string{"Salt of the Earth"},
		Signatures:    []string{"Heat Seeker"},
		Contract:      game.Contract{Salary: 3_000_000, Duration: 2},
		Heat:          map[string]int{},
		PushLevel:     game.PushMainEvent,
		Age:           28,
		Experience:    9,
		Popularity:    87,
		Alignment:     game.AlignmentHeel,
		Gimmick:       "Salt of the Earth",
		Hometown:      "Plainview, New York",
		Height:        `5'11"`,
		Weight:        "212 lbs",
		Debut:         "2015",
		Momentum:      78,
	},
	{
		ID:            "kenny-omega",
		Name:          "Kenny Omega",
		Company:       "aew",
		Overall:       94,
		Charisma:      87,
		Wrestling:     96,
		Entertainment: 92,
		Mic:           83,
		Look:          84,
		Strength:      83,
		Speed:         91,
		Stamina:       95,
		Moveset:       []string{"V-Trigger", "Snap Dragon Suplex", "Rise of the Terminator", "Kotaro Krusher"},
		Finishers:     []string{"One Winged Angel"},
		Signatures:    []string{"V-Trigger"},
		Contract:      game.Contract{Salary: 3_000_000, Duration: 2},
		Heat:          map[string]int{},
		PushLevel:     game.PushMainEvent,
		Age:           40,
		Experience:    24,
		Popularity:    89,
		Alignment:     game.AlignmentFace,
		Gimmick:       "Best Bout Machine",
		Hometown:      "Winnipeg, Manitoba",
		Height:        `6'0"`,
		Weight:        "218 lbs",
		Debut:         "2000",
		Momentum:      72,
	},
	{
		ID:            "kazuchika-okada",
		Name:          "Kazuchika Okada",
		Company:       "njpw",
		Overall:       95,
		Charisma:      86,
		Wrestling:     97,
		Entertainment: 88,
		Mic:           78,
		Look:          90,
		Strength:      86,
		Speed:         87,
		Stamina:       96,
		Moveset:       []string{"Dropkick", "Tombstone Piledriver", "Money Clip", "Air Raid Crash"},
		Finishers:     []string{"Rainmaker"},
		Signatures:    []string{"Dropkick"},
		Contract:      game.Contract{Salary: 2_000_000, Duration: 2},
		Heat:          map[string]int{},
		PushLevel:     game.PushMainEvent,
		Age:           36,
		Experience:    20,
		Popularity:    86,
		Alignment:     game.AlignmentFace,
		Gimmick:       "Rainmaker",
		Hometown:      "Anjo, Aichi",
		Height:        `6'3"`,
		Weight:        "236 lbs",
		Debut:         "2004",
		Momentum:      74,
	},
	{
		ID:            "hiroshi-tanahashi",
		Name:          "Hiroshi Tanahashi",
		Company:       "njpw",
		Overall:       89,
		Charisma:      90,
		Wrestling:     91,
		Entertainment: 88,
		Mic:           82,
		Look:          87,
		Strength:      84,
		Speed:         80,
		Stamina:       84,
		Moveset:       []string{"Sling Blade", "Dragon Screw", "Texas Cloverleaf", "Twist and Shout"},
		Finishers:     []string{"High Fly Flow"},
		Signatures:    []string{"Sling Blade"},
		Contract:      game.Contract{Salary: 1_500_000, Duration: 1},
		Heat:          map[string]int{},
		PushLevel:     game.PushLegend,
		Age:           47,
		Experience:    25,
		Popularity:    84,
		Alignment:     game.AlignmentFace,
		Gimmick:       "Ace",
		Hometown:      "Ogaki, Gifu",
		Height:        `5'11"`,
		Weight:        "227 lbs",
		Debut:         "1999",
		Momentum:      60,
	},
}

// WrestlerByID resolves a catalog wrestler.
func WrestlerByID(id string) (game.Wrestler, bool) {
	for _, w := range Wrestlers {
		if w.ID == id {
			return w, true
		}
	}
	return game.Wrestler{}, false
}
