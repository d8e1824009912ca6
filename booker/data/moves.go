package data

// MatchTypes are the bookable match stipulations. Rating bonuses key off
// substrings of these names.
var MatchTypes = []string{
	"Singles Match",
	"Championship Match",
	"Tag Team Match",
	"Triple Threat Match",
	"Fatal Four-Way Match",
	"Steel Cage Match",
	"Hell in a Cell Match",
	"Ladder Match",
	"TLC Match",
	"Submission Match",
	"Last Man Standing Match",
	"Iron Man Match",
}

// Moves is the shared move pool for storyline hooks.
var Moves = []string{
	"Suplex",
	"DDT",
	"Powerbomb",
	"Clothesline",
	"Dropkick",
	"Moonsault",
	"Piledriver",
	"Sharpshooter",
	"Figure Four Leglock",
	"Frog Splash",
	"Spinebuster",
	"Hurricanrana",
	"Superkick",
	"Chokeslam",
	"German Suplex",
}
