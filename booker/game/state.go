package game

import (
	"fmt"
	"sort"
	"time"
)

// Clone deep-copies the aggregate so engine operations can build the next
// snapshot without the caller ever observing a half-applied state.
func (g GameState) Clone() GameState {
	out := g

	out.Companies = make(map[string]Company, len(g.Companies))
	for id, c := range g.Companies {
		out.Companies[id] = c.clone()
	}
	out.Wrestlers = make(map[string]Wrestler, len(g.Wrestlers))
	for id, w := range g.Wrestlers {
		out.Wrestlers[id] = w.clone()
	}
	out.Matches = make(map[string]Match, len(g.Matches))
	for id, m := range g.Matches {
		out.Matches[id] = m.clone()
	}
	out.Shows = make(map[string]Show, len(g.Shows))
	for id, s := range g.Shows {
		out.Shows[id] = s.clone()
	}

	out.Achievements = append([]string(nil), g.Achievements...)
	out.Objectives = append([]Objective(nil), g.Objectives...)
	out.Calendar = append([]CalendarEvent(nil), g.Calendar...)

	out.Inbox = make([]Email, len(g.Inbox))
	for i, e := range g.Inbox {
		e.Choices = append([]EmailChoice(nil), e.Choices...)
		out.Inbox[i] = e
	}

	if g.BeAPro != nil {
		stats := *g.BeAPro
		stats.Championships = append([]string(nil), g.BeAPro.Championships...)
		stats.Storylines = append([]string(nil), g.BeAPro.Storylines...)
		out.BeAPro = &stats
	}

	return out
}

func (w Wrestler) clone() Wrestler {
	w.Moveset = append([]string(nil), w.Moveset...)
	w.Finishers = append([]string(nil), w.Finishers...)
	w.Signatures = append([]string(nil), w.Signatures...)
	heat := make(map[string]int, len(w.Heat))
	for id, h := range w.Heat {
		heat[id] = h
	}
	w.Heat = heat
	return w
}

func (c Company) clone() Company {
	c.Roster = append([]string(nil), c.Roster...)
	c.Venues = append([]string(nil), c.Venues...)
	c.Rivals = append([]string(nil), c.Rivals...)
	c.WeeklyShows = append([]WeeklyShow(nil), c.WeeklyShows...)
	c.MonthlyShows = append([]MonthlyShow(nil), c.MonthlyShows...)
	if c.TVDeal != nil {
		deal := *c.TVDeal
		c.TVDeal = &deal
	}
	titles := make([]Championship, len(c.Championships))
	for i, t := range c.Championships {
		t.History = append([]TitleReign(nil), t.History...)
		titles[i] = t
	}
	c.Championships = titles
	return c
}

func (m Match) clone() Match {
	m.Participants = append([]string(nil), m.Participants...)
	if m.Result != nil {
		res := *m.Result
		res.Events = append([]MatchEvent(nil), m.Result.Events...)
		m.Result = &res
	}
	return m
}

func (s Show) clone() Show {
	matches := make([]Match, len(s.Matches))
	for i, m := range s.Matches {
		matches[i] = m.clone()
	}
	s.Matches = matches
	s.Segments = append([]Segment(nil), s.Segments...)
	return s
}

// Setup describes a new game.
type Setup struct {
	PlayerName string
	CompanyID  string
	Mode       Mode
	StartDate  time.Time
	Wrestlers  []Wrestler
	Companies  []Company
}

// PlayerWrestlerID is the roster id reserved for the custom career
// wrestler in wrestler mode.
const PlayerWrestlerID = "player-wrestler"

// NewGameState builds the initial aggregate from the static catalogs.
func NewGameState(setup Setup) GameState {
	wrestlers := make(map[string]Wrestler, len(setup.Wrestlers)+1)
	for _, w := range setup.Wrestlers {
		wrestlers[w.ID] = w.clone()
	}
	companies := make(map[string]Company, len(setup.Companies))
	for _, c := range setup.Companies {
		companies[c.ID] = c.clone()
	}

	state := GameState{
		CurrentDate:  setup.StartDate,
		PlayerName:   setup.PlayerName,
		Money:        1_000_000,
		Reputation:   50,
		Companies:    companies,
		Wrestlers:    wrestlers,
		Matches:      map[string]Match{},
		Shows:        map[string]Show{},
		Achievements: []string{},
		Mode:         setup.Mode,
		Inbox:        []Email{},
		Objectives:   []Objective{},
		Calendar:     []CalendarEvent{},
		Time:         TimeProgression{Paused: false, Speed: 1, AutoStop: true},
	}

	switch setup.Mode {
	case ModeWrestler:
		state.Money = 100_000
		rookie := rookieWrestler(setup.PlayerName, setup.CompanyID, setup.StartDate)
		wrestlers[rookie.ID] = rookie
		state.PlayerWrestler = rookie.ID
		state.BeAPro = &BeAProStats{
			Championships:   []string{},
			CurrentHealth:   100,
			CurrentMomentum: 50,
			Storylines:      []string{},
		}
	default:
		state.PlayerCompany = setup.CompanyID
		if c, ok := companies[setup.CompanyID]; ok {
			state.Money = c.Money
		}
	}

	return state
}

func rookieWrestler(name, companyID string, debut time.Time) Wrestler {
	if companyID == "" {
		companyID = "free-agent"
	}
	return Wrestler{
		ID:            PlayerWrestlerID,
		Name:          name,
		Company:       companyID,
		Overall:       65,
		Charisma:      60,
		Wrestling:     65,
		Entertainment: 55,
		Mic:           50,
		Look:          60,
		Strength:      70,
		Speed:         65,
		Stamina:       70,
		Moveset:       []string{"Punch", "Kick", "Slam", "Suplex"},
		Finishers:     []string{"Custom Finisher"},
		Signatures:    []string{"Custom Signature"},
		Contract:      Contract{Salary: 50_000, Duration: 1},
		Heat:          map[string]int{},
		PushLevel:     PushJobber,
		Age:           25,
		Experience:    1,
		Popularity:    30,
		Alignment:     AlignmentFace,
		Gimmick:       "Rookie",
		Hometown:      "Hometown, USA",
		Height:        `6'0"`,
		Weight:        "220 lbs",
		Debut:         fmt.Sprintf("%d", debut.Year()),
		Momentum:      50,
		Fatigue:       0,
	}
}

// UpcomingEvents returns future calendar events in date order, capped at
// limit (0 means no cap).
func (g GameState) UpcomingEvents(limit int) []CalendarEvent {
	var out []CalendarEvent
	for _, ev := range g.Calendar {
		if ev.Date.After(g.CurrentDate) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// UnreadCount counts unread inbox emails.
func (g GameState) UnreadCount() int {
	n := 0
	for _, e := range g.Inbox {
		if !e.Read {
			n++
		}
	}
	return n
}

// Bundle wraps the state into the persisted slot layout.
func (g GameState) Bundle(now time.Time) SaveGame {
	label := "Empire"
	if g.Mode == ModeWrestler {
		label = "Career"
	}
	snapshot := g.Clone()
	return SaveGame{
		Name:          fmt.Sprintf("%s's %s", g.PlayerName, label),
		Date:          now,
		State:         snapshot,
		PlayerName:    g.PlayerName,
		PlayerCompany: g.PlayerCompany,
		Money:         g.Money,
		Companies:     snapshot.Companies,
	}
}
